// Copyright © 2019 Marcus Mengs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.


package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/mame82/mfastboot/config"
	"github.com/mame82/mfastboot/fastboot"
	"github.com/stretchr/testify/require"
)

type scriptedPipe struct {
	reads  []string
	writes []string
	closed bool
}

func (p *scriptedPipe) Read(buf []byte) (int, error) {
	if len(p.reads) == 0 {
		return 0, io.EOF
	}
	r := p.reads[0]
	p.reads = p.reads[1:]
	return copy(buf, r), nil
}

func (p *scriptedPipe) Write(b []byte) (int, error) {
	p.writes = append(p.writes, string(b))
	return len(b), nil
}

func (p *scriptedPipe) Close() error {
	p.closed = true
	return nil
}

// runCommand executes the CLI against a scripted device.
func runCommand(t *testing.T, pipe *scriptedPipe, args ...string) (string, config.Config, error) {
	t.Helper()

	var opened config.Config
	orig := openDevice
	openDevice = func(c config.Config) (*fastboot.Device, error) {
		opened = c
		return fastboot.NewDevice(pipe), nil
	}
	t.Cleanup(func() { openDevice = orig })

	var out bytes.Buffer
	rootCmd.SetOutput(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), opened, err
}

func TestGetvarCommand(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"OKAYsargo"}}

	out, _, err := runCommand(t, pipe, "getvar", "product")
	require.NoError(t, err)
	require.Contains(t, out, "product: sargo")
	require.Equal(t, []string{"getvar:product"}, pipe.writes)
	require.True(t, pipe.closed)
}

func TestGetvarAllCommand(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"INFOslot-count:2", "INFOvendor-fingerprint:a:b", "OKAY"}}

	out, _, err := runCommand(t, pipe, "getvar-all")
	require.NoError(t, err)
	require.Contains(t, out, "slot-count: 2")
	require.Contains(t, out, "vendor-fingerprint: a:b")
}

func TestOEMCommandPrintsTextOnFailure(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"INFOnot supported", "FAILunknown"}}

	out, _, err := runCommand(t, pipe, "oem", "unlock", "now")
	require.Error(t, err)
	require.Contains(t, out, "not supported\nunknown")
	require.Equal(t, []string{"oem unlock now"}, pipe.writes)
	require.True(t, pipe.closed)
}

func TestRebootCommand(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"OKAY"}}
	_, _, err := runCommand(t, pipe, "reboot", "bootloader")
	require.NoError(t, err)
	require.Equal(t, []string{"reboot-bootloader"}, pipe.writes)

	pipe = &scriptedPipe{}
	_, _, err = runCommand(t, pipe, "reboot", "sideways")
	require.ErrorIs(t, err, fastboot.ErrUnknownRebootMode)
	require.Empty(t, pipe.writes)
}

func TestSetActiveOtherCommand(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"OKAYb", "OKAY"}}

	out, _, err := runCommand(t, pipe, "set-active-other")
	require.NoError(t, err)
	require.Contains(t, out, "active slot is now a")
	require.Equal(t, []string{"getvar:current-slot", "set_active:a"}, pipe.writes)
}

func TestFlashingUnlockAbilityCommand(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"INFOget_unlock_ability: 1", "OKAY"}}

	out, _, err := runCommand(t, pipe, "flashing", "get-unlock-ability")
	require.NoError(t, err)
	require.Contains(t, out, "unlock ability: true")
}

func TestUSBFlagsOverrideConfig(t *testing.T) {
	pipe := &scriptedPipe{reads: []string{"OKAY"}}

	_, opened, err := runCommand(t, pipe, "--vid", "0x0bb4", "--pid", "0x0c01", "powerdown")
	require.NoError(t, err)
	require.Equal(t, uint16(0x0bb4), opened.USB.VID)
	require.Equal(t, uint16(0x0c01), opened.USB.PID)
	require.Equal(t, []string{"powerdown"}, pipe.writes)
}
