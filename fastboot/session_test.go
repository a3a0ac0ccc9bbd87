package fastboot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendCollectsInfoUntilTerminal(t *testing.T) {
	dev, pipe := newTestDevice("INFOone", "INFOtwo", "OKAYdone", "OKAYnext command")

	frames, err := dev.Send("oem stuff")
	require.NoError(t, err)
	require.Equal(t, []string{"oem stuff"}, pipe.commands())
	require.Len(t, frames, 3)
	require.Equal(t, StatusInfo, frames[0].Status)
	require.Equal(t, "two", frames[1].Text)
	require.Equal(t, StatusOkay, frames[2].Status)
	// nothing read past the terminal frame
	require.Len(t, pipe.reads, 1)
}

func TestSendSingleFail(t *testing.T) {
	dev, _ := newTestDevice("FAILnope")

	frames, err := dev.Send("erase:boot")
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, StatusFail, frames[0].Status)
	require.Equal(t, "nope", frames[0].Text)
}

func TestSendDataIsTerminal(t *testing.T) {
	dev, _ := newTestDevice("DATA00000010")

	frames, err := dev.Send("download:00000010")
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, StatusData, frames[0].Status)
}

func TestSendNoInfoCap(t *testing.T) {
	var responses []string
	for i := 0; i < 500; i++ {
		responses = append(responses, "INFOdiagnostic line")
	}
	responses = append(responses, "OKAY")
	dev, _ := newTestDevice(responses...)

	frames, err := dev.Send("oem log")
	require.NoError(t, err)
	require.Len(t, frames, 501)
}

func TestSendDropsPartialSequenceOnError(t *testing.T) {
	tests := []struct {
		name      string
		responses []string
		readErr   error
		want      error
	}{
		{name: "read error", responses: []string{"INFOa"}, readErr: errors.New("pipe broke"), want: ErrTransport},
		{name: "short frame", responses: []string{"INFOa", "OK"}, want: ErrMalformedFrame},
		{name: "empty frame", responses: []string{"INFOa", ""}, want: ErrMalformedFrame},
		{name: "unknown status", responses: []string{"INFOa", "WHAT"}, want: ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, pipe := newTestDevice(tt.responses...)
			pipe.readErr = tt.readErr

			frames, err := dev.Send("getvar:all")
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, frames)
		})
	}
}

func TestSendWriteErrors(t *testing.T) {
	dev, pipe := newTestDevice("OKAY")
	pipe.writeErr = errors.New("stall")

	_, err := dev.Send("reboot")
	require.ErrorIs(t, err, ErrTransport)
	require.Len(t, pipe.reads, 1)

	dev, pipe = newTestDevice("OKAY")
	pipe.shortBy = 1
	_, err = dev.Send("reboot")
	require.ErrorIs(t, err, ErrTransport)
}

func TestCloseReleasesPipeOnce(t *testing.T) {
	dev, pipe := newTestDevice("OKAY")

	require.NoError(t, dev.Close())
	require.NoError(t, dev.Close())
	require.Equal(t, 1, pipe.closed)

	_, err := dev.Send("reboot")
	require.ErrorIs(t, err, ErrClosed)
	require.Empty(t, pipe.writes)
}

func TestShowInOutDoesNotChangeResult(t *testing.T) {
	dev, _ := newTestDevice("INFOx", "OKAY")
	dev.SetShowInOut(true)

	frames, err := dev.Send("getvar:x")
	require.NoError(t, err)
	require.Len(t, frames, 2)
}
