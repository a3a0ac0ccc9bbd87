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
	"fmt"
	"os"

	"github.com/google/gousb"
	"github.com/mame82/mfastboot/config"
	"github.com/mame82/mfastboot/fastboot"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	flagVID  uint16
	flagPID  uint16
	verbose  bool
	showWire bool

	cfg = config.Default()
)

// openDevice is replaced in tests to run commands against a scripted pipe.
var openDevice = func(c config.Config) (*fastboot.Device, error) {
	return fastboot.OpenUSBDevice(gousb.ID(c.USB.VID), gousb.ID(c.USB.PID))
}

// withDevice opens the configured device, runs fn on it and closes the
// device on every path.
func withDevice(fn func(dev *fastboot.Device) error) error {
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	dev.SetShowInOut(cfg.ShowInOut)
	return fn(dev)
}

func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("vid") {
		loaded.USB.VID = flagVID
	}
	if flags.Changed("pid") {
		loaded.USB.PID = flagPID
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	if showWire {
		loaded.ShowInOut = true
		loaded.LogLevel = "debug"
	}

	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %v", err)
	}

	level, _ := log.ParseLevel(loaded.LogLevel)
	log.SetLevel(level)
	cfg = loaded
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "mfastboot",
	Short: "Talk to devices in fastboot mode over USB",
	Long: `mfastboot sends fastboot commands to a device attached over USB,
uploads boot and partition images and prints the device's answers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().Uint16Var(&flagVID, "vid", config.DefaultVID, "USB vendor ID of the device")
	rootCmd.PersistentFlags().Uint16Var(&flagPID, "pid", config.DefaultPID, "USB product ID of the device")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&showWire, "trace", false, "log every command sent and response received")
}
