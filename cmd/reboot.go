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
	"github.com/mame82/mfastboot/fastboot"
	"github.com/spf13/cobra"
)

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Leave fastboot mode and continue booting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			return dev.Continue()
		})
	},
}

var rebootCmd = &cobra.Command{
	Use:       "reboot [recovery|fastboot|bootloader]",
	Short:     "Reboot the device, optionally into another mode",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"recovery", "fastboot", "bootloader"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return withDevice(func(dev *fastboot.Device) error {
				return dev.Reboot()
			})
		}

		mode, err := fastboot.ParseRebootMode(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(dev *fastboot.Device) error {
			return dev.RebootInto(mode)
		})
	},
}

var powerdownCmd = &cobra.Command{
	Use:   "powerdown",
	Short: "Power the device off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			return dev.PowerDown()
		})
	},
}

func init() {
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(powerdownCmd)
}
