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
	"strings"

	"github.com/mame82/mfastboot/fastboot"
	"github.com/spf13/cobra"
)

var flashingCmd = &cobra.Command{
	Use:   "flashing",
	Short: "Query or change the bootloader lock state",
}

var flashingLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the bootloader",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			return dev.FlashingLock()
		})
	},
}

var flashingUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the bootloader",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			return dev.FlashingUnlock()
		})
	},
}

var flashingUnlockAbilityCmd = &cobra.Command{
	Use:   "get-unlock-ability",
	Short: "Print whether the bootloader may be unlocked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			able, err := dev.FlashingGetUnlockAbility()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unlock ability: %v\n", able)
			return nil
		})
	},
}

var oemCmd = &cobra.Command{
	Use:   "oem <command> [args...]",
	Short: "Pass a vendor specific command to the device",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			text, err := dev.OEM(strings.Join(args, " "))
			// the device text is shown on failure too
			if text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return err
		})
	},
}

func init() {
	flashingCmd.AddCommand(flashingLockCmd)
	flashingCmd.AddCommand(flashingUnlockCmd)
	flashingCmd.AddCommand(flashingUnlockAbilityCmd)
	rootCmd.AddCommand(flashingCmd)
	rootCmd.AddCommand(oemCmd)
}
