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

	"github.com/mame82/mfastboot/fastboot"
	"github.com/spf13/cobra"
)

var flashCmd = &cobra.Command{
	Use:   "flash <partition> <image>",
	Short: "Upload an image and write it to a partition",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := fastboot.LoadImage(args[1])
		if err != nil {
			return err
		}
		return withDevice(func(dev *fastboot.Device) error {
			if err := dev.FlashImage(args[0], img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "flashed %s to partition %s\n", img, args[0])
			return nil
		})
	},
}

var bootCmd = &cobra.Command{
	Use:   "boot <image>",
	Short: "Upload an image into RAM and boot it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := fastboot.LoadImage(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(dev *fastboot.Device) error {
			if err := dev.BootImage(img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "booting %s\n", img)
			return nil
		})
	},
}

var eraseCmd = &cobra.Command{
	Use:   "erase <partition>",
	Short: "Erase a partition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			if err := dev.Erase(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "erased partition %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(flashCmd)
	rootCmd.AddCommand(bootCmd)
	rootCmd.AddCommand(eraseCmd)
}
