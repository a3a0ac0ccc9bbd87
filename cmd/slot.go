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

var setActiveCmd = &cobra.Command{
	Use:   "set-active <slot>",
	Short: "Mark a slot as active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			return dev.SetActive(fastboot.Slot(args[0]))
		})
	},
}

var setActiveOtherCmd = &cobra.Command{
	Use:   "set-active-other",
	Short: "Switch the active slot from a to b or from b to a",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			slot, err := dev.SetActiveOther()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "active slot is now %s\n", slot)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(setActiveCmd)
	rootCmd.AddCommand(setActiveOtherCmd)
}
