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

var getvarCmd = &cobra.Command{
	Use:   "getvar <name>",
	Short: "Read a bootloader variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			value, err := dev.GetVariableString(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], value)
			return nil
		})
	},
}

var getvarAllCmd = &cobra.Command{
	Use:   "getvar-all",
	Short: "Read and list all bootloader variables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(dev *fastboot.Device) error {
			vars, err := dev.GetAllVariables()
			if err != nil {
				return err
			}
			for _, v := range vars {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", v.Name, v.Value)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(getvarCmd)
	rootCmd.AddCommand(getvarAllCmd)
}
