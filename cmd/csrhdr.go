/*  This file is part of code-fractions.
    code-fractions is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    code-fractions is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with code-fractions.  If not, see <http://www.gnu.org/licenses/>.

    Author: motchy
    Date: 15-10-2026 */

package cmd

import (
	"github.com/motchy869/code-fractions/csrhdr"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var csrhdr_args csrhdr.Args

var csrhdrCmd = &cobra.Command{
	Use:   "csrhdr <csr.sv>",
	Short: "Generates the header file of a CSR module",
	Long: `Copies the CSR SystemVerilog source up to the end of the port list of
its first module and declares that module extern. The result is saved next to
the source with the .sv extension replaced by .svh, or by the extension set
in the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		csrhdr_args.File = args[0]
		csrhdr_args.Ext = config.Csrhdr.Ext
		outpath, err := csrhdr.Run(csrhdr_args)
		if err != nil {
			return err
		}
		counters.HeadersWritten.Inc()
		logrus.Infof("csrhdr: %s written", outpath)
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(csrhdrCmd)
	flag := csrhdrCmd.Flags()

	flag.StringVarP(&csrhdr_args.Output, "output", "o", "", "Header file name. Default is the source name with the header extension")
}
