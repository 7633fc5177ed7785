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
	"github.com/motchy869/code-fractions/cmdhist"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdhist_args cmdhist.Args

// cmdhistCmd represents the cmdhist command
var cmdhistCmd = &cobra.Command{
	Use:   "cmdhist <dump.bin>",
	Short: "Extracts RF-IC register values from a serial command history dump",
	Long: `Decodes the serial command history saved by the controller and lists
the register values written to the RF-IC.

The dump is a little-endian structure of 1602 bytes:

  offset 0   numEntry (uint16)
  offset 2   200 commands of 8 bytes: cmd1, cmd2, data1, data2 (uint16 each)

All 200 slots are scanned regardless of numEntry. Commands whose cmd1 upper
byte is 0x0B are RF-IC writes: data2 carries the register address in its
upper byte and the value in its lower byte.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdhist_args.File = args[0]
		if cmdhist_args.Format == "" {
			cmdhist_args.Format = config.Cmdhist.Format
		}
		stats, err := cmdhist.Run(cmdhist_args, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		counters.RecordsScanned.Add(float64(stats.Scanned))
		counters.RecordsMatched.Add(float64(stats.Matched))
		entry := logrus.WithFields(logrus.Fields{
			"file":     cmdhist_args.File,
			"numEntry": stats.NumEntry,
			"matched":  stats.Matched,
		})
		if cmdhist_args.Verbose {
			entry.Info("command history decoded")
		} else {
			entry.Debug("command history decoded")
		}
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(cmdhistCmd)
	flag := cmdhistCmd.Flags()

	flag.StringVarP(&cmdhist_args.Format, "format", "f", "", "Output format: text or yaml. Default set in the config file")
	flag.BoolVarP(&cmdhist_args.Verbose, "verbose", "v", false, "verbose")
}
