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
	"fmt"

	"github.com/motchy869/code-fractions/cpnewer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cpnewer_args cpnewer.Args

var cpnewerCmd = &cobra.Command{
	Use:   "cpnewer <src> <dst> or cpnewer --manifest <sync.yaml>",
	Short: "Copies files only if the source is newer",
	Long: `Copies src to dst if dst does not exist or src was modified more than
the tolerance (1s by default, see the config file) after dst. The copy keeps
the source permissions and modification time. dst may be a folder.

With --manifest, the files are listed in a YAML file:

copy:
  - from: hdl          # relative to the manifest folder
    to: ../sw/include
    get: [ csr.svh, other.yaml ]   # .yaml entries are other manifests
    unless: SKIP_HDL   # skip this entry if the variable is set
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cpnewer_args.Manifest == "" {
			if len(args) != 2 {
				return fmt.Errorf("cpnewer needs <src> <dst> or --manifest")
			}
			cpnewer_args.Src, cpnewer_args.Dst = args[0], args[1]
		} else if len(args) != 0 {
			return fmt.Errorf("cpnewer: file arguments cannot be combined with --manifest")
		}
		cpnewer_args.Tolerance = config.Cpnewer.Tolerance
		cpnewer_args.Report = func(pair cpnewer.Pair, copied bool) {
			counters.FileCopied(copied)
			entry := logrus.WithFields(logrus.Fields{"src": pair.Src, "dst": pair.Dst})
			switch {
			case copied && cpnewer_args.Dryrun:
				entry.Info("would copy")
			case copied:
				entry.Info("copied")
			default:
				entry.Debug("up to date")
			}
		}
		stats, err := cpnewer.Run(cpnewer_args)
		if err != nil {
			return err
		}
		logrus.Debugf("cpnewer: %d copied, %d skipped", stats.Copied, stats.Skipped)
		return nil
	},
	Args: cobra.MaximumNArgs(2),
}

func init() {
	rootCmd.AddCommand(cpnewerCmd)
	flag := cpnewerCmd.Flags()

	flag.StringVarP(&cpnewer_args.Manifest, "manifest", "m", "", "YAML file listing the files to copy")
	flag.BoolVar(&cpnewer_args.Dryrun, "dry", false, "Report what would be copied without copying")
}
