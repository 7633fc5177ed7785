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
	"github.com/motchy869/code-fractions/invcolor"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var invcolor_args invcolor.Args

var invcolorCmd = &cobra.Command{
	Use:   "invcolor [style.ini]",
	Short: "Inverts the colors of a style file",
	Long: `Reads a style file (style.ini in the current folder by default) and
replaces each line starting with color=rgb(R, G, B) by
color=rgb(255-R, 255-G, 255-B). The other lines are copied as they are.
The result goes to the standard output unless --output is given.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			invcolor_args.Input = args[0]
		}
		stats, err := invcolor.Run(invcolor_args, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		counters.LinesInverted.Add(float64(stats.Inverted))
		logrus.Debugf("invcolor: %d of %d lines inverted", stats.Inverted, stats.Lines)
		return nil
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	rootCmd.AddCommand(invcolorCmd)
	flag := invcolorCmd.Flags()

	flag.StringVarP(&invcolor_args.Output, "output", "o", "", "Output file")
}
