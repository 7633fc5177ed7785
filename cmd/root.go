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
	"github.com/motchy869/code-fractions/cfg"
	"github.com/motchy869/code-fractions/metrics"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg_path string
	config   = cfg.Default()
	counters = metrics.New()
)

var rootCmd = &cobra.Command{
	Use:   "fractions",
	Short: "Small tools for FPGA and firmware work",
	Long: `fractions groups small single pass tools:

  cmdhist   extracts RF-IC register writes from a serial command history dump
  csrhdr    derives the .svh header of a CSR SystemVerilog module
  cpnewer   copies files only when the source is newer
  invcolor  inverts the color=rgb(...) lines of a style file

Settings are read from the YAML file given by --config or $FRACTIONS_CONFIG.`,
	SilenceUsage:  true,
	SilenceErrors: true, // main logs them
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = cfg.Load(cfg_path)
		if err != nil {
			return err
		}
		setup_logger(config.Log)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if err := counters.WriteTextfile(config.Metrics.Textfile); err != nil {
			return err
		}
		if config.Metrics.Textfile != "" {
			logrus.Debugf("metrics written to %s", config.Metrics.Textfile)
		}
		return nil
	},
}

func setup_logger(lc cfg.LogConfig) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", lc.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if lc.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// Execute runs the command selected by os.Args
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg_path, "config", "", "YAML settings file (default $"+cfg.EnvVar+")")
}
