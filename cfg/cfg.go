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

// Package cfg holds the user settings shared by all fractions commands
package cfg

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// EnvVar names the configuration file when --config is not given
const EnvVar = "FRACTIONS_CONFIG"

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile, disabled if empty
}

type CmdhistConfig struct {
	Format string `yaml:"format"`
}

type CsrhdrConfig struct {
	Ext string `yaml:"ext"`
}

type CpnewerConfig struct {
	Tolerance time.Duration `yaml:"tolerance"`
}

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Cmdhist CmdhistConfig `yaml:"cmdhist"`
	Csrhdr  CsrhdrConfig  `yaml:"csrhdr"`
	Cpnewer CpnewerConfig `yaml:"cpnewer"`
}

func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Cmdhist: CmdhistConfig{Format: "text"},
		Csrhdr:  CsrhdrConfig{Ext: ".svh"},
		Cpnewer: CpnewerConfig{Tolerance: time.Second},
	}
}

// Load reads path over the default values. An empty path falls back to
// $FRACTIONS_CONFIG and, if that is not set either, to the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cfg: cannot read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(buf, cfg); err != nil {
		return nil, fmt.Errorf("cfg: cannot parse %s: %w", path, err)
	}
	if cfg.Cpnewer.Tolerance < 0 {
		return nil, fmt.Errorf("cfg: %s: negative cpnewer tolerance", path)
	}
	return cfg, nil
}
