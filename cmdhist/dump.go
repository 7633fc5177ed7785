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

package cmdhist

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

type Args struct {
	File    string
	Format  string // text or yaml
	Verbose bool
}

type Stats struct {
	NumEntry uint16
	Scanned  int
	Matched  int
}

// Dump writes vals to w in the given format.
func Dump(w io.Writer, vals []RegVal, format string) error {
	switch format {
	case "", "text":
		for _, each := range vals {
			if _, err := fmt.Fprintln(w, each); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		buf, err := yaml.Marshal(vals)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	default:
		return fmt.Errorf("cmdhist: unknown output format %q", format)
	}
}

func Run(args Args, w io.Writer) (Stats, error) {
	h, err := Load(args.File)
	if err != nil {
		return Stats{}, err
	}
	vals := h.RegVals()
	stats := Stats{
		NumEntry: h.NumEntry,
		Scanned:  len(h.Buf),
		Matched:  len(vals),
	}
	return stats, Dump(w, vals, args.Format)
}
