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

// Package invcolor inverts the color=rgb lines of a style file
package invcolor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const DefaultInput = "style.ini"

var ErrBadColor = errors.New("invalid color")

var rgb_re = regexp.MustCompile(`rgb\((\d+), (\d+), (\d+)\)`)

type Args struct {
	Input  string
	Output string // stdout if empty
}

type Stats struct {
	Lines, Inverted int
}

func invert_line(line string) (string, error) {
	m := rgb_re.FindStringSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("%w: no rgb(r, g, b) triple", ErrBadColor)
	}
	var inv [3]int
	for k := range inv {
		c, err := strconv.Atoi(m[k+1])
		if err != nil || c > 255 {
			return "", fmt.Errorf("%w: component %s out of range", ErrBadColor, m[k+1])
		}
		inv[k] = 255 - c
	}
	return fmt.Sprintf("color=rgb(%d, %d, %d)\n", inv[0], inv[1], inv[2]), nil
}

// Invert copies r to w replacing every color=rgb line by its negative.
// Other lines are copied unchanged.
func Invert(r io.Reader, w io.Writer) (stats Stats, err error) {
	rd := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		line, rderr := rd.ReadString('\n')
		if rderr != nil && rderr != io.EOF {
			return stats, rderr
		}
		if len(line) > 0 {
			stats.Lines++
			if strings.HasPrefix(line, "color=rgb") {
				line, err = invert_line(line)
				if err != nil {
					return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
				}
				stats.Inverted++
			}
			if _, err = bw.WriteString(line); err != nil {
				return stats, err
			}
		}
		if rderr == io.EOF {
			break
		}
	}
	return stats, bw.Flush()
}

func Run(args Args, stdout io.Writer) (Stats, error) {
	if args.Input == "" {
		args.Input = DefaultInput
	}
	if args.Output != "" && filepath.Clean(args.Output) == filepath.Clean(args.Input) {
		return Stats{}, fmt.Errorf("invcolor: cannot write over the input file %s", args.Input)
	}
	fin, err := os.Open(args.Input)
	if err != nil {
		return Stats{}, fmt.Errorf("invcolor: %w", err)
	}
	defer fin.Close()
	if args.Output == "" {
		stats, err := Invert(fin, stdout)
		if err != nil {
			return stats, fmt.Errorf("invcolor: %s: %w", args.Input, err)
		}
		return stats, nil
	}
	fout, err := os.Create(args.Output)
	if err != nil {
		return Stats{}, fmt.Errorf("invcolor: %w", err)
	}
	stats, err := Invert(fin, fout)
	if cerr := fout.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return stats, fmt.Errorf("invcolor: %s: %w", args.Input, err)
	}
	return stats, nil
}
