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

// Package csrhdr generates the SystemVerilog header of a CSR block from the
// module source produced by the register generator. The header is the source
// up to the end of the port list with the module declared extern.
package csrhdr

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const DefaultExt = ".svh"

var (
	ErrNoModule  = errors.New("module declaration not found")
	ErrNoPortEnd = errors.New("end of port list not found")
)

var (
	module_re   = regexp.MustCompile(`^\s*module\s*\w+\s*`)
	port_end_re = regexp.MustCompile(`^\s*\)\s*;`)
)

type Args struct {
	File   string // .sv source
	Output string // optional, derived from File if empty
	Ext    string // header extension, DefaultExt if empty
}

type Header struct {
	Lines       []string
	ModuleLine  int // index of the extern module line
	PortEndLine int // index of the closing ");"
}

// Extract scans the source until the port list of the first module is closed
func Extract(r io.Reader) (*Header, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	hdr := &Header{ModuleLine: -1, PortEndLine: -1}
	for scanner.Scan() {
		line := scanner.Text()
		k := len(hdr.Lines)
		if hdr.ModuleLine < 0 && module_re.MatchString(line) {
			hdr.ModuleLine = k
			line = "extern " + line
		}
		hdr.Lines = append(hdr.Lines, line)
		if hdr.ModuleLine >= 0 && port_end_re.MatchString(line) {
			hdr.PortEndLine = k
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if hdr.ModuleLine < 0 {
		return nil, ErrNoModule
	}
	if hdr.PortEndLine < 0 {
		return nil, fmt.Errorf("%w after line %d", ErrNoPortEnd, hdr.ModuleLine+1)
	}
	return hdr, nil
}

func (hdr *Header) WriteTo(w io.Writer) (int64, error) {
	var bout bytes.Buffer
	for _, line := range hdr.Lines {
		bout.WriteString(line)
		bout.WriteByte('\n')
	}
	return bout.WriteTo(w)
}

// HeaderPath replaces the .sv extension of src with ext
func HeaderPath(src, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	return strings.TrimSuffix(src, ".sv") + ext
}

// Run writes the header for args.File and returns its path
func Run(args Args) (string, error) {
	f, err := os.Open(args.File)
	if err != nil {
		return "", fmt.Errorf("csrhdr: %w", err)
	}
	defer f.Close()
	hdr, err := Extract(f)
	if err != nil {
		return "", fmt.Errorf("csrhdr: %s: %w", args.File, err)
	}
	outpath := args.Output
	if outpath == "" {
		outpath = HeaderPath(args.File, args.Ext)
	}
	if outpath == args.File {
		return "", fmt.Errorf("csrhdr: output would overwrite the source %s", args.File)
	}
	fout, err := os.Create(outpath)
	if err != nil {
		return "", fmt.Errorf("csrhdr: %w", err)
	}
	_, err = hdr.WriteTo(fout)
	if cerr := fout.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("csrhdr: %s: %w", outpath, err)
	}
	return outpath, nil
}
