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

// Package cpnewer copies files only when the source is newer than the
// destination. A copy keeps the source permissions and modification time so
// that running it twice does nothing the second time.
package cpnewer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// DefaultTolerance absorbs timestamp rounding of file systems like FAT
const DefaultTolerance = time.Second

type Args struct {
	Src, Dst  string
	Manifest  string
	Tolerance time.Duration // zero copies on any newer timestamp
	Dryrun    bool
	// Called after each file is handled, if not nil
	Report func(pair Pair, copied bool)
}

type Stats struct {
	Copied, Skipped int
}

func target(src, dst string) string {
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}
	return dst
}

// Newer reports whether src must be copied over dst: dst does not exist or
// src was modified more than tol after it.
func Newer(src, dst string, tol time.Duration) (bool, error) {
	sinfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("cpnewer: %w", err)
	}
	if sinfo.IsDir() {
		return false, fmt.Errorf("cpnewer: %s is a directory", src)
	}
	dinfo, err := os.Stat(target(src, dst))
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("cpnewer: %w", err)
	}
	if !dinfo.Mode().IsRegular() {
		return true, nil
	}
	return sinfo.ModTime().Sub(dinfo.ModTime()) > tol, nil
}

// CopyIfNewer copies src to dst when Newer says so. If dst is a folder the
// file is copied inside it.
func CopyIfNewer(src, dst string, tol time.Duration) (bool, error) {
	newer, err := Newer(src, dst, tol)
	if err != nil || !newer {
		return false, err
	}
	if err := copy_file(src, target(src, dst)); err != nil {
		return false, err
	}
	return true, nil
}

func copy_file(src, dst string) error {
	fin, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cpnewer: %w", err)
	}
	defer fin.Close()
	info, err := fin.Stat()
	if err != nil {
		return fmt.Errorf("cpnewer: %w", err)
	}
	fout, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cpnewer: %w", err)
	}
	if _, err := io.Copy(fout, fin); err != nil {
		fout.Close()
		return fmt.Errorf("cpnewer: copying %s: %w", src, err)
	}
	if err := fout.Close(); err != nil {
		return fmt.Errorf("cpnewer: %w", err)
	}
	// OpenFile does not change the mode of an existing file
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("cpnewer: %w", err)
	}
	mtime := info.ModTime()
	return os.Chtimes(dst, mtime, mtime)
}

// Run copies either args.Src to args.Dst or every file of args.Manifest
func Run(args Args) (stats Stats, err error) {
	var pairs []Pair
	if args.Manifest != "" {
		pairs, err = LoadManifest(args.Manifest)
		if err != nil {
			return stats, err
		}
	} else {
		if args.Src == "" || args.Dst == "" {
			return stats, fmt.Errorf("cpnewer: source and destination are needed")
		}
		pairs = []Pair{{Src: args.Src, Dst: args.Dst}}
	}
	for _, each := range pairs {
		var copied bool
		if args.Dryrun {
			copied, err = Newer(each.Src, each.Dst, args.Tolerance)
		} else {
			copied, err = CopyIfNewer(each.Src, each.Dst, args.Tolerance)
		}
		if err != nil {
			return stats, err
		}
		if copied {
			stats.Copied++
		} else {
			stats.Skipped++
		}
		if args.Report != nil {
			args.Report(each, copied)
		}
	}
	return stats, nil
}
