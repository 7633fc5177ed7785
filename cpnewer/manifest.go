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

package cpnewer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

type FileList struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Get    []string `yaml:"get"`
	Unless string   `yaml:"unless"` // skipped if this environment variable is set
}

type Manifest struct {
	Copy []FileList `yaml:"copy"`
}

// Pair is one source/destination file resolved from a manifest
type Pair struct {
	Src, Dst string
}

type manifest_parser struct {
	parsed []string
	pairs  []Pair
}

func (p *manifest_parser) is_parsed(name string) bool {
	for _, k := range p.parsed {
		if name == k {
			return true
		}
	}
	return false
}

// Relative from/to folders are resolved against the manifest's own folder.
// Entries in get ending in .yaml are other manifests, looked up in from.
func (p *manifest_parser) parse_yaml(filename string) error {
	filename = filepath.Clean(filename)
	buf, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cpnewer: cannot open manifest: %w", err)
	}
	p.parsed = append(p.parsed, filename)
	var aux Manifest
	if err := yaml.UnmarshalStrict(buf, &aux); err != nil {
		return fmt.Errorf("cpnewer: cannot parse manifest %s: %w", filename, err)
	}
	dir := filepath.Dir(filename)
	other := make([]string, 0)
	for _, each := range aux.Copy {
		if each.Unless != "" {
			if _, exists := os.LookupEnv(each.Unless); exists {
				continue
			}
		}
		from := resolve(dir, each.From)
		to := resolve(dir, each.To)
		for _, name := range each.Get {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if strings.HasSuffix(name, ".yaml") {
				other = append(other, filepath.Join(from, name))
				continue
			}
			if each.To == "" {
				return fmt.Errorf("cpnewer: %s: no destination folder for %s", filename, name)
			}
			p.pairs = append(p.pairs, Pair{
				Src: filepath.Join(from, name),
				Dst: filepath.Join(to, filepath.Base(name)),
			})
		}
	}
	for _, each := range other {
		if !p.is_parsed(filepath.Clean(each)) {
			if err := p.parse_yaml(each); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolve(dir, path string) string {
	path = os.ExpandEnv(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

// LoadManifest returns the copy pairs listed in filename and the manifests
// it includes, sorted and without duplicates.
func LoadManifest(filename string) ([]Pair, error) {
	var p manifest_parser
	if err := p.parse_yaml(filename); err != nil {
		return nil, err
	}
	sort.Slice(p.pairs, func(i, j int) bool {
		if p.pairs[i].Dst != p.pairs[j].Dst {
			return p.pairs[i].Dst < p.pairs[j].Dst
		}
		return p.pairs[i].Src < p.pairs[j].Src
	})
	uniq := make([]Pair, 0, len(p.pairs))
	for _, each := range p.pairs {
		if len(uniq) == 0 || each != uniq[len(uniq)-1] {
			uniq = append(uniq, each)
		}
	}
	return uniq, nil
}
