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

// Package metrics counts the work done by one fractions run. The counters are
// written in the node_exporter textfile format when the run ends.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	reg *prometheus.Registry

	RecordsScanned prometheus.Counter
	RecordsMatched prometheus.Counter
	Files          *prometheus.CounterVec // label result: copied, skipped
	LinesInverted  prometheus.Counter
	HeadersWritten prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		RecordsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractions_cmdhist_records_scanned_total",
			Help: "Command history records decoded",
		}),
		RecordsMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractions_cmdhist_records_matched_total",
			Help: "RF-IC register values extracted",
		}),
		Files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fractions_cpnewer_files_total",
			Help: "Files handled by cpnewer",
		}, []string{"result"}),
		LinesInverted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractions_invcolor_lines_inverted_total",
			Help: "color=rgb lines inverted",
		}),
		HeadersWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractions_csrhdr_headers_written_total",
			Help: "CSR header files written",
		}),
	}
	m.reg.MustRegister(
		m.RecordsScanned,
		m.RecordsMatched,
		m.Files,
		m.LinesInverted,
		m.HeadersWritten,
	)
	return m
}

func (m *Metrics) FileCopied(copied bool) {
	if copied {
		m.Files.WithLabelValues("copied").Inc()
	} else {
		m.Files.WithLabelValues("skipped").Inc()
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// WriteTextfile does nothing if path is empty
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.reg)
}
