// Copyright 2025 Sonic Labs
// This file is part of Zoc, a zero-outage capacity evaluator for dependent fading links
//
// Zoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Zoc. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrSeriesLength is returned when a column does not match the row count
// of the columns already present in a Series.
var ErrSeriesLength = errors.New("column length differs from series length")

// Series is an ordered mapping from column names to equally long columns
// of values. It is the hand-over format between evaluation and output.
type Series struct {
	names   []string
	columns map[string][]float64
}

func NewSeries() *Series {
	return &Series{columns: make(map[string][]float64)}
}

// Add appends a named column. Adding an existing name replaces its values
// and keeps its position.
func (s *Series) Add(name string, values []float64) error {
	if len(s.names) > 0 && !(len(s.names) == 1 && s.names[0] == name) && len(values) != s.Len() {
		return errors.Wrapf(ErrSeriesLength, "column %q has %d values, series has %d rows", name, len(values), s.Len())
	}
	if _, found := s.columns[name]; !found {
		s.names = append(s.names, name)
	}
	s.columns[name] = slices.Clone(values)
	return nil
}

// Names returns the column names in insertion order.
func (s *Series) Names() []string {
	return slices.Clone(s.names)
}

func (s *Series) Column(name string) ([]float64, bool) {
	values, found := s.columns[name]
	return values, found
}

// Len returns the number of rows.
func (s *Series) Len() int {
	if len(s.names) == 0 {
		return 0
	}
	return len(s.columns[s.names[0]])
}

// Rows returns the values row by row in column order.
func (s *Series) Rows() [][]any {
	rows := make([][]any, s.Len())
	for i := range rows {
		row := make([]any, len(s.names))
		for j, name := range s.names {
			row[j] = s.columns[name][i]
		}
		rows[i] = row
	}
	return rows
}
