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

package zoc

import (
	"math"

	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/0xsoniclabs/zoc/rootfind"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

const (
	gridStart  = 1e-5 // first log-spaced point of the forward grid
	gridPoints = 50   // points per grid

	// The quantile of the first link diverges for t -> 1. At t = 1 the
	// search interval is cut at Qx(1-singularGap) and the log-spaced grids
	// are refined towards both ends of the interval.
	singularGap    = 1e-8
	singularStart  = 1e-8
	singularPoints = 60
)

// Candidates collects the outcome of all brackets searched for one level t.
type Candidates struct {
	Roots        []float64 // converged roots of the stationarity condition
	NoSignChange int       // brackets without a sign change of the condition
	Failed       int       // brackets aborted by a domain error, NaN or the iteration budget
}

// Brackets returns the number of searched brackets.
func (c Candidates) Brackets() int {
	return len(c.Roots) + c.NoSignChange + c.Failed
}

// FindCandidates locates the stationary points of x + Boundary(x) for
// level t. The condition may have none, one or several roots and may be
// ill-conditioned close to the ends of the domain, so the interval
// [0, cutoff] is covered by three grids (log-spaced forward, its mirror
// image, and linear). Each pair of adjacent grid points is a bracket
// submitted to Brent's method. Brackets that do not converge are counted,
// not reported as errors. For t <= 0 nothing is searched.
func FindCandidates(t float64, mx, my marginal.Marginal) Candidates {
	var c Candidates
	if t <= 0 {
		return c
	}
	cond := func(x float64) (float64, error) {
		return Condition(x, t, mx, my)
	}
	for _, grid := range bracketGrids(t, searchCutoff(t, mx)) {
		for i := 1; i < len(grid); i++ {
			lo, hi := grid[i-1], grid[i]
			if !(lo < hi) {
				continue
			}
			res, err := rootfind.Brent(cond, lo, hi)
			switch {
			case err == nil:
				c.Roots = append(c.Roots, res.Root)
			case errors.Is(err, rootfind.ErrNotBracketed):
				c.NoSignChange++
			default:
				c.Failed++
			}
		}
	}
	return c
}

// searchCutoff is the right end of the boundary's domain, Qx(t).
func searchCutoff(t float64, mx marginal.Marginal) float64 {
	if t >= 1 {
		return mx.Quantile(1 - singularGap)
	}
	return mx.Quantile(t)
}

// bracketGrids returns the forward, backward and linear grids on [0, upper].
func bracketGrids(t, upper float64) [][]float64 {
	start, n := gridStart, gridPoints
	if t >= 1 {
		start, n = singularStart, singularPoints
	}
	if !(upper > 0) || math.IsInf(upper, 1) {
		return nil
	}

	forward := make([]float64, n+1)
	if upper > start {
		floats.LogSpan(forward[1:], start, upper)
	} else {
		floats.Span(forward, 0, upper)
	}
	forward[n] = upper

	backward := make([]float64, n+1)
	for i, x := range forward {
		backward[n-i] = upper - x
	}
	backward[0] = 0

	linear := floats.Span(make([]float64, gridPoints), 0, upper)
	linear[gridPoints-1] = upper
	return [][]float64{forward, backward, linear}
}
