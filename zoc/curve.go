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
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"gonum.org/v1/gonum/floats"
)

// BoundaryCurve samples the level-t support boundary at n equi-distant
// abscissas in [0, Qx(t)]. Points with an infinite ordinate (x = 0 for t = 1)
// are left out.
func BoundaryCurve(t float64, mx, my marginal.Marginal, n int) ([][2]float64, error) {
	if err := checkLevel(t); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, errors.Newf("boundary curve needs at least 2 points, got %d", n)
	}
	upper := searchCutoff(t, mx)
	if !(upper > 0) {
		return [][2]float64{{0, 0}}, nil
	}
	curve := make([][2]float64, 0, n)
	for _, x := range floats.Span(make([]float64, n), 0, upper) {
		y, err := Boundary(x, t, mx, my)
		if err != nil {
			return nil, err
		}
		if math.IsInf(y, 0) {
			continue
		}
		curve = append(curve, [2]float64{x, y})
	}
	return curve, nil
}

// CompressCurve reduces a curve to at most keep points with the
// Visvalingam-Whyatt algorithm. The end points are always retained.
func CompressCurve(curve [][2]float64, keep int) [][2]float64 {
	if keep < 2 || len(curve) <= keep {
		return curve
	}
	ls := make(orb.LineString, len(curve))
	for i, p := range curve {
		ls[i] = orb.Point(p)
	}
	compressed := simplify.VisvalingamKeep(keep).Simplify(ls).(orb.LineString)
	out := make([][2]float64, len(compressed))
	for i := range compressed {
		out[i] = [2]float64(compressed[i])
	}
	return out
}
