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
)

// probabilityTolerance absorbs rounding of t - Fx(x) at the ends of the
// boundary's domain.
const probabilityTolerance = 1e-12

// Boundary returns the ordinate y = Qy(t - Fx(x)) of the level-t support
// boundary at abscissa x. The boundary is defined for Fx(x) <= t; beyond
// that ErrDomain is returned.
func Boundary(x, t float64, mx, my marginal.Marginal) (float64, error) {
	p := t - mx.CDF(x)
	switch {
	case math.IsNaN(p):
		return 0, errors.Wrapf(ErrDomain, "probability is NaN at x=%g, t=%g", x, t)
	case p < 0:
		if p < -probabilityTolerance {
			return 0, errors.Wrapf(ErrDomain, "probability %g at x=%g, t=%g", p, x, t)
		}
		p = 0
	case p > 1:
		if p > 1+probabilityTolerance {
			return 0, errors.Wrapf(ErrDomain, "probability %g at x=%g, t=%g", p, x, t)
		}
		p = 1
	}
	return my.Quantile(p), nil
}

// Condition is the first-order optimality condition for the minimal sum
// x + Boundary(x): the densities of both links agree along the boundary,
// fy(Boundary(x)) - fx(x) = 0.
func Condition(x, t float64, mx, my marginal.Marginal) (float64, error) {
	y, err := Boundary(x, t, mx, my)
	if err != nil {
		return 0, err
	}
	return density(my, y) - density(mx, x), nil
}

// density evaluates the density of m, which vanishes at infinity. The
// boundary reaches y = +inf at x = 0 for t = 1.
func density(m marginal.Marginal, v float64) float64 {
	if math.IsInf(v, 1) {
		return 0
	}
	return m.Prob(v)
}
