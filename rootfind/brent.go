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

// Package rootfind implements bracketed scalar root finding.
package rootfind

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	defaultXTol          = 2e-12 // absolute tolerance on the root location
	defaultMaxIterations = 200   // iteration budget of a single bracket
	machineEps           = 2.220446049250313e-16
)

var (
	// ErrNotBracketed is returned if f has the same sign at both ends of the bracket.
	ErrNotBracketed = errors.New("root is not bracketed")
	// ErrNaN is returned if f evaluates to NaN inside the bracket.
	ErrNaN = errors.New("function value is not a number")
	// ErrNoConvergence is returned if the iteration budget is exhausted.
	ErrNoConvergence = errors.New("root search did not converge")
)

// Func is a scalar function whose evaluation may fail, e.g., when x leaves
// the domain of a quantile function.
type Func func(x float64) (float64, error)

// Float adapts an infallible scalar function.
func Float(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// Settings bounds the work spent on a single bracket.
type Settings struct {
	XTol          float64 // absolute tolerance on the root location
	MaxIterations int     // maximal number of function evaluations after the end points
}

// DefaultSettings are used by Brent if no settings are given.
var DefaultSettings = Settings{XTol: defaultXTol, MaxIterations: defaultMaxIterations}

// Result of a converged root search.
type Result struct {
	Root       float64
	Iterations int
}

// Brent finds a root of f in [a,b] using the Brent-Dekker method, i.e.,
// inverse quadratic interpolation and secant steps safeguarded by bisection.
// f(a) and f(b) must have opposite signs. Infinite function values are
// admitted at the end points; interpolation is skipped while one of the
// involved values is infinite.
func Brent(f Func, a, b float64, settings ...Settings) (Result, error) {
	s := DefaultSettings
	if len(settings) > 0 {
		s = settings[0]
	}
	fa, err := eval(f, a)
	if err != nil {
		return Result{}, err
	}
	fb, err := eval(f, b)
	if err != nil {
		return Result{}, err
	}
	if fa == 0 {
		return Result{Root: a}, nil
	}
	if fb == 0 {
		return Result{Root: b}, nil
	}
	if (fa > 0) == (fb > 0) {
		return Result{}, errors.Wrapf(ErrNotBracketed, "f(%g)=%g and f(%g)=%g", a, fa, b, fb)
	}

	c, fc := a, fa
	d := b - a
	e := d
	for i := 1; i <= s.MaxIterations; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := 2*machineEps*math.Abs(b) + 0.5*s.XTol
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return Result{Root: b, Iterations: i}, nil
		}
		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) && finite(fa, fb, fc) {
			var p, q float64
			sr := fb / fa
			if a == c {
				// secant
				p = 2 * m * sr
				q = 1 - sr
			} else {
				// inverse quadratic interpolation
				qr := fa / fc
				r := fb / fc
				p = sr * (2*m*qr*(qr-r) - (b-a)*(r-1))
				q = (qr - 1) * (r - 1) * (sr - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		} else {
			d = m
			e = m
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, m)
		}
		if fb, err = eval(f, b); err != nil {
			return Result{}, err
		}
	}
	return Result{Root: b, Iterations: s.MaxIterations}, errors.Wrapf(ErrNoConvergence, "after %d iterations", s.MaxIterations)
}

func eval(f Func, x float64) (float64, error) {
	y, err := f(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) {
		return 0, errors.Wrapf(ErrNaN, "at x=%g", x)
	}
	return y, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
