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

// Package copula provides the dependency structures attaining the maximum
// zero-outage capacity and Monte Carlo estimates based on them.
package copula

import (
	"math"
	"math/rand"

	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/cockroachdb/errors"
)

// ErrInvalidLevel is returned for outage levels outside of [0,1].
var ErrInvalidLevel = errors.New("copula parameter outside of [0,1]")

// ZeroOutage is the copula C_t that is countermonotonic on [0,t]^2 and
// comonotonic elsewhere. With outage budget t it attains the maximum ZOC
// of maximum ratio combining: all joint realizations with U < t lie on the
// support boundary V = t - U.
type ZeroOutage struct {
	T float64
}

// New returns the zero-outage copula for outage level t.
func New(t float64) (ZeroOutage, error) {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return ZeroOutage{}, errors.Wrapf(ErrInvalidLevel, "t=%v", t)
	}
	return ZeroOutage{T: t}, nil
}

// CDF evaluates C_t(a,b).
func (c ZeroOutage) CDF(a, b float64) float64 {
	if a < c.T && b < c.T {
		return math.Max(a+b-c.T, 0)
	}
	return M(a, b)
}

// Sample draws n realizations (U,V) with uniform marginals.
func (c ZeroOutage) Sample(rg *rand.Rand, n int) [][2]float64 {
	samples := make([][2]float64, n)
	for i := range samples {
		u := rg.Float64()
		v := u
		if u < c.T {
			v = c.T - u
		}
		samples[i] = [2]float64{u, v}
	}
	return samples
}

// W is the lower Frechet-Hoeffding bound, the countermonotonic copula.
func W(a, b float64) float64 {
	return math.Max(a+b-1, 0)
}

// M is the upper Frechet-Hoeffding bound, the comonotonic copula.
func M(a, b float64) float64 {
	return math.Min(a, b)
}

// EmpiricalMrcSum returns the smallest SNR sum x+y among n joint samples of
// the links drawn with copula c. It bounds the MRC threshold of c from above
// and approaches it with growing n.
func EmpiricalMrcSum(rg *rand.Rand, c ZeroOutage, n int, mx, my marginal.Marginal) float64 {
	best := math.Inf(1)
	for _, s := range c.Sample(rg, n) {
		best = math.Min(best, mx.Quantile(s[0])+my.Quantile(s[1]))
	}
	return best
}

// EmpiricalScThreshold returns the smallest SNR max(x,y) among n
// countermonotonic joint samples of the links, which approaches the
// maximum SC threshold from above.
func EmpiricalScThreshold(rg *rand.Rand, n int, mx, my marginal.Marginal) float64 {
	best := math.Inf(1)
	for k := 0; k < n; k++ {
		u := rg.Float64()
		best = math.Min(best, math.Max(mx.Quantile(u), my.Quantile(1-u)))
	}
	return best
}
