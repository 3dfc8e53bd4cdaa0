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

// Package zoc computes the maximum zero-outage capacity (ZOC) of two
// dependent fading links for maximum ratio combining (MRC) and selection
// combining (SC) at the receiver.
//
// For an outage budget t the capacity-maximizing dependency structure
// places the joint support on the boundary y = Qy(t - Fx(x)), where Fx is
// the CDF of the first link and Qy the quantile function of the second. The
// MRC capacity is determined by the smallest sum x+y along this boundary.
// Its stationary points are the roots of fy(y) - fx(x), which are located
// with a multi-bracket search since the condition need not have a unique
// root. Exponential marginals (Rayleigh fading) admit a closed form.
package zoc

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDomain is returned if a quantile function would be evaluated
	// outside of [0,1].
	ErrDomain = errors.New("probability outside of [0,1]")
	// ErrInvalidLevel is returned for outage levels outside of [0,1].
	ErrInvalidLevel = errors.New("outage level outside of [0,1]")
	// ErrUnsupported is returned for link configurations that cannot be
	// evaluated, e.g., selection combining over more than two links.
	ErrUnsupported = errors.New("unsupported configuration")
)

// Capacity converts an SNR threshold into a rate in bits/s/Hz.
func Capacity(snr float64) float64 {
	return math.Log2(1 + snr)
}

// Threshold is the inverse of Capacity, i.e., the SNR threshold 2^c - 1
// that supports rate c.
func Threshold(c float64) float64 {
	return math.Exp2(c) - 1
}

func checkLevel(t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return errors.Wrapf(ErrInvalidLevel, "t=%v", t)
	}
	return nil
}
