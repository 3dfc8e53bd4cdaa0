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
	"context"
	"math"

	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/cockroachdb/errors"
)

// Closed-form results for Rayleigh fading, i.e., exponentially distributed
// SNRs with rates lx and ly.

// BoundaryRayleigh is Boundary for exponential marginals,
// -ln(2 - t - exp(-lx*x)) / ly.
func BoundaryRayleigh(x, t, lx, ly float64) float64 {
	return -math.Log(2-t-math.Exp(-lx*x)) / ly
}

// XOptRayleigh returns the abscissa of the smallest sum on the level-t
// boundary. The stationarity condition has the single root
// -ln((2-t) ly / (lx+ly)) / lx, which is clipped to the domain [0, Qx(t)].
func XOptRayleigh(t, lx, ly float64) float64 {
	quantile := -math.Log(1-t) / lx
	root := -math.Log((2-t)*ly/(lx+ly)) / lx
	return math.Max(0, math.Min(quantile, root))
}

// CapacityMrcRayleigh is the closed-form maximum ZOC with MRC for Rayleigh
// fading links with rates lx and ly.
func CapacityMrcRayleigh(t, lx, ly float64) (float64, error) {
	if err := checkLevel(t); err != nil {
		return 0, err
	}
	if err := checkRates(lx, ly); err != nil {
		return 0, err
	}
	x := XOptRayleigh(t, lx, ly)
	return Capacity(x + BoundaryRayleigh(x, t, lx, ly)), nil
}

// SnrGrid holds the Rayleigh MRC capacity over all pairs of mean SNRs.
// Entry k belongs to SnrX[k] and SnrY[k]; the first link's SNR varies fastest.
type SnrGrid struct {
	Level    float64
	SnrX     []float64 // mean SNR of the first link in dB
	SnrY     []float64 // mean SNR of the second link in dB
	Capacity []float64
}

// RayleighSnrGrid evaluates CapacityMrcRayleigh at level t for every pair
// of mean SNRs (in dB) taken from snrDb.
func RayleighSnrGrid(ctx context.Context, t float64, snrDb []float64, workers int) (SnrGrid, error) {
	if err := checkLevel(t); err != nil {
		return SnrGrid{}, err
	}
	n := len(snrDb)
	grid := SnrGrid{
		Level: t,
		SnrX:  make([]float64, n*n),
		SnrY:  make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			grid.SnrX[i*n+j] = snrDb[j]
			grid.SnrY[i*n+j] = snrDb[i]
		}
	}
	capacities, err := parallelMap(ctx, n*n, workers, func(k int) (float64, error) {
		lx, err := marginal.Rate(grid.SnrX[k])
		if err != nil {
			return 0, err
		}
		ly, err := marginal.Rate(grid.SnrY[k])
		if err != nil {
			return 0, err
		}
		return CapacityMrcRayleigh(t, lx, ly)
	})
	if err != nil {
		return SnrGrid{}, err
	}
	grid.Capacity = capacities
	return grid, nil
}

func checkRates(rates ...float64) error {
	for _, r := range rates {
		if !(r > 0) || math.IsInf(r, 1) {
			return errors.Wrapf(marginal.ErrInvalidParameter, "rate %v must be positive and finite", r)
		}
	}
	return nil
}
