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
	"golang.org/x/sync/errgroup"
)

// Evaluation is the MRC result for a single outage level.
type Evaluation struct {
	Level      float64    // outage level t
	Capacity   float64    // zero-outage capacity in bits/s/Hz
	Sum        float64    // smallest x+y over all converged candidates, +inf if there is none
	Split      float64    // abscissa of the smallest candidate sum, NaN if there is none
	Candidates Candidates // outcome of the bracket search
}

// EvaluateMrc computes the maximum ZOC with MRC for outage level t. The
// smallest candidate sum is capped by the quantiles Qx(t) and Qy(t), i.e.,
// the ends of the boundary, so the result never exceeds what a single link
// guarantees on its own. If no candidate converged, these quantiles alone
// determine the capacity.
//
// For t = 0 the capacity is zero and no search is performed. For t = 1 both
// quantiles are infinite and the capacity is given by the searched optimum
// alone.
func EvaluateMrc(t float64, mx, my marginal.Marginal) (Evaluation, error) {
	if err := checkLevel(t); err != nil {
		return Evaluation{}, err
	}
	if t == 0 {
		return Evaluation{Level: t}, nil
	}
	ev := Evaluation{
		Level:      t,
		Sum:        math.Inf(1),
		Split:      math.NaN(),
		Candidates: FindCandidates(t, mx, my),
	}
	for _, x := range ev.Candidates.Roots {
		y, err := Boundary(x, t, mx, my)
		if err != nil {
			continue
		}
		if s := x + y; s < ev.Sum {
			ev.Sum, ev.Split = s, x
		}
	}
	ev.Capacity = Capacity(math.Min(ev.Sum, math.Min(mx.Quantile(t), my.Quantile(t))))
	return ev, nil
}

// CapacityMrc returns the maximum ZOC with MRC for outage level t.
func CapacityMrc(t float64, mx, my marginal.Marginal) (float64, error) {
	ev, err := EvaluateMrc(t, mx, my)
	if err != nil {
		return 0, err
	}
	return ev.Capacity, nil
}

// EvaluateMrcSeries evaluates EvaluateMrc for every level in ts using up to
// workers goroutines. Results are in the order of ts.
func EvaluateMrcSeries(ctx context.Context, ts []float64, mx, my marginal.Marginal, workers int) ([]Evaluation, error) {
	return parallelMap(ctx, len(ts), workers, func(i int) (Evaluation, error) {
		ev, err := EvaluateMrc(ts[i], mx, my)
		if err != nil {
			return Evaluation{}, errors.Wrapf(err, "level %d", i)
		}
		return ev, nil
	})
}

// CapacityMrcSeries returns the maximum ZOC with MRC for every level in ts.
func CapacityMrcSeries(ctx context.Context, ts []float64, mx, my marginal.Marginal, workers int) ([]float64, error) {
	evs, err := EvaluateMrcSeries(ctx, ts, mx, my, workers)
	if err != nil {
		return nil, err
	}
	capacities := make([]float64, len(evs))
	for i, ev := range evs {
		capacities[i] = ev.Capacity
	}
	return capacities, nil
}

// parallelMap computes f(0), ..., f(n-1) on up to workers goroutines.
// The first error cancels the remaining computations.
func parallelMap[T any](ctx context.Context, n, workers int, f func(i int) (T, error)) ([]T, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]T, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := f(i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
