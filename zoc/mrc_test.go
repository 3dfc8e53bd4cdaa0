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
	"testing"

	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestMrc_ZeroLevelHasZeroCapacity(t *testing.T) {
	pairs := [][2]marginal.Marginal{
		{distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 0.1}},
		{distuv.Gamma{Alpha: 5, Beta: 0.5}, distuv.Gamma{Alpha: 2, Beta: 2}},
	}
	for _, pair := range pairs {
		ev, err := EvaluateMrc(0, pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, 0.0, ev.Capacity)
		assert.Equal(t, 0, ev.Candidates.Brackets())
	}
}

func TestMrc_UnitMeanRayleighReference(t *testing.T) {
	rv := distuv.Exponential{Rate: 1}
	ev, err := EvaluateMrc(0.5, rv, rv)
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(1+2*math.Log(4.0/3.0)), ev.Capacity, 1e-9)
	assert.InDelta(t, math.Log(4.0/3.0), ev.Split, 1e-9)
	assert.InDelta(t, 2*math.Log(4.0/3.0), ev.Sum, 1e-9)
}

func TestMrc_MatchesRayleighClosedForm(t *testing.T) {
	rates := [][2]float64{{1, 0.5}, {1, 1}, {1, 2}, {0.1, 0.2}, {0.2, 0.1}}
	for _, rate := range rates {
		mx, my := distuv.Exponential{Rate: rate[0]}, distuv.Exponential{Rate: rate[1]}
		for _, level := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 1} {
			numerical, err := CapacityMrc(level, mx, my)
			require.NoError(t, err)
			closed, err := CapacityMrcRayleigh(level, rate[0], rate[1])
			require.NoError(t, err)
			assert.InDelta(t, closed, numerical, 1e-6, "rates=%v t=%v", rate, level)
		}
	}
}

func TestMrc_NeverExceedsSingleLinkBound(t *testing.T) {
	pairs := [][2]marginal.Marginal{
		{distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 0.3}},
		{distuv.Gamma{Alpha: 5, Beta: 0.5}, distuv.Gamma{Alpha: 5, Beta: 0.5}},
		{distuv.Gamma{Alpha: 2, Beta: 1}, distuv.Exponential{Rate: 0.5}},
	}
	for _, pair := range pairs {
		mx, my := pair[0], pair[1]
		for _, level := range floats.Span(make([]float64, 19), 0.05, 0.95) {
			c, err := CapacityMrc(level, mx, my)
			require.NoError(t, err)
			bound := Capacity(math.Min(mx.Quantile(level), my.Quantile(level)))
			assert.LessOrEqual(t, c, bound, "t=%v", level)
			assert.GreaterOrEqual(t, c, 0.0)
		}
	}
}

func TestMrc_NonDecreasingInLevel(t *testing.T) {
	pairs := [][2]marginal.Marginal{
		{distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 0.3}},
		{distuv.Gamma{Alpha: 5, Beta: 0.5}, distuv.Gamma{Alpha: 5, Beta: 0.25}},
	}
	levels := floats.Span(make([]float64, 20), 0, 0.95)
	for _, pair := range pairs {
		capacities, err := CapacityMrcSeries(context.Background(), levels, pair[0], pair[1], 4)
		require.NoError(t, err)
		for i := 1; i < len(capacities); i++ {
			assert.GreaterOrEqual(t, capacities[i]+1e-12, capacities[i-1], "t=%v", levels[i])
		}
	}
}

func TestMrc_IdenticalNakagamiLinksUseBoundaryEnd(t *testing.T) {
	// for a concave quantile function the smallest sum lies at the end of the boundary
	rv := distuv.Gamma{Alpha: 5, Beta: 0.5}
	ev, err := EvaluateMrc(0.3, rv, rv)
	require.NoError(t, err)
	assert.InDelta(t, Capacity(rv.Quantile(0.3)), ev.Capacity, 1e-9)
	assert.Greater(t, ev.Sum, rv.Quantile(0.3))
}

func TestMrc_DegradesToSingleLinkBoundWithoutCandidates(t *testing.T) {
	mx, my := distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 2}
	ev, err := EvaluateMrc(0.1, mx, my)
	require.NoError(t, err)
	assert.Empty(t, ev.Candidates.Roots)
	assert.True(t, math.IsInf(ev.Sum, 1))
	assert.True(t, math.IsNaN(ev.Split))
	assert.InDelta(t, Capacity(my.Quantile(0.1)), ev.Capacity, 1e-12)
}

func TestMrc_UniformMarginalsHaveFlatBoundary(t *testing.T) {
	rv := distuv.Uniform{Min: 0, Max: 1}
	for _, level := range []float64{0.2, 0.5, 0.8} {
		ev, err := EvaluateMrc(level, rv, rv)
		require.NoError(t, err)
		assert.InDelta(t, Capacity(level), ev.Capacity, 1e-12)
	}
}

func TestMrc_InvalidLevel(t *testing.T) {
	rv := distuv.Exponential{Rate: 1}
	for _, level := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := CapacityMrc(level, rv, rv)
		assert.True(t, errors.Is(err, ErrInvalidLevel), "t=%v", level)
	}
	_, err := CapacityMrcSeries(context.Background(), []float64{0.5, 2}, rv, rv, 2)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}

func TestMrc_SeriesKeepsOrder(t *testing.T) {
	mx, my := distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 0.5}
	levels := []float64{0.9, 0.1, 0.5, 0, 1, 0.3}
	for _, workers := range []int{0, 1, 3, 16} {
		capacities, err := CapacityMrcSeries(context.Background(), levels, mx, my, workers)
		require.NoError(t, err)
		require.Len(t, capacities, len(levels))
		for i, level := range levels {
			want, err := CapacityMrc(level, mx, my)
			require.NoError(t, err)
			assert.Equal(t, want, capacities[i], "workers=%d t=%v", workers, level)
		}
	}
}

func TestMrc_SeriesHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rv := distuv.Exponential{Rate: 1}
	_, err := CapacityMrcSeries(ctx, []float64{0.1, 0.2}, rv, rv, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
