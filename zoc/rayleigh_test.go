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
)

func TestRayleigh_XOptInterior(t *testing.T) {
	// equal rates: the optimum splits the budget symmetrically
	assert.InDelta(t, math.Log(4.0/3.0), XOptRayleigh(0.5, 1, 1), 1e-12)
	assert.InDelta(t, math.Log(2), XOptRayleigh(1, 1, 1), 1e-12)
}

func TestRayleigh_XOptClippedToDomain(t *testing.T) {
	// stationary point right of Qx(t)
	assert.InDelta(t, -math.Log(1-0.1), XOptRayleigh(0.1, 1, 0.5), 1e-12)
	// stationary point left of zero
	assert.Equal(t, 0.0, XOptRayleigh(0.1, 1, 2))
	// no budget
	assert.Equal(t, 0.0, XOptRayleigh(0, 1, 1))
}

func TestRayleigh_CapacityEdgeLevels(t *testing.T) {
	c, err := CapacityMrcRayleigh(0, 1, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)

	// full budget: x* = ln 2 and y* = ln 2 for unit rates
	c, err = CapacityMrcRayleigh(1, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(1+2*math.Log(2)), c, 1e-12)
}

func TestRayleigh_InvalidArguments(t *testing.T) {
	_, err := CapacityMrcRayleigh(1.5, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidLevel))

	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = CapacityMrcRayleigh(0.5, rate, 1)
		assert.True(t, errors.Is(err, marginal.ErrInvalidParameter), "rate %v", rate)
	}
}

func TestRayleigh_SnrGrid(t *testing.T) {
	snr := []float64{-5, 0, 5}
	grid, err := RayleighSnrGrid(context.Background(), 0.5, snr, 2)
	require.NoError(t, err)
	require.Len(t, grid.Capacity, 9)
	assert.Equal(t, []float64{-5, 0, 5, -5, 0, 5, -5, 0, 5}, grid.SnrX)
	assert.Equal(t, []float64{-5, -5, -5, 0, 0, 0, 5, 5, 5}, grid.SnrY)

	for k := range grid.Capacity {
		lx, err := marginal.Rate(grid.SnrX[k])
		require.NoError(t, err)
		ly, err := marginal.Rate(grid.SnrY[k])
		require.NoError(t, err)
		want, err := CapacityMrcRayleigh(0.5, lx, ly)
		require.NoError(t, err)
		assert.Equal(t, want, grid.Capacity[k])
	}
	// the capacity is symmetric in the two links
	assert.InDelta(t, grid.Capacity[1], grid.Capacity[3], 1e-12)
	// and grows with the SNR of either link
	assert.Greater(t, grid.Capacity[8], grid.Capacity[4])
	assert.Greater(t, grid.Capacity[4], grid.Capacity[0])
}

func TestRayleigh_SnrGridRejectsInvalidInput(t *testing.T) {
	_, err := RayleighSnrGrid(context.Background(), -1, []float64{0}, 1)
	assert.True(t, errors.Is(err, ErrInvalidLevel))

	_, err = RayleighSnrGrid(context.Background(), 0.5, []float64{0, math.NaN()}, 1)
	assert.True(t, errors.Is(err, marginal.ErrInvalidParameter))
}
