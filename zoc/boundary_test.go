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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBoundary_MatchesRayleighClosedForm(t *testing.T) {
	lx, ly := 1.0, 0.5
	mx, my := distuv.Exponential{Rate: lx}, distuv.Exponential{Rate: ly}
	for _, level := range []float64{0.1, 0.5, 0.9} {
		for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
			x := frac * mx.Quantile(level)
			y, err := Boundary(x, level, mx, my)
			require.NoError(t, err)
			assert.InDelta(t, BoundaryRayleigh(x, level, lx, ly), y, 1e-9, "t=%v x=%v", level, x)
		}
	}
}

func TestBoundary_EndPoints(t *testing.T) {
	mx, my := distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 2}
	level := 0.4

	y, err := Boundary(0, level, mx, my)
	require.NoError(t, err)
	assert.InDelta(t, my.Quantile(level), y, 1e-12)

	y, err = Boundary(mx.Quantile(level), level, mx, my)
	require.NoError(t, err)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestBoundary_OutsideDomain(t *testing.T) {
	mx, my := distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 1}
	_, err := Boundary(mx.Quantile(0.5)+0.1, 0.5, mx, my)
	assert.True(t, errors.Is(err, ErrDomain))

	_, err = Condition(mx.Quantile(0.5)+0.1, 0.5, mx, my)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestBoundary_InfiniteOrdinateAtFullLevel(t *testing.T) {
	mx, my := distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 3}
	y, err := Boundary(0, 1, mx, my)
	require.NoError(t, err)
	assert.True(t, math.IsInf(y, 1))

	// the density of the second link vanishes at infinity
	c, err := Condition(0, 1, mx, my)
	require.NoError(t, err)
	assert.InDelta(t, -mx.Prob(0), c, 1e-12)
}

func TestCondition_VanishesAtRayleighOptimum(t *testing.T) {
	mx, my := distuv.Exponential{Rate: 1}, distuv.Exponential{Rate: 1}
	x := XOptRayleigh(0.5, 1, 1)
	c, err := Condition(x, 0.5, mx, my)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-12)

	// the sum x + y decreases left of the optimum and increases right of it
	left, err := Condition(x/2, 0.5, mx, my)
	require.NoError(t, err)
	right, err := Condition(1.5*x, 0.5, mx, my)
	require.NoError(t, err)
	assert.Less(t, left, 0.0)
	assert.Greater(t, right, 0.0)
}
