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

package rootfind

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrent_FindsPolynomialRoot(t *testing.T) {
	res, err := Brent(Float(func(x float64) float64 { return x*x - 2 }), 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-11)
	assert.Greater(t, res.Iterations, 0)
}

func TestBrent_FindsTranscendentalRoot(t *testing.T) {
	// x = cos(x) has a single root near 0.739085
	res, err := Brent(Float(func(x float64) float64 { return x - math.Cos(x) }), -1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, res.Root, 1e-11)
}

func TestBrent_RootAtEndPoint(t *testing.T) {
	f := Float(func(x float64) float64 { return x - 1 })
	res, err := Brent(f, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Root)
	assert.Equal(t, 0, res.Iterations)

	res, err = Brent(f, -3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Root)
}

func TestBrent_NotBracketed(t *testing.T) {
	_, err := Brent(Float(func(x float64) float64 { return x*x + 1 }), -1, 1)
	assert.True(t, errors.Is(err, ErrNotBracketed))
}

func TestBrent_NaNIsReported(t *testing.T) {
	_, err := Brent(Float(func(x float64) float64 { return math.Log(x) }), -1, 2)
	assert.True(t, errors.Is(err, ErrNaN))
}

func TestBrent_FunctionErrorIsPropagated(t *testing.T) {
	domainErr := errors.New("outside domain")
	f := func(x float64) (float64, error) {
		if x > 1 {
			return 0, domainErr
		}
		return x - 0.5, nil
	}
	_, err := Brent(f, 0, 2)
	assert.True(t, errors.Is(err, domainErr))
}

func TestBrent_InfiniteEndPoints(t *testing.T) {
	// difference of exponential quantiles at p and 1-p; infinite at both ends
	quantile := func(p float64) float64 { return -math.Log(1 - p) }
	f := Float(func(p float64) float64 { return quantile(p) - quantile(1-p) })
	res, err := Brent(f, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Root, 1e-10)
}

func TestBrent_IterationBudget(t *testing.T) {
	f := Float(func(x float64) float64 { return math.Cbrt(x - 0.3) })
	_, err := Brent(f, 0, 1, Settings{XTol: 1e-15, MaxIterations: 1})
	assert.True(t, errors.Is(err, ErrNoConvergence))

	res, err := Brent(f, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.Root, 1e-10)
}
