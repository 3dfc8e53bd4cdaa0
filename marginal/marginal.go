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

// Package marginal provides the per-link fading-gain distributions that feed
// the zero-outage capacity computations.
package marginal

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// minNakagamiShape is the smallest admissible Nakagami-m fading parameter.
const minNakagamiShape = 0.5

// ErrInvalidParameter is returned if a distribution cannot be built from its parameters.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

// Marginal is the distribution of the received SNR of a single link.
// Any continuous distribution on [0,inf) exposing these three functions can
// be used; gonum's distuv.Exponential and distuv.Gamma satisfy it directly.
//
//go:generate mockgen -source marginal.go -destination marginal_mock.go -package marginal
type Marginal interface {
	// CDF returns Pr(X <= x).
	CDF(x float64) float64
	// Quantile is the inverse CDF; p must be in [0,1].
	Quantile(p float64) float64
	// Prob returns the probability density at x.
	Prob(x float64) float64
}

// DbToLinear converts a value given in dB to linear scale.
func DbToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// NewRayleigh returns the SNR distribution of a Rayleigh fading link with
// the given mean SNR in dB, i.e., an exponential distribution with rate 1/snr.
func NewRayleigh(snrDb float64) (distuv.Exponential, error) {
	snr, err := meanSnr(snrDb)
	if err != nil {
		return distuv.Exponential{}, err
	}
	return distuv.Exponential{Rate: 1 / snr}, nil
}

// NewNakagami returns the SNR distribution of a Nakagami-m fading link with
// the given mean SNR in dB. The SNR is Gamma distributed with shape m and
// scale snr/m.
func NewNakagami(m float64, snrDb float64) (distuv.Gamma, error) {
	if math.IsNaN(m) || m < minNakagamiShape {
		return distuv.Gamma{}, errors.Wrapf(ErrInvalidParameter, "nakagami shape m=%v must be at least %v", m, minNakagamiShape)
	}
	snr, err := meanSnr(snrDb)
	if err != nil {
		return distuv.Gamma{}, err
	}
	return distuv.Gamma{Alpha: m, Beta: m / snr}, nil
}

// Rate returns the rate parameter of an exponential marginal with the given
// mean SNR in dB.
func Rate(snrDb float64) (float64, error) {
	snr, err := meanSnr(snrDb)
	if err != nil {
		return 0, err
	}
	return 1 / snr, nil
}

func meanSnr(snrDb float64) (float64, error) {
	if math.IsNaN(snrDb) || math.IsInf(snrDb, 0) {
		return 0, errors.Wrapf(ErrInvalidParameter, "mean snr %v dB is not finite", snrDb)
	}
	snr := DbToLinear(snrDb)
	if snr == 0 || math.IsInf(snr, 0) {
		return 0, errors.Wrapf(ErrInvalidParameter, "mean snr %v dB is out of range", snrDb)
	}
	return snr, nil
}
