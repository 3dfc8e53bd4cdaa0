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
	"github.com/0xsoniclabs/zoc/marginal"
	"github.com/0xsoniclabs/zoc/rootfind"
	"github.com/cockroachdb/errors"
)

// PStar returns the level p* at which the quantiles of both links meet,
// qx(p) = qy(1-p). The difference is increasing in p, so a single bracket
// over [0,1] suffices.
func PStar(qx, qy func(float64) float64) (float64, error) {
	match := func(p float64) float64 {
		return qx(p) - qy(1-p)
	}
	res, err := rootfind.Brent(rootfind.Float(match), 0, 1)
	if err != nil {
		return 0, errors.Wrap(err, "cannot match quantiles of both links")
	}
	return res.Root, nil
}

// CapacitySc returns the maximum ZOC with selection combining. Only two
// links are supported; other configurations fail with ErrUnsupported
// before any marginal is evaluated.
func CapacitySc(marginals ...marginal.Marginal) (float64, error) {
	if len(marginals) != 2 {
		return 0, errors.Wrapf(ErrUnsupported, "selection combining over %d links, only 2 are supported", len(marginals))
	}
	qx, qy := marginals[0].Quantile, marginals[1].Quantile
	p, err := PStar(qx, qy)
	if err != nil {
		return 0, err
	}
	return Capacity(qx(p)), nil
}
