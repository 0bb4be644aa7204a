// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"
)

const minLogValue = 1e-10

// PriceTransform maps prices to media Y coordinates and back. It is built
// per paint and immutable afterwards. Y is inverted because canvas Y grows
// downward while price grows upward.
type PriceTransform struct {
	chartHeight float64
	isLog       bool
	base        float64
	valueRange  float64
}

func NewPriceTransform(priceMin, priceMax, chartHeight float64, isLog bool) PriceTransform {
	tr := PriceTransform{
		chartHeight: chartHeight,
		isLog:       isLog,
	}
	if isLog {
		tr.base = math.Log(math.Max(priceMin, minLogValue))
		tr.valueRange = math.Log(math.Max(priceMax, minLogValue)) - tr.base
	} else {
		tr.base = priceMin
		tr.valueRange = priceMax - priceMin
	}
	if tr.valueRange == 0 {
		tr.valueRange = 1
	}
	return tr
}

func (tr PriceTransform) PriceToY(price float64) float64 {
	v := price
	if tr.isLog {
		v = math.Log(math.Max(price, minLogValue))
	}
	return tr.chartHeight - (v-tr.base)/tr.valueRange*tr.chartHeight
}

func (tr PriceTransform) YToPrice(y float64) float64 {
	v := tr.base + (tr.chartHeight-y)/tr.chartHeight*tr.valueRange
	if tr.isLog {
		return math.Exp(v)
	}
	return v
}
