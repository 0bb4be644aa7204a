// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"

	"candlekit/chartval"
)

// DefaultRangePadding is the fraction of the price range added above and
// below the visible extremes.
const DefaultRangePadding = 0.05

// VisiblePriceRange computes the padded low/high extent of the given bars.
// An empty input yields the display default range {0, 100}; this is a
// deliberate default, not an error.
func VisiblePriceRange(bars []chartval.Bar, paddingPct float64) (minPrice, maxPrice float64) {
	if len(bars) == 0 {
		return 0, 100
	}
	minPrice = math.Inf(1)
	maxPrice = math.Inf(-1)
	for _, b := range bars {
		l, _ := b.LowPrice.Float64()
		h, _ := b.HighPrice.Float64()
		if l < minPrice {
			minPrice = l
		}
		if h > maxPrice {
			maxPrice = h
		}
	}
	padding := (maxPrice - minPrice) * paddingPct
	return minPrice - padding, maxPrice + padding
}

var niceSteps = []float64{1, 2, 2.5, 5, 10}

// NiceScale computes axis tick values between min and max using the standard
// "nice numbers" algorithm: the rough step range/maxTicks is snapped to
// {1, 2, 2.5, 5, 10} x 10^n and ticks are generated on multiples of the
// snapped step. Tick values are rounded to 10 decimal digits to suppress
// floating point drift.
func NiceScale(minValue, maxValue float64, maxTicks int) (ticks []float64, step float64) {
	if maxTicks <= 0 {
		maxTicks = 8
	}
	valueRange := maxValue - minValue
	if valueRange <= 0 {
		valueRange = 1
	}
	roughStep := valueRange / float64(maxTicks)
	magnitude := math.Pow(10, math.Floor(math.Log10(roughStep)))
	normalized := roughStep / magnitude
	snapped := niceSteps[len(niceSteps)-1]
	for _, s := range niceSteps {
		if normalized <= s {
			snapped = s
			break
		}
	}
	step = snapped * magnitude

	tolerance := step * 1e-6
	start := math.Floor(minValue/step) * step
	end := math.Ceil(maxValue/step) * step
	for v := start; v <= end+tolerance; v += step {
		if v < minValue-tolerance || v > maxValue+tolerance {
			continue
		}
		ticks = append(ticks, math.Round(v*1e10)/1e10)
	}
	return ticks, step
}
