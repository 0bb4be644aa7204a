// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"
)

// WickWidthMedia is the media width of candle wicks, independent of spacing.
const WickWidthMedia = 1.0

const conflationSpacing = 0.5
const rampEndSpacing = 4.0

// CandleWidthCoefficient returns the fraction of the bar spacing used for
// the candle body. Below 0.5px spacing candles conflate to full-width dots.
// Between 0.5 and 4px the coefficient ramps linearly from 1.0 down to 0.7,
// an intentional overlap that keeps dense charts readable. Above 4px an
// arctangent curve approaches 0.8 asymptotically, matching the ramp at the
// 4px boundary so body width grows smoothly with no visible jump.
func CandleWidthCoefficient(barSpacing float64) float64 {
	switch {
	case barSpacing < conflationSpacing:
		return 1.0
	case barSpacing <= rampEndSpacing:
		return 1.0 - 0.3*(barSpacing-conflationSpacing)/(rampEndSpacing-conflationSpacing)
	default:
		return 0.7 + 0.1*(2/math.Pi)*math.Atan((barSpacing-rampEndSpacing)*0.3)
	}
}

// IsConflated reports whether bars are packed too tightly to draw distinct
// candles, so the renderer falls back to close-price dots.
func IsConflated(barSpacing float64) bool {
	return barSpacing < conflationSpacing
}

// CandleBodyWidth is the media width of a candle body for the given spacing,
// never below one media pixel.
func CandleBodyWidth(barSpacing float64) float64 {
	width := math.Floor(barSpacing * CandleWidthCoefficient(barSpacing))
	if width < 1 {
		width = 1
	}
	return width
}
