// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"
)

// TimeTransform maps bar indices to media X coordinates and back. X values
// are bar centers, not edges, so a candle body is symmetric around its slot.
// barSpacing may be fractional.
type TimeTransform struct {
	firstVisibleIdx float64
	barSpacing      float64
}

func NewTimeTransform(firstVisibleIdx, barSpacing float64) TimeTransform {
	return TimeTransform{
		firstVisibleIdx: firstVisibleIdx,
		barSpacing:      barSpacing,
	}
}

func (tr TimeTransform) BarSpacing() float64 {
	return tr.barSpacing
}

func (tr TimeTransform) IndexToX(idx int) float64 {
	return (float64(idx) - tr.firstVisibleIdx + 0.5) * tr.barSpacing
}

// XToIndex is the exact inverse of IndexToX, rounded to the nearest bar.
func (tr TimeTransform) XToIndex(x float64) int {
	if tr.barSpacing == 0 {
		return 0
	}
	return int(math.Round(x/tr.barSpacing + tr.firstVisibleIdx - 0.5))
}
