// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"math"
	"strconv"
	"time"

	"github.com/ericlagergren/decimal"
)

// FormatPrice formats a price with magnitude-tiered precision: no decimals
// for large prices, two decimals for normal equity prices, and up to eight
// decimals for sub-cent crypto prices.
func FormatPrice(price float64) string {
	abs := math.Abs(price)
	var decimals int
	switch {
	case abs >= 10000:
		decimals = 0
	case abs >= 1:
		decimals = 2
	case abs >= 0.01:
		decimals = 4
	case abs >= 0.0001:
		decimals = 6
	default:
		decimals = 8
	}
	return strconv.FormatFloat(price, 'f', decimals, 64)
}

// FormatVolume shortens large volumes with a K/M/B suffix.
func FormatVolume(volume float64) string {
	switch {
	case volume >= 1000000000:
		return strconv.FormatFloat(volume/1000000000, 'f', 2, 64) + "B"
	case volume >= 1000000:
		return strconv.FormatFloat(volume/1000000, 'f', 2, 64) + "M"
	case volume >= 1000:
		return strconv.FormatFloat(volume/1000, 'f', 2, 64) + "K"
	default:
		return strconv.FormatFloat(volume, 'f', 0, 64)
	}
}

// FormatTimeLabel formats a bar timestamp for axis display depending on the
// timeframe.
func FormatTimeLabel(t time.Time, tf Timeframe) string {
	return t.Format(tf.FormatString())
}

// FormatDeltaPercentage renders a signed percentage with two decimals,
// including an explicit plus sign for non-negative values.
func FormatDeltaPercentage(percentage *decimal.Big) string {
	if percentage == nil {
		return ""
	}
	rounded := RoundPercentage(new(decimal.Big).Copy(percentage))
	var prefix string
	if rounded.Sign() >= 0 {
		prefix = "+"
	}
	return prefix + rounded.String() + "%"
}
