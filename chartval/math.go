// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"strconv"

	"github.com/ericlagergren/decimal"
)

// Returns a new decimal containing the delta percentage value.
func CalculateDeltaPercentage(baseValue, currentValue *decimal.Big) *decimal.Big {
	percentage := new(decimal.Big)
	// Check for non-zero, see https://github.com/ericlagergren/decimal/pull/157
	if baseValue.Sign() != 0 {
		percentage.Quo(currentValue, baseValue)
		percentage.Sub(percentage, decimal.New(1, 0))
		percentage.Mul(percentage, decimal.New(100, 0))
	}
	return percentage
}

// RoundPercentage rounds percentage z to two digits after decimal point and returns z.
func RoundPercentage(z *decimal.Big) *decimal.Big {
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(2).Quantize(2)
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

func IsGreenQuote(percentage *decimal.Big) bool {
	return percentage != nil && !percentage.Signbit()
}
