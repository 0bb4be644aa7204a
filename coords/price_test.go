// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"
	"testing"

	"candlekit/chartval"

	"github.com/stretchr/testify/assert"
)

func TestPriceToYLinear(t *testing.T) {
	tr := NewPriceTransform(100, 200, 400, false)

	assert.Equal(t, 200.0, tr.PriceToY(150))
	assert.Equal(t, 400.0, tr.PriceToY(100))
	assert.Equal(t, 0.0, tr.PriceToY(200))
}

func TestYToPriceInvertsPriceToY(t *testing.T) {
	tr := NewPriceTransform(3.5, 97.25, 480, false)
	for p := 3.5; p <= 97.25; p += 4.33 {
		assert.InDelta(t, p, tr.YToPrice(tr.PriceToY(p)), chartval.NearZero)
	}
}

func TestZeroRangeDoesNotDivideByZero(t *testing.T) {
	tr := NewPriceTransform(50, 50, 400, false)

	y := tr.PriceToY(50)

	assert.False(t, math.IsNaN(y))
	assert.False(t, math.IsInf(y, 0))
}

func TestLogTransformFloorsNearZero(t *testing.T) {
	tr := NewPriceTransform(0, 100, 400, true)

	y := tr.PriceToY(0)

	assert.False(t, math.IsNaN(y))
	assert.False(t, math.IsInf(y, 0))
}

func TestLogTransformRoundTrip(t *testing.T) {
	tr := NewPriceTransform(1, 1000, 300, true)
	for _, p := range []float64{1, 10, 100, 1000} {
		assert.InDelta(t, p, tr.YToPrice(tr.PriceToY(p)), p*chartval.NearZero)
	}
}
