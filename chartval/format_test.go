// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPriceTiers(t *testing.T) {
	assert.Equal(t, "15000", FormatPrice(15000))
	assert.Equal(t, "42.50", FormatPrice(42.5))
	assert.Equal(t, "0.0234", FormatPrice(0.0234))
	assert.Equal(t, "0.000340", FormatPrice(0.00034))
	assert.Equal(t, "0.00000012", FormatPrice(0.00000012))
}

func TestFormatVolumeSuffixes(t *testing.T) {
	assert.Equal(t, "500", FormatVolume(500))
	assert.Equal(t, "1.50K", FormatVolume(1500))
	assert.Equal(t, "2.30M", FormatVolume(2300000))
	assert.Equal(t, "1.20B", FormatVolume(1200000000))
}

func TestFormatTimeLabel(t *testing.T) {
	ts := time.Date(2023, 11, 6, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "14:30", FormatTimeLabel(ts, TimeframeFiveMinutes))
	assert.Equal(t, "06 Nov", FormatTimeLabel(ts, TimeframeOneDay))
	assert.Equal(t, "Nov 23", FormatTimeLabel(ts, TimeframeOneWeek))
}

func TestFormatDeltaPercentage(t *testing.T) {
	up := CalculateDeltaPercentage(ConvertFloatToDecimal(100, 64), ConvertFloatToDecimal(102.5, 64))
	down := CalculateDeltaPercentage(ConvertFloatToDecimal(100, 64), ConvertFloatToDecimal(95, 64))

	assert.Equal(t, "+2.50%", FormatDeltaPercentage(up))
	assert.Equal(t, "-5.00%", FormatDeltaPercentage(down))
	assert.Equal(t, "", FormatDeltaPercentage(nil))
}

func TestIsGreenCandle(t *testing.T) {
	assert.True(t, IsGreenCandle(10, 11))
	assert.True(t, IsGreenCandle(10, 10))
	assert.False(t, IsGreenCandle(11, 10))
}

func TestViewportBarSpacing(t *testing.T) {
	v := Viewport{StartIdx: 0, EndIdx: 99, Width: 800, Height: 600, PixelRatio: 2}

	assert.Equal(t, 100, v.VisibleBars())
	assert.Equal(t, 8.0, v.BarSpacing())
}
