// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"
	"testing"
	"time"

	"candlekit/chartval"

	"github.com/stretchr/testify/assert"
)

func testBar(h, l float64) chartval.Bar {
	return chartval.NewBar(time.Now(), l, h, l, h, 1000)
}

func TestVisiblePriceRangeEmptyDefault(t *testing.T) {
	minPrice, maxPrice := VisiblePriceRange(nil, DefaultRangePadding)

	assert.Equal(t, 0.0, minPrice)
	assert.Equal(t, 100.0, maxPrice)
}

func TestVisiblePriceRangePadding(t *testing.T) {
	minPrice, maxPrice := VisiblePriceRange([]chartval.Bar{testBar(10, 5)}, DefaultRangePadding)

	assert.Less(t, minPrice, 5.0)
	assert.Greater(t, maxPrice, 10.0)
	assert.InDelta(t, 4.75, minPrice, chartval.NearZero)
	assert.InDelta(t, 10.25, maxPrice, chartval.NearZero)
}

func TestVisiblePriceRangeSpansAllBars(t *testing.T) {
	bars := []chartval.Bar{testBar(10, 8), testBar(15, 9), testBar(12, 4)}

	minPrice, maxPrice := VisiblePriceRange(bars, 0)

	assert.Equal(t, 4.0, minPrice)
	assert.Equal(t, 15.0, maxPrice)
}

func TestNiceScaleStepIsNice(t *testing.T) {
	ticks, step := NiceScale(0, 97, 8)

	// The step must be from {1,2,2.5,5,10} x 10^n.
	magnitude := math.Pow(10, math.Floor(math.Log10(step)))
	normalized := step / magnitude
	assert.Contains(t, []float64{1, 2, 2.5, 5, 10}, normalized)

	assert.NotEmpty(t, ticks)
	for _, v := range ticks {
		assert.GreaterOrEqual(t, v, 0-step*1e-6)
		assert.LessOrEqual(t, v, 97+step*1e-6)
	}
	for i := 1; i < len(ticks); i++ {
		assert.InDelta(t, step, ticks[i]-ticks[i-1], chartval.NearZero)
	}
}

func TestNiceScaleSmallRange(t *testing.T) {
	ticks, step := NiceScale(0.0001, 0.0009, 8)

	assert.NotEmpty(t, ticks)
	assert.Greater(t, step, 0.0)
	assert.Less(t, step, 0.0009)
}

func TestNiceScaleZeroRange(t *testing.T) {
	ticks, step := NiceScale(50, 50, 8)

	assert.Greater(t, step, 0.0)
	assert.NotNil(t, ticks)
}

func TestTimeTicksDailySkipsWeekend(t *testing.T) {
	// Two weeks of daily bars without weekend entries.
	var bars []chartval.Bar
	day := time.Date(2023, 10, 30, 0, 0, 0, 0, time.UTC) // a Monday
	for i := 0; i < 10; i++ {
		bars = append(bars, chartval.NewBar(day, 10, 11, 9, 10, 1000))
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday {
			day = day.AddDate(0, 0, 2)
		}
	}

	ticks := TimeTicks(bars, chartval.TimeframeOneDay, nil, 0, len(bars)-1)

	// One tick at the start of the second week.
	assert.Len(t, ticks, 1)
	assert.Equal(t, 5, ticks[0].Index)
	assert.Equal(t, time.Weekday(time.Monday), ticks[0].Time.Weekday())
	assert.Equal(t, "06 Nov", ticks[0].Label)
}

func TestTimeTicksIntradayHourBoundaries(t *testing.T) {
	var bars []chartval.Bar
	ts := time.Date(2023, 11, 6, 9, 30, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		bars = append(bars, chartval.NewBar(ts, 10, 11, 9, 10, 1000))
		ts = ts.Add(15 * time.Minute)
	}

	ticks := TimeTicks(bars, chartval.TimeframeFifteenMinutes, nil, 0, len(bars)-1)

	// 9:30 start: hour changes at 10:00, 11:00 and 12:00.
	assert.Len(t, ticks, 3)
	assert.Equal(t, "10:00", ticks[0].Label)
}
