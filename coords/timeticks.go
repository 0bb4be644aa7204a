// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"time"

	"candlekit/calendar"
	"candlekit/chartval"
)

// TimeTick marks a bar slot that gets a vertical gridline and an axis label.
type TimeTick struct {
	Index int
	Time  time.Time
	Label string
}

// TimeTicks selects labeled gridline positions within [startIdx, endIdx].
// Intraday timeframes tick on hour boundaries, daily bars on the first
// trading day of each week, slower timeframes on month or year boundaries.
// The trading calendar filters out bars that fall on non-trading days, so
// weekend and holiday gaps in the data do not produce phantom ticks.
func TimeTicks(bars []chartval.Bar, tf chartval.Timeframe, cal *calendar.MarketCalendar, startIdx, endIdx int) []TimeTick {
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx >= len(bars) {
		endIdx = len(bars) - 1
	}
	var ticks []TimeTick
	for i := startIdx; i <= endIdx; i++ {
		t := bars[i].Timestamp
		if !tf.IsIntraday() && cal != nil && !cal.IsTradingDay(t) {
			continue
		}
		if i == startIdx || samePeriod(bars[i-1].Timestamp, t, tf) {
			continue
		}
		ticks = append(ticks, TimeTick{
			Index: i,
			Time:  t,
			Label: chartval.FormatTimeLabel(t, tf),
		})
	}
	return ticks
}

func samePeriod(prev, cur time.Time, tf chartval.Timeframe) bool {
	switch {
	case tf.IsIntraday():
		return prev.Hour() == cur.Hour() && prev.YearDay() == cur.YearDay() && prev.Year() == cur.Year()
	case tf == chartval.TimeframeOneDay:
		py, pw := prev.ISOWeek()
		cy, cw := cur.ISOWeek()
		return py == cy && pw == cw
	case tf == chartval.TimeframeOneWeek:
		return prev.Month() == cur.Month() && prev.Year() == cur.Year()
	default:
		return prev.Year() == cur.Year()
	}
}
