// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"time"
)

type Timeframe int32

const (
	TimeframeOneMinute Timeframe = iota
	TimeframeFiveMinutes
	TimeframeFifteenMinutes
	TimeframeThirtyMinutes
	TimeframeSixtyMinutes
	TimeframeOneDay
	TimeframeOneWeek
	TimeframeOneMonth
)

const NumTimeframes = TimeframeOneMonth + 1

func TimeframeUiStringList() []string {
	return []string{
		"1 min",
		"5 min",
		"15 min",
		"30 min",
		"60 min",
		"1 day",
		"1 week",
		"1 month",
	}
}

func (tf Timeframe) UiString() string {
	return TimeframeUiStringList()[tf]
}

func (tf Timeframe) IsIntraday() bool {
	return tf <= TimeframeSixtyMinutes
}

// FormatString returns the time.Format layout used for axis labels of this
// timeframe: clock time for intraday bars, month and day for daily bars,
// month and year for anything slower.
func (tf Timeframe) FormatString() string {
	switch {
	case tf.IsIntraday():
		return "15:04"
	case tf == TimeframeOneDay:
		return "02 Jan"
	default:
		return "Jan 06"
	}
}

func (tf Timeframe) Duration() time.Duration {
	switch tf {
	case TimeframeOneMinute:
		return time.Minute
	case TimeframeFiveMinutes:
		return time.Minute * 5
	case TimeframeFifteenMinutes:
		return time.Minute * 15
	case TimeframeThirtyMinutes:
		return time.Minute * 30
	case TimeframeSixtyMinutes:
		return time.Hour
	case TimeframeOneDay:
		return time.Hour * 24
	case TimeframeOneWeek:
		return time.Hour * 24 * 7
	case TimeframeOneMonth:
		// Approximation, only used for stepping simulated data.
		return time.Hour * 24 * 30
	default:
		panic("unsupported timeframe")
	}
}
