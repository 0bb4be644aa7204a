// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekendIsNotTradingDay(t *testing.T) {
	c := NewUSMarketCalendar()

	saturday := time.Date(2023, 11, 4, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2023, 11, 5, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2023, 11, 6, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.IsTradingDay(saturday))
	assert.False(t, c.IsTradingDay(sunday))
	assert.True(t, c.IsTradingDay(monday))
}

func TestHolidayIsNotTradingDay(t *testing.T) {
	c := NewUSMarketCalendar()

	christmas := time.Date(2023, 12, 25, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.IsTradingDay(christmas))
}

func TestNextTradingDaySkipsWeekend(t *testing.T) {
	c := NewUSMarketCalendar()

	friday := time.Date(2023, 11, 3, 12, 0, 0, 0, time.UTC)
	next := c.NextTradingDay(friday)

	assert.Equal(t, time.Weekday(time.Monday), next.Weekday())
	assert.Equal(t, 6, next.Day())
}
