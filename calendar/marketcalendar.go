// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// MarketCalendar answers trading-day questions for time axis ticks and for
// stepping daily bars across weekends and holidays.
type MarketCalendar struct {
	marketLocation *time.Location
	calendar       *cal.BusinessCalendar
}

func NewUSMarketCalendar() *MarketCalendar {
	// NYSE uses ET, which can be either EST or EDT.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("NYSE time location not supported")
	}
	c := cal.NewBusinessCalendar()
	// Source for bank holidays: https://www.federalreserve.gov/aboutthefed/k8.htm
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return &MarketCalendar{
		marketLocation: loc,
		calendar:       c,
	}
}

func (c *MarketCalendar) IsTradingDay(t time.Time) bool {
	return c.calendar.IsWorkday(t.In(c.marketLocation))
}

// NextTradingDay returns the same clock time on the next trading day after t.
func (c *MarketCalendar) NextTradingDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for !c.IsTradingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// SessionStart normalizes a timestamp to the start of its trading day in
// market time.
func (c *MarketCalendar) SessionStart(t time.Time) time.Time {
	mt := t.In(c.marketLocation)
	return time.Date(mt.Year(), mt.Month(), mt.Day(), 0, 0, 0, 0, c.marketLocation)
}
