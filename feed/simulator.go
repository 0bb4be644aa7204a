// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package feed

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"

	"candlekit/calendar"
	"candlekit/chartval"
)

// BarUpdate is one realtime OHLCV update for a symbol.
type BarUpdate struct {
	Symbol string
	Bar    chartval.Bar
}

// Simulator produces a random-walk OHLCV series for the demo front end: an
// initial history plus periodic updates of the forming bar. Bar timestamps
// follow the timeframe; daily and slower bars step through the trading
// calendar so the series has no weekend or holiday bars.
type Simulator struct {
	symbol    string
	timeframe chartval.Timeframe
	cal       *calendar.MarketCalendar
	rng       *rand.Rand
	updates   *ChanMap[BarUpdate]
	lastTime  time.Time
	lastClose float64
	curBar    chartval.Bar
}

const (
	simStartPrice = 150.0
	simVolatility = 0.01
)

func NewSimulator(symbol string, tf chartval.Timeframe, cal *calendar.MarketCalendar, seed int64) *Simulator {
	return &Simulator{
		symbol:    symbol,
		timeframe: tf,
		cal:       cal,
		rng:       rand.New(rand.NewSource(seed)),
		updates:   NewChanMap[BarUpdate](),
		lastClose: simStartPrice,
	}
}

func (s *Simulator) Updates() *ChanMap[BarUpdate] {
	return s.updates
}

// History generates n completed bars ending just before now and primes the
// forming bar.
func (s *Simulator) History(n int) []chartval.Bar {
	s.lastTime = s.historyStart(n)
	bars := make([]chartval.Bar, 0, n)
	for i := 0; i < n; i++ {
		bars = append(bars, s.nextBar())
	}
	s.curBar = s.nextBar()
	return bars
}

// Run publishes updates of the forming bar until the context is cancelled.
// Every barTicks updates the forming bar is completed and a new one starts.
func (s *Simulator) Run(ctx context.Context, interval time.Duration, barTicks int) {
	if barTicks < 1 {
		barTicks = 1
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	tick := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick++
			if tick%barTicks == 0 {
				s.curBar = s.nextBar()
			} else {
				s.tickBar()
			}
			if err := s.updates.Publish(s.symbol, BarUpdate{Symbol: s.symbol, Bar: s.curBar}); err != nil {
				log.Printf("feed: %v", err)
			}
		}
	}
}

// nextBar completes a full random-walk bar and advances the clock.
func (s *Simulator) nextBar() chartval.Bar {
	o := s.lastClose
	c := o * (1 + s.rng.NormFloat64()*simVolatility)
	h := math.Max(o, c) * (1 + math.Abs(s.rng.NormFloat64())*simVolatility/2)
	l := math.Min(o, c) * (1 - math.Abs(s.rng.NormFloat64())*simVolatility/2)
	v := 1000 + s.rng.Float64()*9000
	bar := chartval.NewBar(s.lastTime, o, h, l, c, v)
	s.lastClose = c
	s.lastTime = s.advance(s.lastTime)
	return bar
}

// tickBar mutates the forming bar in place like a live quote stream would.
func (s *Simulator) tickBar() {
	o, _ := s.curBar.OpenPrice.Float64()
	h, _ := s.curBar.HighPrice.Float64()
	l, _ := s.curBar.LowPrice.Float64()
	v, _ := s.curBar.Volume.Float64()
	c := s.lastClose * (1 + s.rng.NormFloat64()*simVolatility/4)
	s.curBar = chartval.NewBar(s.curBar.Timestamp, o,
		math.Max(h, c), math.Min(l, c), c, v+s.rng.Float64()*500)
	s.lastClose = c
}

// advance steps a bar timestamp to the next slot of the timeframe.
func (s *Simulator) advance(t time.Time) time.Time {
	switch s.timeframe {
	case chartval.TimeframeOneDay:
		if s.cal != nil {
			return s.cal.NextTradingDay(t)
		}
		return t.AddDate(0, 0, 1)
	case chartval.TimeframeOneWeek:
		return t.AddDate(0, 0, 7)
	case chartval.TimeframeOneMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.Add(s.timeframe.Duration())
	}
}

// historyStart walks backwards so that n bars end near the current time.
func (s *Simulator) historyStart(n int) time.Time {
	t := time.Now().UTC().Truncate(time.Minute)
	switch s.timeframe {
	case chartval.TimeframeOneDay:
		if s.cal != nil {
			t = s.cal.SessionStart(t)
			for i := 0; i < n; i++ {
				t = t.AddDate(0, 0, -1)
				for !s.cal.IsTradingDay(t) {
					t = t.AddDate(0, 0, -1)
				}
			}
			return t
		}
		return t.AddDate(0, 0, -n)
	case chartval.TimeframeOneWeek:
		return t.AddDate(0, 0, -7*n)
	case chartval.TimeframeOneMonth:
		return t.AddDate(0, -n, 0)
	default:
		return t.Add(-time.Duration(n) * s.timeframe.Duration())
	}
}
