// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package feed

import (
	"context"
	"testing"
	"time"

	"candlekit/calendar"
	"candlekit/chartval"

	"github.com/stretchr/testify/assert"
)

func TestChanMapSubscribePublish(t *testing.T) {
	m := NewChanMap[int]()
	c, err := m.Subscribe("GOOG")
	assert.NoError(t, err)

	assert.NoError(t, m.Publish("GOOG", 42))
	assert.Equal(t, 42, <-c)
}

func TestChanMapDuplicateSubscribe(t *testing.T) {
	m := NewChanMap[int]()
	_, err := m.Subscribe("GOOG")
	assert.NoError(t, err)

	c, err := m.Subscribe("GOOG")
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestChanMapPublishUnknownSymbolIsIgnored(t *testing.T) {
	m := NewChanMap[int]()
	assert.NoError(t, m.Publish("MSFT", 1))
}

func TestChanMapOverflowKeepsNewestData(t *testing.T) {
	m := NewChanMap[int]()
	c, err := m.Subscribe("GOOG")
	assert.NoError(t, err)

	for i := 0; i < 1024; i++ {
		assert.NoError(t, m.Publish("GOOG", i))
	}
	// The buffer is full now; the next publish drops the oldest entry.
	err = m.Publish("GOOG", 1024)
	assert.Error(t, err)

	assert.Equal(t, 1, <-c)
	// Drain and confirm the newest entry survived.
	var last int
	for len(c) > 0 {
		last = <-c
	}
	assert.Equal(t, 1024, last)
}

func TestChanMapUnsubscribe(t *testing.T) {
	m := NewChanMap[int]()
	c, err := m.Subscribe("GOOG")
	assert.NoError(t, err)

	assert.NoError(t, m.Unsubscribe("GOOG"))
	assert.Error(t, m.Unsubscribe("GOOG"))

	// The channel is closed on ClearPendingClose, not on Unsubscribe.
	select {
	case <-c:
		t.Fatal("channel closed too early")
	default:
	}
	m.ClearPendingClose()
	_, open := <-c
	assert.False(t, open)
}

func TestSimulatorHistoryIsOrderedAndPositive(t *testing.T) {
	s := NewSimulator("SIM", chartval.TimeframeOneMinute, nil, 1)
	bars := s.History(100)

	assert.Len(t, bars, 100)
	for i, b := range bars {
		if i > 0 {
			assert.True(t, bars[i-1].Timestamp.Before(b.Timestamp))
			assert.Equal(t, chartval.TimeframeOneMinute.Duration(),
				b.Timestamp.Sub(bars[i-1].Timestamp))
		}
		l, _ := b.LowPrice.Float64()
		h, _ := b.HighPrice.Float64()
		o, _ := b.OpenPrice.Float64()
		c, _ := b.ClosePrice.Float64()
		assert.Greater(t, l, 0.0)
		assert.GreaterOrEqual(t, h, o)
		assert.GreaterOrEqual(t, h, c)
		assert.LessOrEqual(t, l, o)
		assert.LessOrEqual(t, l, c)
	}
}

func TestSimulatorBarsOpenAtPreviousClose(t *testing.T) {
	s := NewSimulator("SIM", chartval.TimeframeFiveMinutes, nil, 7)
	bars := s.History(10)

	for i := 1; i < len(bars); i++ {
		prevClose, _ := bars[i-1].ClosePrice.Float64()
		open, _ := bars[i].OpenPrice.Float64()
		assert.InDelta(t, prevClose, open, 1e-9)
	}
}

func TestSimulatorDailyHistorySkipsWeekends(t *testing.T) {
	cal := calendar.NewUSMarketCalendar()
	s := NewSimulator("SIM", chartval.TimeframeOneDay, cal, 3)
	bars := s.History(30)

	for _, b := range bars {
		assert.True(t, cal.IsTradingDay(b.Timestamp),
			"bar on non-trading day %v", b.Timestamp)
	}
}

func TestSimulatorIsDeterministicPerSeed(t *testing.T) {
	a := NewSimulator("SIM", chartval.TimeframeOneMinute, nil, 42).History(20)
	b := NewSimulator("SIM", chartval.TimeframeOneMinute, nil, 42).History(20)

	for i := range a {
		ca, _ := a[i].ClosePrice.Float64()
		cb, _ := b[i].ClosePrice.Float64()
		assert.Equal(t, ca, cb)
	}
}

func TestSimulatorRunPublishesUpdates(t *testing.T) {
	s := NewSimulator("SIM", chartval.TimeframeOneMinute, nil, 5)
	s.History(10)
	c, err := s.Updates().Subscribe("SIM")
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond, 4)
		close(done)
	}()

	u := <-c
	cancel()
	<-done

	assert.Equal(t, "SIM", u.Symbol)
	c1, _ := u.Bar.ClosePrice.Float64()
	assert.Greater(t, c1, 0.0)
}
