// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"candlekit/calendar"
	"candlekit/chartval"
	"candlekit/coords"
	"candlekit/surface"
)

// Frame bundles everything a renderer needs for one paint cycle. The
// transforms are rebuilt per frame and discarded afterwards; bars are
// read-only and must not be mutated by renderers.
type Frame struct {
	Size       surface.Size
	Viewport   chartval.Viewport
	Bars       []chartval.Bar
	Price      coords.PriceTransform
	Time       coords.TimeTransform
	Timeframe  chartval.Timeframe
	Symbol     string
	ChartType  chartval.ChartType
	CandleMode chartval.CandleMode
	LogScale   bool
	Cursor     *chartval.CursorPos
	TimeTicks  []coords.TimeTick
	PriceTicks []float64
	PriceStep  float64
}

// FrameParams are the caller-supplied inputs of BuildFrame.
type FrameParams struct {
	Size       surface.Size
	Viewport   chartval.Viewport
	Bars       []chartval.Bar
	Timeframe  chartval.Timeframe
	Symbol     string
	ChartType  chartval.ChartType
	CandleMode chartval.CandleMode
	LogScale   bool
	Cursor     *chartval.CursorPos
	Calendar   *calendar.MarketCalendar
	MaxTicks   int
}

// BuildFrame computes the per-frame transforms and tick positions from the
// viewport and the visible bar slice.
func BuildFrame(p FrameParams) *Frame {
	maxTicks := p.MaxTicks
	if maxTicks <= 0 {
		maxTicks = 8
	}
	visible := VisibleBars(p.Bars, p.Viewport)
	minPrice, maxPrice := coords.VisiblePriceRange(visible, coords.DefaultRangePadding)
	ticks, step := coords.NiceScale(minPrice, maxPrice, maxTicks)
	return &Frame{
		Size:       p.Size,
		Viewport:   p.Viewport,
		Bars:       p.Bars,
		Price:      coords.NewPriceTransform(minPrice, maxPrice, p.Viewport.Height, p.LogScale),
		Time:       coords.NewTimeTransform(float64(p.Viewport.StartIdx), p.Viewport.BarSpacing()),
		Timeframe:  p.Timeframe,
		Symbol:     p.Symbol,
		ChartType:  p.ChartType,
		CandleMode: p.CandleMode,
		LogScale:   p.LogScale,
		Cursor:     p.Cursor,
		TimeTicks:  coords.TimeTicks(p.Bars, p.Timeframe, p.Calendar, p.Viewport.StartIdx, p.Viewport.EndIdx),
		PriceTicks: ticks,
		PriceStep:  step,
	}
}

// VisibleBars clamps the viewport index range to the data and returns the
// visible slice. The slice aliases bars, it is not a copy.
func VisibleBars(bars []chartval.Bar, v chartval.Viewport) []chartval.Bar {
	start := v.StartIdx
	if start < 0 {
		start = 0
	}
	end := v.EndIdx
	if end >= len(bars) {
		end = len(bars) - 1
	}
	if start > end {
		return nil
	}
	return bars[start : end+1]
}

// visibleIndexRange returns the clamped inclusive index range, or ok=false
// if nothing is visible.
func visibleIndexRange(f *Frame) (start, end int, ok bool) {
	start = f.Viewport.StartIdx
	if start < 0 {
		start = 0
	}
	end = f.Viewport.EndIdx
	if end >= len(f.Bars) {
		end = len(f.Bars) - 1
	}
	return start, end, start <= end
}

// Renderer is the common shape of all chart renderers: a theme holder plus
// a draw routine painting one frame onto a surface context.
type Renderer interface {
	Draw(ctx surface.DrawContext, f *Frame)
}
