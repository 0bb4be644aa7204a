// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartui

import (
	"image"
	"sync"

	"candlekit/cache"
	"candlekit/calendar"
	"candlekit/chartval"
	"candlekit/config"
	"candlekit/feed"
	"candlekit/pane"
	"candlekit/render"
	"candlekit/surface"
	"candlekit/theme"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const minVisibleBars = 10

// PlotView connects one chart pane to Gio: it owns the pane with its two
// software surfaces, the layout cache and the renderers, translates pointer
// events into viewport changes and invalidations, and blits the surface
// bitmaps into the Gio frame.
type PlotView struct {
	pane       *pane.PaneWidget
	mainCanvas *surface.SoftwareCanvas
	topCanvas  *surface.SoftwareCanvas
	layout     *cache.LayoutCache
	theme      *theme.ChartTheme
	cal        *calendar.MarketCalendar

	// dataMutex serializes bar and viewport access between the feed
	// goroutine and the window event loop.
	dataMutex  sync.Mutex
	bars       []chartval.Bar
	symbol     string
	timeframe  chartval.Timeframe
	chartType  chartval.ChartType
	candleMode chartval.CandleMode
	logScale   bool
	cursor     *chartval.CursorPos
	startIdx   int
	endIdx     int

	grid       *render.GridRenderer
	candles    *render.CandleRenderer
	volume     *render.VolumeRenderer
	legend     *render.LegendRenderer
	crosshair  *render.CrosshairRenderer
	priceLabel *render.PriceLabelRenderer
	overlays   []render.Overlay

	frame           *render.Frame
	pointerPressPos f32.Point
	dragRemainder   float64
}

func NewPlotView(cfg config.PlotConfig, th *theme.ChartTheme, cacheEntries int, cal *calendar.MarketCalendar) *PlotView {
	p := &PlotView{
		mainCanvas: surface.NewSoftwareCanvas(800, 600, 1),
		topCanvas:  surface.NewSoftwareCanvas(800, 600, 1),
		layout:     cache.NewLayoutCache(cacheEntries),
		theme:      th,
		cal:        cal,
		symbol:     cfg.Symbol,
		timeframe:  cfg.Timeframe,
		chartType:  cfg.ChartType,
		candleMode: cfg.CandleMode,
		logScale:   cfg.LogScale,
	}
	p.mainCanvas.SetBackground(th.BgColor)
	// The top surface stays transparent so the main surface shows through.
	p.pane = pane.NewPaneWidget(p.mainCanvas, p.topCanvas)

	p.grid = render.NewGridRenderer(th.Grid)
	p.candles = render.NewCandleRenderer(th.Candle, p.layout)
	p.volume = render.NewVolumeRenderer(th.Candle)
	p.legend = render.NewLegendRenderer(th.Legend)
	p.crosshair = render.NewCrosshairRenderer(th.Crosshair)
	p.priceLabel = render.NewPriceLabelRenderer(th.PriceLabel)
	for _, o := range cfg.Overlays {
		c := o.Color
		if c.A == 0 {
			c = th.DefaultOverlayColor
		}
		p.overlays = append(p.overlays, render.CreateOverlay(o.OverlayId, c))
	}

	p.pane.AddMainRenderer(func(ctx surface.DrawContext) { p.grid.Draw(ctx, p.frame) })
	p.pane.AddMainRenderer(func(ctx surface.DrawContext) { p.volume.Draw(ctx, p.frame) })
	p.pane.AddMainRenderer(func(ctx surface.DrawContext) { p.candles.Draw(ctx, p.frame) })
	for _, o := range p.overlays {
		o := o
		p.pane.AddMainRenderer(func(ctx surface.DrawContext) { o.Draw(ctx, p.frame) })
	}
	// The legend follows the hovered bar, so it lives on the top surface
	// together with the other cursor driven renderers.
	p.pane.AddTopRenderer(func(ctx surface.DrawContext) { p.legend.Draw(ctx, p.frame) })
	p.pane.AddTopRenderer(func(ctx surface.DrawContext) { p.crosshair.Draw(ctx, p.frame) })
	p.pane.AddTopRenderer(func(ctx surface.DrawContext) { p.priceLabel.Draw(ctx, p.frame) })
	return p
}

// SetBars replaces the bar series, resets the viewport to the newest bars
// and drops all memoized layouts.
func (p *PlotView) SetBars(bars []chartval.Bar) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()
	p.bars = bars
	p.endIdx = len(bars) - 1
	p.startIdx = p.endIdx - 120
	if p.startIdx < 0 {
		p.startIdx = 0
	}
	p.updateOverlays()
	p.layout.Invalidate()
	p.pane.InvalidateAll()
}

// ApplyUpdate merges a realtime bar update: the forming bar replaces the
// last bar in place, a newer timestamp appends. The viewport follows the
// newest bar if it was already at the right edge.
func (p *PlotView) ApplyUpdate(u feed.BarUpdate) {
	if u.Symbol != p.symbol {
		return
	}
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()
	follow := p.endIdx == len(p.bars)-1
	if n := len(p.bars); n > 0 && p.bars[n-1].Timestamp.Equal(u.Bar.Timestamp) {
		p.bars[n-1] = u.Bar
	} else {
		p.bars = append(p.bars, u.Bar)
	}
	if follow {
		width := p.endIdx - p.startIdx
		p.endIdx = len(p.bars) - 1
		p.startIdx = p.endIdx - width
		if p.startIdx < 0 {
			p.startIdx = 0
		}
	}
	p.updateOverlays()
	p.layout.Invalidate()
	p.pane.InvalidateAll()
}

// SetTheme swaps the complete theme. Renderers receive the new values by
// wholesale replacement, nothing is mutated in place.
func (p *PlotView) SetTheme(th *theme.ChartTheme) {
	p.theme = th
	p.mainCanvas.SetBackground(th.BgColor)
	p.grid.SetTheme(th.Grid)
	p.candles.SetTheme(th.Candle)
	p.volume.SetTheme(th.Candle)
	p.legend.SetTheme(th.Legend)
	p.crosshair.SetTheme(th.Crosshair)
	p.priceLabel.SetTheme(th.PriceLabel)
	for _, o := range p.overlays {
		o.SetColor(th.DefaultOverlayColor)
	}
	p.pane.InvalidateAll()
}

func (p *PlotView) Dispose() {
	p.pane.Dispose()
}

func (p *PlotView) updateOverlays() {
	for _, o := range p.overlays {
		o.Update(p.bars)
	}
}

// setCursor moves the crosshair and the hover legend; all cursor driven
// renderers are on the top surface, so only it repaints.
func (p *PlotView) setCursor(c *chartval.CursorPos) {
	p.cursor = c
	p.pane.InvalidateTop()
}

// zoom changes the number of visible bars, anchored at the right edge.
func (p *PlotView) zoom(in bool) {
	visible := p.endIdx - p.startIdx + 1
	if in {
		visible = visible * 4 / 5
	} else {
		visible = visible * 5 / 4
	}
	if visible < minVisibleBars {
		visible = minVisibleBars
	}
	if visible > len(p.bars) {
		visible = len(p.bars)
	}
	p.startIdx = p.endIdx - visible + 1
	if p.startIdx < 0 {
		p.startIdx = 0
	}
	p.pane.InvalidateAll()
}

// pan shifts the viewport by a media pixel delta, accumulating fractional
// bar amounts across drag events.
func (p *PlotView) pan(deltaMedia float64) {
	spacing := p.viewport().BarSpacing()
	if spacing <= 0 {
		return
	}
	p.dragRemainder += deltaMedia / spacing
	deltaBars := int(p.dragRemainder)
	if deltaBars == 0 {
		return
	}
	p.dragRemainder -= float64(deltaBars)
	width := p.endIdx - p.startIdx
	start := p.startIdx + deltaBars
	if start < 0 {
		start = 0
	}
	if start+width > len(p.bars)-1 {
		start = len(p.bars) - 1 - width
		if start < 0 {
			start = 0
		}
	}
	p.startIdx = start
	p.endIdx = start + width
	p.pane.InvalidateAll()
}

func (p *PlotView) viewport() chartval.Viewport {
	size := p.mainCanvas.Size()
	return chartval.Viewport{
		StartIdx:   p.startIdx,
		EndIdx:     p.endIdx,
		Width:      size.Width,
		Height:     size.Height,
		PixelRatio: size.PixelRatio,
	}
}

func (p *PlotView) buildFrame() {
	p.frame = render.BuildFrame(render.FrameParams{
		Size:       p.mainCanvas.Size(),
		Viewport:   p.viewport(),
		Bars:       p.bars,
		Timeframe:  p.timeframe,
		Symbol:     p.symbol,
		ChartType:  p.chartType,
		CandleMode: p.candleMode,
		LogScale:   p.logScale,
		Cursor:     p.cursor,
		Calendar:   p.cal,
		MaxTicks:   p.theme.Grid.MaxPriceTicks,
	})
}

// Layout handles pointer input, repaints dirty surfaces and blits them into
// the Gio frame.
func (p *PlotView) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	ratio := float64(gtx.Metric.PxPerDp)
	if ratio <= 0 {
		ratio = 1
	}
	mediaW := float64(size.X) / ratio
	mediaH := float64(size.Y) / ratio
	// Resizing is a no-op when the size is unchanged; a real resize fires
	// the pane's invalidation callbacks.
	p.dataMutex.Lock()
	p.mainCanvas.Resize(mediaW, mediaH, ratio)
	p.topCanvas.Resize(mediaW, mediaH, ratio)

	p.handleInput(gtx, ratio)

	p.buildFrame()
	p.pane.Paint()
	p.dataMutex.Unlock()

	paint.NewImageOp(p.mainCanvas.Image()).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	paint.NewImageOp(p.topCanvas.Image()).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	p.registerInputOps(gtx)
	return layout.Dimensions{Size: size}
}

func (p *PlotView) registerInputOps(gtx layout.Context) {
	area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   p,
		Types: pointer.Press | pointer.Drag | pointer.Move | pointer.Scroll | pointer.Leave,
		ScrollBounds: image.Rectangle{
			Min: image.Point{Y: -1},
			Max: image.Point{Y: 1},
		},
	}.Add(gtx.Ops)
	area.Pop()
}

func (p *PlotView) handleInput(gtx layout.Context, ratio float64) {
	for _, gtxEvent := range gtx.Events(p) {
		switch e := gtxEvent.(type) {
		case pointer.Event:
			switch e.Type {
			case pointer.Press:
				p.pointerPressPos = e.Position
				p.dragRemainder = 0
			case pointer.Drag:
				posDelta := p.pointerPressPos.Sub(e.Position)
				p.pointerPressPos = e.Position
				p.pan(float64(posDelta.X) / ratio)
			case pointer.Move:
				p.setCursor(&chartval.CursorPos{
					X: float64(e.Position.X) / ratio,
					Y: float64(e.Position.Y) / ratio,
				})
			case pointer.Scroll:
				p.zoom(e.Scroll.Y < 0)
			case pointer.Leave:
				p.setCursor(nil)
			}
		}
	}
}

// CursorBarIndex returns the index of the bar under the crosshair, or -1.
func (p *PlotView) CursorBarIndex() int {
	if p.cursor == nil || p.frame == nil {
		return -1
	}
	idx := p.frame.Time.XToIndex(p.cursor.X)
	if idx < 0 || idx >= len(p.bars) {
		return -1
	}
	return idx
}
