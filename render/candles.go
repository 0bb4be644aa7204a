// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"image/color"

	"candlekit/cache"
	"candlekit/chartval"
	"candlekit/coords"
	"candlekit/surface"
	"candlekit/theme"
)

// candleGeometry is the fully resolved bitmap geometry of one visible
// candle. All positions are device pixels; no sub-pixel values survive
// layout.
type candleGeometry struct {
	BodyX coords.BitmapPosition
	BodyY coords.BitmapPosition
	WickX coords.BitmapPosition
	WickY coords.BitmapPosition
	Green bool
}

// candleLayout is the memoized value stored in the layout cache. Conflated
// layouts carry close-price dots instead of candle bodies.
type candleLayout struct {
	Candles   []candleGeometry
	Conflated bool
}

// CandleRenderer paints the price series as candlesticks, a close-price
// line or a filled area, depending on the frame's chart type. The expensive
// viewport layout (which bars are visible and their pixel geometry) is
// memoized through the layout cache; the owner must invalidate the cache
// when bar data changes in place.
type CandleRenderer struct {
	theme  theme.CandleTheme
	layout *cache.LayoutCache
}

func NewCandleRenderer(th theme.CandleTheme, layout *cache.LayoutCache) *CandleRenderer {
	return &CandleRenderer{theme: th, layout: layout}
}

func (r *CandleRenderer) SetTheme(th theme.CandleTheme) {
	r.theme = th
}

func (r *CandleRenderer) Draw(ctx surface.DrawContext, f *Frame) {
	switch f.ChartType {
	case chartval.ChartTypeLine:
		r.drawCloseLine(ctx, f, false)
	case chartval.ChartTypeArea:
		r.drawCloseLine(ctx, f, true)
	default:
		r.drawCandles(ctx, f)
	}
}

func (r *CandleRenderer) drawCandles(ctx surface.DrawContext, f *Frame) {
	layout := r.layoutCandles(f)
	if layout.Conflated {
		for _, g := range layout.Candles {
			_, wickColor := candleColors(&r.theme, g.Green)
			ctx.FillRect(g.BodyX.Position, g.BodyY.Position, g.BodyX.Length, g.BodyY.Length, wickColor)
		}
		return
	}
	hollow := f.CandleMode == chartval.CandleModeHollow
	for _, g := range layout.Candles {
		bodyColor, wickColor := candleColors(&r.theme, g.Green)
		ctx.FillRect(g.WickX.Position, g.WickY.Position, g.WickX.Length, g.WickY.Length, wickColor)
		if hollow && g.Green {
			// Hollow mode leaves rising bodies unfilled, only the outline
			// is drawn.
			drawBoxOutline(ctx, g.BodyX, g.BodyY, g.WickX.Length, bodyColor)
		} else {
			ctx.FillRect(g.BodyX.Position, g.BodyY.Position, g.BodyX.Length, g.BodyY.Length, bodyColor)
		}
	}
}

// layoutCandles resolves the visible candle geometry, memoized by the
// layout cache key.
func (r *CandleRenderer) layoutCandles(f *Frame) *candleLayout {
	key := cache.Key{
		StartIdx:   f.Viewport.StartIdx,
		EndIdx:     f.Viewport.EndIdx,
		DataLen:    len(f.Bars),
		ChartType:  f.ChartType,
		CandleMode: f.CandleMode,
		Width:      f.Size.BitmapWidth,
		Height:     f.Size.BitmapHeight,
	}
	if r.layout == nil {
		return computeCandleLayout(f)
	}
	return r.layout.GetOrCompute(key, func() any {
		return computeCandleLayout(f)
	}).(*candleLayout)
}

func computeCandleLayout(f *Frame) *candleLayout {
	start, end, ok := visibleIndexRange(f)
	layout := &candleLayout{}
	if !ok {
		return layout
	}
	ratio := f.Size.PixelRatio
	spacing := f.Viewport.BarSpacing()
	layout.Conflated = coords.IsConflated(spacing)
	bodyWidth := coords.CandleBodyWidth(spacing)
	layout.Candles = make([]candleGeometry, 0, end-start+1)

	for i := start; i <= end; i++ {
		bar := f.Bars[i]
		o, _ := bar.OpenPrice.Float64()
		h, _ := bar.HighPrice.Float64()
		l, _ := bar.LowPrice.Float64()
		c, _ := bar.ClosePrice.Float64()
		x := f.Time.IndexToX(i)

		// Performance: skip bars entirely outside the pane so offscreen
		// data costs no draw calls.
		if (x+bodyWidth/2) < 0 || (x-bodyWidth/2) > f.Size.Width {
			continue
		}

		g := candleGeometry{Green: chartval.IsGreenCandle(o, c)}
		if layout.Conflated {
			g.BodyX = coords.PositionsLine(x, coords.WickWidthMedia, ratio)
			g.BodyY = coords.PositionsLine(f.Price.PriceToY(c), coords.WickWidthMedia, ratio)
			layout.Candles = append(layout.Candles, g)
			continue
		}

		g.BodyX = coords.PositionsBox(x, bodyWidth, ratio)
		g.WickX = coords.PositionsLine(x, coords.WickWidthMedia, ratio)
		g.BodyY = verticalSpan(f, ratio, o, c)
		g.WickY = verticalSpan(f, ratio, h, l)
		layout.Candles = append(layout.Candles, g)
	}
	return layout
}

// verticalSpan converts two prices to a bitmap Y run of at least one pixel.
func verticalSpan(f *Frame, ratio, p1, p2 float64) coords.BitmapPosition {
	y1 := coords.MediaToBitmap(f.Price.PriceToY(p1), ratio)
	y2 := coords.MediaToBitmap(f.Price.PriceToY(p2), ratio)
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	length := y2 - y1
	if length < 1 {
		length = 1
	}
	return coords.BitmapPosition{Position: y1, Length: length}
}

func (r *CandleRenderer) drawCloseLine(ctx surface.DrawContext, f *Frame, fillArea bool) {
	start, end, ok := visibleIndexRange(f)
	if !ok {
		return
	}
	ratio := f.Size.PixelRatio
	lineWidth := coords.MediaWidthToBitmap(coords.WickWidthMedia, ratio)
	spacing := f.Viewport.BarSpacing()

	prevX, prevY := -1, -1
	for i := start; i <= end; i++ {
		c, _ := f.Bars[i].ClosePrice.Float64()
		x := coords.MediaToBitmap(f.Time.IndexToX(i), ratio)
		y := coords.MediaToBitmap(f.Price.PriceToY(c), ratio)
		if fillArea {
			// Fill one bar-spacing wide column below the close.
			col := coords.PositionsBox(f.Time.IndexToX(i), spacing, ratio)
			ctx.FillRect(col.Position, y, col.Length, f.Size.BitmapHeight-y, r.theme.AreaFillColor)
		}
		if prevX >= 0 {
			// Performance: only draw when the line reaches a new pixel.
			if x != prevX || y != prevY {
				ctx.Line(prevX, prevY, x, y, lineWidth, r.lineColor(fillArea))
			}
		}
		prevX, prevY = x, y
	}
}

func (r *CandleRenderer) lineColor(fillArea bool) color.NRGBA {
	if fillArea {
		return r.theme.AreaLineColor
	}
	return r.theme.LineColor
}

func candleColors(th *theme.CandleTheme, green bool) (body, wick color.NRGBA) {
	if green {
		return th.UpColor, th.WickUpColor
	}
	return th.DownColor, th.WickDownColor
}

// drawBoxOutline strokes a one-wick-width rectangle outline.
func drawBoxOutline(ctx surface.DrawContext, xPos, yPos coords.BitmapPosition, lineWidth int, c color.NRGBA) {
	ctx.FillRect(xPos.Position, yPos.Position, xPos.Length, lineWidth, c)
	ctx.FillRect(xPos.Position, yPos.Position+yPos.Length-lineWidth, xPos.Length, lineWidth, c)
	ctx.FillRect(xPos.Position, yPos.Position, lineWidth, yPos.Length, c)
	ctx.FillRect(xPos.Position+xPos.Length-lineWidth, yPos.Position, lineWidth, yPos.Length, c)
}
