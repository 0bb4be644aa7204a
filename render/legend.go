// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"image/color"

	"candlekit/chartval"
	"candlekit/coords"
	"candlekit/surface"
	"candlekit/theme"
)

// LegendRenderer paints the OHLCV legend in the top-left corner: symbol and
// timeframe header, open/high/low/close colored by candle direction, volume
// and percent change. The legend follows the hovered bar while a crosshair
// cursor is active and falls back to the latest bar otherwise.
// There is no flow layout, X offsets are accumulated from measured text.
type LegendRenderer struct {
	theme theme.LegendTheme
}

func NewLegendRenderer(th theme.LegendTheme) *LegendRenderer {
	return &LegendRenderer{theme: th}
}

func (r *LegendRenderer) SetTheme(th theme.LegendTheme) {
	r.theme = th
}

func (r *LegendRenderer) Draw(ctx surface.DrawContext, f *Frame) {
	start, end, ok := visibleIndexRange(f)
	if !ok {
		return
	}
	idx := end
	if f.Cursor != nil {
		idx = f.Time.XToIndex(f.Cursor.X)
		if idx < start {
			idx = start
		}
		if idx > end {
			idx = end
		}
	}
	bar := f.Bars[idx]
	o, _ := bar.OpenPrice.Float64()
	h, _ := bar.HighPrice.Float64()
	l, _ := bar.LowPrice.Float64()
	c, _ := bar.ClosePrice.Float64()
	v, _ := bar.Volume.Float64()
	valueColor := r.directionColor(bar)

	ratio := f.Size.PixelRatio
	fontSize := coords.MediaWidthToBitmap(r.theme.FontSize, ratio)
	margin := coords.MediaWidthToBitmap(r.theme.Margin, ratio)
	spacing := coords.MediaWidthToBitmap(r.theme.Spacing, ratio)

	x := margin
	y := margin
	x = r.drawItem(ctx, f.Symbol+" "+f.Timeframe.UiString(), x, y, fontSize, spacing, r.theme.HeaderColor)
	x = r.drawPair(ctx, "O", chartval.FormatPrice(o), x, y, fontSize, spacing, valueColor)
	x = r.drawPair(ctx, "H", chartval.FormatPrice(h), x, y, fontSize, spacing, valueColor)
	x = r.drawPair(ctx, "L", chartval.FormatPrice(l), x, y, fontSize, spacing, valueColor)
	x = r.drawPair(ctx, "C", chartval.FormatPrice(c), x, y, fontSize, spacing, valueColor)
	x = r.drawPair(ctx, "Vol", chartval.FormatVolume(v), x, y, fontSize, spacing, r.theme.TextColor)

	if idx > 0 {
		delta := chartval.CalculateDeltaPercentage(f.Bars[idx-1].ClosePrice, bar.ClosePrice)
		deltaColor := r.theme.DownColor
		if chartval.IsGreenQuote(delta) {
			deltaColor = r.theme.UpColor
		}
		r.drawItem(ctx, chartval.FormatDeltaPercentage(delta), x, y, fontSize, spacing, deltaColor)
	}
}

func (r *LegendRenderer) drawItem(ctx surface.DrawContext, s string, x, y, fontSize, spacing int, c color.NRGBA) int {
	w, _ := ctx.MeasureText(s, fontSize)
	ctx.DrawText(s, x, y, fontSize, c)
	return x + w + spacing
}

// drawPair paints a dimmed label directly followed by a colored value.
func (r *LegendRenderer) drawPair(ctx surface.DrawContext, label, value string, x, y, fontSize, spacing int, valueColor color.NRGBA) int {
	labelW, _ := ctx.MeasureText(label+" ", fontSize)
	ctx.DrawText(label+" ", x, y, fontSize, r.theme.TextColor)
	return r.drawItem(ctx, value, x+labelW, y, fontSize, spacing, valueColor)
}

func (r *LegendRenderer) directionColor(bar chartval.Bar) color.NRGBA {
	if bar.IsGreen() {
		return r.theme.UpColor
	}
	return r.theme.DownColor
}
