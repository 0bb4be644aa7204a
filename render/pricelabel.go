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

// PriceLabelRenderer paints the latest price as a dashed line across the
// pane with a right-aligned label on a filled background, and a second
// label at the cursor position while the crosshair is active. The label
// background follows the direction of the last candle.
type PriceLabelRenderer struct {
	theme theme.PriceLabelTheme
	dash  []float64
}

func NewPriceLabelRenderer(th theme.PriceLabelTheme) *PriceLabelRenderer {
	return &PriceLabelRenderer{theme: th, dash: []float64{2, 2}}
}

func (r *PriceLabelRenderer) SetTheme(th theme.PriceLabelTheme) {
	r.theme = th
}

func (r *PriceLabelRenderer) Draw(ctx surface.DrawContext, f *Frame) {
	start, end, ok := visibleIndexRange(f)
	if !ok {
		return
	}
	last := f.Bars[end]
	closePrice, _ := last.ClosePrice.Float64()
	openPrice, _ := last.OpenPrice.Float64()
	if end > start {
		openPrice, _ = f.Bars[end-1].ClosePrice.Float64()
	}
	up := chartval.IsGreenCandle(openPrice, closePrice)

	ratio := f.Size.PixelRatio
	line := coords.PositionsLine(f.Price.PriceToY(closePrice), 1, ratio)
	ctx.DashedLineH(line.Position, 0, f.Size.BitmapWidth-1, line.Length,
		scaleDashPattern(r.dash, ratio), r.directionColor(up))

	r.drawLabel(ctx, f, chartval.FormatPrice(closePrice), line.Position, r.directionColor(up))

	if f.Cursor != nil {
		cursorPrice := f.Price.YToPrice(f.Cursor.Y)
		anchor := coords.MediaToBitmap(f.Cursor.Y, ratio)
		r.drawLabel(ctx, f, chartval.FormatPrice(cursorPrice), anchor,
			r.directionColor(cursorPrice >= closePrice))
	}
}

// drawLabel paints a filled background box with right-aligned text,
// vertically centered on the given bitmap Y anchor.
func (r *PriceLabelRenderer) drawLabel(ctx surface.DrawContext, f *Frame, label string, anchorY int, bg color.NRGBA) {
	ratio := f.Size.PixelRatio
	fontSize := coords.MediaWidthToBitmap(r.theme.FontSize, ratio)
	padX := coords.MediaWidthToBitmap(r.theme.PaddingX, ratio)
	padY := coords.MediaWidthToBitmap(r.theme.PaddingY, ratio)

	w, h := ctx.MeasureText(label, fontSize)
	boxW := w + 2*padX
	boxH := h + 2*padY
	boxX := f.Size.BitmapWidth - boxW
	boxY := anchorY - boxH/2
	ctx.FillRect(boxX, boxY, boxW, boxH, bg)
	ctx.DrawText(label, boxX+padX, boxY+padY, fontSize, r.theme.TextColor)
}

func (r *PriceLabelRenderer) directionColor(up bool) color.NRGBA {
	if up {
		return r.theme.UpColor
	}
	return r.theme.DownColor
}
