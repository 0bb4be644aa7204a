// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"candlekit/chartval"
	"candlekit/coords"
	"candlekit/surface"
	"candlekit/theme"
)

// GridRenderer paints horizontal gridlines at the nice price ticks and
// vertical gridlines at session boundaries, plus the axis labels.
type GridRenderer struct {
	theme theme.GridTheme
}

func NewGridRenderer(th theme.GridTheme) *GridRenderer {
	return &GridRenderer{theme: th}
}

func (r *GridRenderer) SetTheme(th theme.GridTheme) {
	r.theme = th
}

func (r *GridRenderer) Draw(ctx surface.DrawContext, f *Frame) {
	ratio := f.Size.PixelRatio
	fontSize := coords.MediaWidthToBitmap(r.theme.LabelFontSize, ratio)
	margin := coords.MediaWidthToBitmap(r.theme.LabelMargin, ratio)

	// Horizontal lines are drawn through positionsLine so they land on
	// physical pixel rows regardless of density.
	for _, tick := range f.PriceTicks {
		pos := coords.PositionsLine(f.Price.PriceToY(tick), r.theme.LineWidth, ratio)
		ctx.FillRect(0, pos.Position, f.Size.BitmapWidth, pos.Length, r.theme.LineColor)
		if r.theme.DrawPriceLabels {
			label := chartval.FormatPrice(tick)
			w, h := ctx.MeasureText(label, fontSize)
			ctx.DrawText(label, f.Size.BitmapWidth-w-margin, pos.Position-h-1, fontSize, r.theme.LabelColor)
		}
	}

	for _, tick := range f.TimeTicks {
		pos := coords.PositionsLine(f.Time.IndexToX(tick.Index), r.theme.LineWidth, ratio)
		ctx.FillRect(pos.Position, 0, pos.Length, f.Size.BitmapHeight, r.theme.SessionColor)
		if r.theme.DrawTimeLabels {
			w, h := ctx.MeasureText(tick.Label, fontSize)
			ctx.DrawText(tick.Label, pos.Position-w/2, f.Size.BitmapHeight-h-margin, fontSize, r.theme.LabelColor)
		}
	}
}
