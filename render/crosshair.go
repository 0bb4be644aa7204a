// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"candlekit/coords"
	"candlekit/surface"
	"candlekit/theme"
)

// CrosshairRenderer paints two dashed lines through the cursor position on
// the top surface. A nil cursor draws nothing, which together with a top
// surface clear removes the crosshair.
type CrosshairRenderer struct {
	theme theme.CrosshairTheme
}

func NewCrosshairRenderer(th theme.CrosshairTheme) *CrosshairRenderer {
	return &CrosshairRenderer{theme: th}
}

func (r *CrosshairRenderer) SetTheme(th theme.CrosshairTheme) {
	r.theme = th
}

func (r *CrosshairRenderer) Draw(ctx surface.DrawContext, f *Frame) {
	if f.Cursor == nil {
		return
	}
	ratio := f.Size.PixelRatio
	dash := scaleDashPattern(r.theme.DashPattern, ratio)

	h := coords.PositionsLine(f.Cursor.Y, r.theme.LineWidth, ratio)
	ctx.DashedLineH(h.Position, 0, f.Size.BitmapWidth-1, h.Length, dash, r.theme.LineColor)

	v := coords.PositionsLine(f.Cursor.X, r.theme.LineWidth, ratio)
	ctx.DashedLineV(v.Position, 0, f.Size.BitmapHeight-1, v.Length, dash, r.theme.LineColor)
}

// scaleDashPattern converts a media-space dash pattern to bitmap pixels so
// the dash period looks the same on every device density.
func scaleDashPattern(pattern []float64, pixelRatio float64) []int {
	if len(pattern) == 0 {
		return nil
	}
	dash := make([]int, len(pattern))
	for i, p := range pattern {
		dash[i] = coords.MediaWidthToBitmap(p, pixelRatio)
	}
	return dash
}
