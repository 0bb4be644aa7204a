// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"candlekit/coords"
	"candlekit/surface"
	"candlekit/theme"
)

// volumePaneFraction is the share of the pane height used for volume bars.
const volumePaneFraction = 0.2

// VolumeRenderer paints bottom-anchored volume bars colored by candle
// direction. The tallest visible bar fills the volume strip; an all-zero
// viewport draws nothing.
type VolumeRenderer struct {
	theme theme.CandleTheme
}

func NewVolumeRenderer(th theme.CandleTheme) *VolumeRenderer {
	return &VolumeRenderer{theme: th}
}

func (r *VolumeRenderer) SetTheme(th theme.CandleTheme) {
	r.theme = th
}

func (r *VolumeRenderer) Draw(ctx surface.DrawContext, f *Frame) {
	start, end, ok := visibleIndexRange(f)
	if !ok {
		return
	}
	var maxVolume float64
	for i := start; i <= end; i++ {
		v, _ := f.Bars[i].Volume.Float64()
		if v > maxVolume {
			maxVolume = v
		}
	}
	if maxVolume <= 0 {
		return
	}

	ratio := f.Size.PixelRatio
	spacing := f.Viewport.BarSpacing()
	barWidth := coords.CandleBodyWidth(spacing)
	stripHeight := f.Size.Height * volumePaneFraction

	for i := start; i <= end; i++ {
		bar := f.Bars[i]
		v, _ := bar.Volume.Float64()
		if v <= 0 {
			continue
		}
		x := f.Time.IndexToX(i)
		// Performance: skip bars entirely outside the pane.
		if (x+barWidth/2) < 0 || (x-barWidth/2) > f.Size.Width {
			continue
		}
		xPos := coords.PositionsBox(x, barWidth, ratio)
		heightMedia := stripHeight * (v / maxVolume)
		height := coords.MediaWidthToBitmap(heightMedia, ratio)
		c := r.theme.VolumeDownColor
		if bar.IsGreen() {
			c = r.theme.VolumeUpColor
		}
		ctx.FillRect(xPos.Position, f.Size.BitmapHeight-height, xPos.Length, height, c)
	}
}
