// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"image/color"
	"sort"

	"candlekit/chartval"
	"candlekit/coords"
	"candlekit/surface"

	"golang.org/x/exp/maps"
)

// Overlay is an indicator renderer drawn on top of the price series on the
// main surface. Update recomputes the indicator values from the full bar
// series; Draw paints the visible part only.
type Overlay interface {
	Id() string
	SetColor(c color.NRGBA)
	Update(bars []chartval.Bar)
	Draw(ctx surface.DrawContext, f *Frame)
}

const DefaultOverlayId = "sma"

var OverlayRegistry map[string]func() Overlay = make(map[string]func() Overlay)

func init() {
	OverlayRegistry[SmaId] = NewSmaOverlay
	OverlayRegistry[BollingerId] = NewBollingerOverlay
}

func CreateOverlay(id string, c color.NRGBA) Overlay {
	d, ok := OverlayRegistry[id]
	if !ok {
		panic("invalid overlay name")
	}
	o := d()
	o.SetColor(c)
	return o
}

func OverlayList() []string {
	l := maps.Keys(OverlayRegistry)
	sort.Strings(l)
	return l
}

// closePrices extracts the close series as floats for the indicator
// library.
func closePrices(bars []chartval.Bar) []float64 {
	closing := make([]float64, len(bars))
	for i := range bars {
		closing[i], _ = bars[i].ClosePrice.Float64()
	}
	return closing
}

// drawValueLine paints values (one per bar index) as a polyline clipped to
// the visible range.
func drawValueLine(ctx surface.DrawContext, f *Frame, values []float64, c color.NRGBA) {
	start, end, ok := visibleIndexRange(f)
	if !ok {
		return
	}
	if end >= len(values) {
		end = len(values) - 1
	}
	ratio := f.Size.PixelRatio
	lineWidth := coords.MediaWidthToBitmap(coords.WickWidthMedia, ratio)

	prevX, prevY := -1, -1
	for i := start; i <= end; i++ {
		x := coords.MediaToBitmap(f.Time.IndexToX(i), ratio)
		y := coords.MediaToBitmap(f.Price.PriceToY(values[i]), ratio)
		if prevX >= 0 {
			// Performance: only draw when the line reaches a new pixel.
			if x != prevX || y != prevY {
				ctx.Line(prevX, prevY, x, y, lineWidth, c)
			}
		}
		prevX, prevY = x, y
	}
}
