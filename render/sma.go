// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"image/color"

	"candlekit/chartval"
	"candlekit/surface"

	"github.com/cinar/indicator"
)

const SmaId = "sma"

// SmaOverlay paints a simple moving average of the close prices.
type SmaOverlay struct {
	numPeriods int
	result     []float64
	color      color.NRGBA
}

func NewSmaOverlay() Overlay {
	return &SmaOverlay{numPeriods: 9}
}

func (d *SmaOverlay) Id() string {
	return SmaId
}

func (d *SmaOverlay) SetColor(c color.NRGBA) {
	d.color = c
}

func (d *SmaOverlay) SetPeriods(n int) {
	if n > 0 {
		d.numPeriods = n
	}
}

func (d *SmaOverlay) Update(bars []chartval.Bar) {
	d.result = indicator.Sma(d.numPeriods, closePrices(bars))
}

func (d *SmaOverlay) Draw(ctx surface.DrawContext, f *Frame) {
	drawValueLine(ctx, f, d.result, d.color)
}
