// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"image/color"

	"candlekit/chartval"
	"candlekit/surface"

	"github.com/cinar/indicator"
)

const BollingerId = "bollinger"

// BollingerOverlay paints Bollinger bands (20 period middle band plus upper
// and lower bands two standard deviations out) around the close prices.
type BollingerOverlay struct {
	middle []float64
	upper  []float64
	lower  []float64
	color  color.NRGBA
}

func NewBollingerOverlay() Overlay {
	return &BollingerOverlay{}
}

func (d *BollingerOverlay) Id() string {
	return BollingerId
}

func (d *BollingerOverlay) SetColor(c color.NRGBA) {
	d.color = c
}

func (d *BollingerOverlay) Update(bars []chartval.Bar) {
	d.middle, d.upper, d.lower = indicator.BollingerBands(closePrices(bars))
}

func (d *BollingerOverlay) Draw(ctx surface.DrawContext, f *Frame) {
	drawValueLine(ctx, f, d.upper, d.color)
	drawValueLine(ctx, f, d.middle, d.color)
	drawValueLine(ctx, f, d.lower, d.color)
}
