// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package theme

import (
	"image/color"
)

// Themes are immutable values. Changing a theme means constructing a new
// value and handing it to each renderer via SetTheme; nothing mutates a
// theme in place, so there is no hidden aliasing between consumers.

type GridTheme struct {
	LineColor       color.NRGBA
	SessionColor    color.NRGBA
	LineWidth       float64
	LabelColor      color.NRGBA
	LabelFontSize   float64
	LabelMargin     float64
	MaxPriceTicks   int
	DrawTimeLabels  bool
	DrawPriceLabels bool
}

type CrosshairTheme struct {
	LineColor   color.NRGBA
	LineWidth   float64
	DashPattern []float64
}

type PriceLabelTheme struct {
	UpColor   color.NRGBA
	DownColor color.NRGBA
	TextColor color.NRGBA
	FontSize  float64
	PaddingX  float64
	PaddingY  float64
}

type LegendTheme struct {
	HeaderColor color.NRGBA
	TextColor   color.NRGBA
	UpColor     color.NRGBA
	DownColor   color.NRGBA
	FontSize    float64
	Margin      float64
	Spacing     float64
}

type CandleTheme struct {
	UpColor         color.NRGBA
	DownColor       color.NRGBA
	WickUpColor     color.NRGBA
	WickDownColor   color.NRGBA
	LineColor       color.NRGBA
	AreaLineColor   color.NRGBA
	AreaFillColor   color.NRGBA
	VolumeUpColor   color.NRGBA
	VolumeDownColor color.NRGBA
}

type ChartTheme struct {
	BgColor             color.NRGBA
	Grid                GridTheme
	Crosshair           CrosshairTheme
	PriceLabel          PriceLabelTheme
	Legend              LegendTheme
	Candle              CandleTheme
	DefaultOverlayColor color.NRGBA
}

func NewDarkChartTheme() *ChartTheme {
	return &ChartTheme{
		BgColor: color.NRGBA{R: 16, G: 16, B: 20, A: 255},
		Grid: GridTheme{
			LineColor:       color.NRGBA{R: 60, G: 60, B: 60, A: 255},
			SessionColor:    color.NRGBA{R: 90, G: 90, B: 90, A: 255},
			LineWidth:       1,
			LabelColor:      color.NRGBA{R: 180, G: 180, B: 180, A: 255},
			LabelFontSize:   12,
			LabelMargin:     4,
			MaxPriceTicks:   8,
			DrawTimeLabels:  true,
			DrawPriceLabels: true,
		},
		Crosshair: CrosshairTheme{
			LineColor:   color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			LineWidth:   1,
			DashPattern: []float64{4, 4},
		},
		PriceLabel: PriceLabelTheme{
			UpColor:   color.NRGBA{R: 0, G: 160, B: 80, A: 255},
			DownColor: color.NRGBA{R: 200, G: 40, B: 40, A: 255},
			TextColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			FontSize:  12,
			PaddingX:  4,
			PaddingY:  2,
		},
		Legend: LegendTheme{
			HeaderColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			TextColor:   color.NRGBA{R: 180, G: 180, B: 180, A: 255},
			UpColor:     color.NRGBA{R: 0, G: 255, B: 0, A: 255},
			DownColor:   color.NRGBA{R: 255, G: 0, B: 0, A: 255},
			FontSize:    13,
			Margin:      8,
			Spacing:     10,
		},
		Candle: CandleTheme{
			UpColor:         color.NRGBA{R: 0, G: 255, B: 0, A: 255},
			DownColor:       color.NRGBA{R: 255, G: 0, B: 0, A: 255},
			WickUpColor:     color.NRGBA{R: 0, G: 255, B: 0, A: 255},
			WickDownColor:   color.NRGBA{R: 255, G: 0, B: 0, A: 255},
			LineColor:       color.NRGBA{R: 80, G: 160, B: 255, A: 255},
			AreaLineColor:   color.NRGBA{R: 80, G: 160, B: 255, A: 255},
			AreaFillColor:   color.NRGBA{R: 80, G: 160, B: 255, A: 60},
			VolumeUpColor:   color.NRGBA{R: 0, G: 160, B: 80, A: 160},
			VolumeDownColor: color.NRGBA{R: 200, G: 40, B: 40, A: 160},
		},
		DefaultOverlayColor: color.NRGBA{R: 255, G: 200, B: 0, A: 255},
	}
}

func NewLightChartTheme() *ChartTheme {
	return &ChartTheme{
		BgColor: color.NRGBA{R: 250, G: 250, B: 250, A: 255},
		Grid: GridTheme{
			LineColor:       color.NRGBA{R: 230, G: 230, B: 230, A: 255},
			SessionColor:    color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			LineWidth:       1,
			LabelColor:      color.NRGBA{R: 80, G: 80, B: 80, A: 255},
			LabelFontSize:   12,
			LabelMargin:     4,
			MaxPriceTicks:   8,
			DrawTimeLabels:  true,
			DrawPriceLabels: true,
		},
		Crosshair: CrosshairTheme{
			LineColor:   color.NRGBA{R: 60, G: 60, B: 60, A: 255},
			LineWidth:   1,
			DashPattern: []float64{4, 4},
		},
		PriceLabel: PriceLabelTheme{
			UpColor:   color.NRGBA{R: 0, G: 160, B: 80, A: 255},
			DownColor: color.NRGBA{R: 200, G: 40, B: 40, A: 255},
			TextColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			FontSize:  12,
			PaddingX:  4,
			PaddingY:  2,
		},
		Legend: LegendTheme{
			HeaderColor: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
			TextColor:   color.NRGBA{R: 80, G: 80, B: 80, A: 255},
			UpColor:     color.NRGBA{R: 0, G: 160, B: 80, A: 255},
			DownColor:   color.NRGBA{R: 200, G: 40, B: 40, A: 255},
			FontSize:    13,
			Margin:      8,
			Spacing:     10,
		},
		Candle: CandleTheme{
			UpColor:         color.NRGBA{R: 0, G: 160, B: 80, A: 255},
			DownColor:       color.NRGBA{R: 200, G: 40, B: 40, A: 255},
			WickUpColor:     color.NRGBA{R: 0, G: 160, B: 80, A: 255},
			WickDownColor:   color.NRGBA{R: 200, G: 40, B: 40, A: 255},
			LineColor:       color.NRGBA{R: 30, G: 100, B: 220, A: 255},
			AreaLineColor:   color.NRGBA{R: 30, G: 100, B: 220, A: 255},
			AreaFillColor:   color.NRGBA{R: 30, G: 100, B: 220, A: 50},
			VolumeUpColor:   color.NRGBA{R: 0, G: 160, B: 80, A: 160},
			VolumeDownColor: color.NRGBA{R: 200, G: 40, B: 40, A: 160},
		},
		DefaultOverlayColor: color.NRGBA{R: 200, G: 140, B: 0, A: 255},
	}
}

// CandleColors returns body and wick colors for a candle direction.
func (th *ChartTheme) CandleColors(isGreenCandle bool) (bodyColor, wickColor color.NRGBA) {
	if isGreenCandle {
		return th.Candle.UpColor, th.Candle.WickUpColor
	}
	return th.Candle.DownColor, th.Candle.WickDownColor
}
