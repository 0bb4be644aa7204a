// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"image/color"

	"candlekit/chartval"
	"candlekit/render"
)

type PlotConfig struct {
	Symbol     string
	Timeframe  chartval.Timeframe
	ChartType  chartval.ChartType
	CandleMode chartval.CandleMode
	LogScale   bool `yaml:",omitempty"`
	Overlays   []OverlayConfig
}

type OverlayConfig struct {
	OverlayId string
	Color     color.NRGBA `yaml:",omitempty"`
}

// Returns some valid default plot data.
func NewPlotConfig() PlotConfig {
	return PlotConfig{
		Symbol:    "SPY",
		Timeframe: chartval.TimeframeOneDay,
		ChartType: chartval.ChartTypeCandles,
		Overlays: []OverlayConfig{
			{OverlayId: render.DefaultOverlayId},
		},
	}
}

func (p *PlotConfig) sanitize() {
	if p.Symbol == "" {
		p.Symbol = "SPY"
	}
	if p.Timeframe < 0 || p.Timeframe >= chartval.NumTimeframes {
		p.Timeframe = chartval.TimeframeOneDay
	}
	overlays := p.Overlays[:0]
	for _, o := range p.Overlays {
		if _, ok := render.OverlayRegistry[o.OverlayId]; ok {
			overlays = append(overlays, o)
		}
	}
	p.Overlays = overlays
}
