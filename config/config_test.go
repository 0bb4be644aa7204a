// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"testing"

	"candlekit/cache"
	"candlekit/chartval"
	"candlekit/render"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestNewAppConfigHasOnePlot(t *testing.T) {
	c := NewAppConfig()

	assert.Len(t, c.WindowConfig, 1)
	assert.Len(t, c.WindowConfig[0].PlotConfig, 0)
	c.Sanitize()
	assert.Len(t, c.WindowConfig[0].PlotConfig, 1)
}

func TestSanitizeRestoresDefaults(t *testing.T) {
	c := AppConfig{}
	c.Sanitize()

	assert.Equal(t, cache.DefaultMaxEntries, c.LayoutCacheEntries)
	assert.Len(t, c.WindowConfig, 1)
	plot := c.WindowConfig[0].PlotConfig[0]
	assert.Equal(t, "SPY", plot.Symbol)
	assert.Equal(t, chartval.TimeframeOneDay, plot.Timeframe)
}

func TestSanitizeDropsUnknownOverlays(t *testing.T) {
	c := NewAppConfig()
	c.Sanitize()
	c.WindowConfig[0].PlotConfig[0].Overlays = []OverlayConfig{
		{OverlayId: render.SmaId},
		{OverlayId: "not an overlay"},
		{OverlayId: render.BollingerId},
	}

	c.Sanitize()

	overlays := c.WindowConfig[0].PlotConfig[0].Overlays
	assert.Len(t, overlays, 2)
	assert.Equal(t, render.SmaId, overlays[0].OverlayId)
	assert.Equal(t, render.BollingerId, overlays[1].OverlayId)
}

func TestSanitizeClampsTimeframe(t *testing.T) {
	c := NewAppConfig()
	c.Sanitize()
	c.WindowConfig[0].PlotConfig[0].Timeframe = chartval.NumTimeframes + 5

	c.Sanitize()

	assert.Equal(t, chartval.TimeframeOneDay, c.WindowConfig[0].PlotConfig[0].Timeframe)
}

func TestDeepCopyIsIndependent(t *testing.T) {
	c := NewAppConfig()
	c.Sanitize()

	copied := c.deepCopy()
	copied.WindowConfig[0].PlotConfig[0].Symbol = "GOOG"

	assert.Equal(t, "SPY", c.WindowConfig[0].PlotConfig[0].Symbol)
}

func TestAppConfigYamlRoundTrip(t *testing.T) {
	c := NewAppConfig()
	c.Sanitize()
	c.LightTheme = true
	c.WindowConfig[0].PlotConfig[0].ChartType = chartval.ChartTypeArea

	data, err := yaml.Marshal(&c)
	assert.NoError(t, err)

	var decoded AppConfig
	assert.NoError(t, yaml.Unmarshal(data, &decoded))
	decoded.Sanitize()

	assert.True(t, cmp.Equal(c, decoded), cmp.Diff(c, decoded))
}
