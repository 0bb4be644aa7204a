// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartui

import (
	"context"
	"log"
	"os"
	"time"

	"candlekit/calendar"
	"candlekit/config"
	"candlekit/feed"
	"candlekit/theme"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

const historyBars = 300
const updateInterval = 250 * time.Millisecond
const updatesPerBar = 16

// ChartApp owns the Gio window, the plot view and the simulated data feed.
type ChartApp struct {
	win      *app.Window
	config   config.Config
	plotView *PlotView
	sim      *feed.Simulator
	updates  chan feed.BarUpdate
}

func NewChartApp(c config.Config) *ChartApp {
	return &ChartApp{config: c}
}

func (a *ChartApp) Initialize() error {
	appConfig, err := a.config.Copy(false)
	if err != nil {
		return err
	}
	appConfig.Sanitize()

	chartTheme := theme.NewDarkChartTheme()
	if appConfig.LightTheme {
		chartTheme = theme.NewLightChartTheme()
	}
	cal := calendar.NewUSMarketCalendar()
	plotConfig := appConfig.WindowConfig[0].PlotConfig[0]
	a.plotView = NewPlotView(plotConfig, chartTheme, appConfig.LayoutCacheEntries, cal)

	a.sim = feed.NewSimulator(plotConfig.Symbol, plotConfig.Timeframe, cal, time.Now().UnixNano())
	a.plotView.SetBars(a.sim.History(historyBars))
	a.updates, err = a.sim.Updates().Subscribe(plotConfig.Symbol)
	return err
}

func (a *ChartApp) Run(ctx context.Context) {
	a.createWindow()
	feedCtx, cancelFeed := context.WithCancel(ctx)
	go a.sim.Run(feedCtx, updateInterval, updatesPerBar)
	go a.handleUpdates(feedCtx)

	err := a.handleEvents()
	if err != nil {
		log.Printf("terminating with error: %v", err)
	}
	cancelFeed()
	a.plotView.Dispose()
	// app.Main does not return, terminate here once the window is gone.
	os.Exit(0)
}

func (a *ChartApp) Invalidate() {
	a.win.Invalidate()
}

func (a *ChartApp) createWindow() {
	a.win = app.NewWindow(
		app.Title(a.config.GetAppName()),
		app.Size(unit.Dp(1280), unit.Dp(800)),
	)
}

func (a *ChartApp) handleUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-a.updates:
			if !ok {
				return
			}
			a.plotView.ApplyUpdate(u)
			a.win.Invalidate()
		}
	}
}

func (a *ChartApp) handleEvents() error {
	var ops op.Ops
	for e := range a.win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, a.plotView.theme.BgColor)
			a.plotView.Layout(gtx)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
