// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

const NearZero = 0.000001

// Viewport describes the visible bar range of a pane plus the media size
// and pixel density of its surface.
type Viewport struct {
	StartIdx   int
	EndIdx     int
	Width      float64
	Height     float64
	PixelRatio float64
}

func (v Viewport) VisibleBars() int {
	n := v.EndIdx - v.StartIdx + 1
	if n < 0 {
		return 0
	}
	return n
}

// BarSpacing is the media width of one bar slot within the viewport.
func (v Viewport) BarSpacing() float64 {
	n := v.VisibleBars()
	if n == 0 {
		return 0
	}
	return v.Width / float64(n)
}

// CursorPos is a pointer position in media coordinates. A nil *CursorPos
// means the crosshair is cleared.
type CursorPos struct {
	X float64
	Y float64
}

type ChartType int32

const (
	ChartTypeCandles ChartType = iota
	ChartTypeLine
	ChartTypeArea
)

type CandleMode int32

const (
	CandleModeFilled CandleMode = iota
	CandleModeHollow
)

func IsGreenCandle(o, c float64) bool {
	// this may be adjusted based on whether it is considered to be green if open price equals close price.
	return c >= o
}
