// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image/color"
	"math"
)

// Size describes a surface in both media (CSS-like) and bitmap (device
// pixel) units.
type Size struct {
	Width        float64
	Height       float64
	PixelRatio   float64
	BitmapWidth  int
	BitmapHeight int
}

func NewSize(width, height, pixelRatio float64) Size {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return Size{
		Width:        width,
		Height:       height,
		PixelRatio:   pixelRatio,
		BitmapWidth:  int(math.Round(width * pixelRatio)),
		BitmapHeight: int(math.Round(height * pixelRatio)),
	}
}

// DrawContext is the 2D primitive set renderers draw with. All coordinates
// and sizes are integer bitmap pixels; callers are expected to have already
// rounded media coordinates through the coords package.
type DrawContext interface {
	FillRect(x, y, width, height int, c color.NRGBA)
	// Line draws a straight line of the given width between two points.
	Line(x0, y0, x1, y1, width int, c color.NRGBA)
	// DashedLineH and DashedLineV draw axis-parallel dashed lines. The dash
	// pattern alternates on/off run lengths in bitmap pixels; an empty
	// pattern draws solid.
	DashedLineH(y, x0, x1, width int, dash []int, c color.NRGBA)
	DashedLineV(x, y0, y1, width int, dash []int, c color.NRGBA)
	// DrawText renders s with its top-left corner at (x, y) using a font of
	// the given bitmap pixel size.
	DrawText(s string, x, y, sizePx int, c color.NRGBA)
	MeasureText(s string, sizePx int) (width, height int)
}

// Canvas is a DPI-aware raster surface. The rendering core owns the two
// canvases of each pane exclusively; resize notifications drive dirty-flag
// invalidation.
type Canvas interface {
	Context() DrawContext
	Size() Size
	Clear()
	// OnResize registers a callback fired after the surface size changes.
	// The returned closure removes the registration.
	OnResize(cb func(Size)) func()
	// Dispose frees the surface. It is safe to call multiple times.
	Dispose()
}
