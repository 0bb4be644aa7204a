// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package coords

import (
	"math"
)

// Media coordinates are CSS-like positions independent of pixel density,
// bitmap coordinates are physical device pixels. All rounding to device
// pixels happens here; no sub-pixel value ever leaves this package.

// BitmapPosition is the device-pixel start and extent of a line or box.
// Length is always at least 1.
type BitmapPosition struct {
	Position int
	Length   int
}

func MediaToBitmap(mediaCoord, pixelRatio float64) int {
	return int(math.Round(mediaCoord * pixelRatio))
}

func BitmapToMedia(bitmapCoord int, pixelRatio float64) float64 {
	return float64(bitmapCoord) / pixelRatio
}

// MediaWidthToBitmap converts a media size to device pixels using floor
// instead of round, so that adjacent elements never overlap due to rounding.
// The result is clamped to 1 so nothing renders as zero width.
func MediaWidthToBitmap(mediaSize, pixelRatio float64) int {
	size := int(math.Floor(mediaSize * pixelRatio))
	if size < 1 {
		size = 1
	}
	return size
}

// PositionsLine centers a line of the desired media width on a media
// coordinate. A 1 media pixel line at an integer media coordinate lands
// exactly on a physical pixel row or column for any pixel ratio.
func PositionsLine(mediaCoord, desiredWidthMedia, pixelRatio float64) BitmapPosition {
	center := int(math.Round(mediaCoord * pixelRatio))
	width := int(math.Round(desiredWidthMedia * pixelRatio))
	if width < 1 {
		width = 1
	}
	offset := width / 2
	return BitmapPosition{Position: center - offset, Length: width}
}

// PositionsBox is like PositionsLine but floors the width, so candle bodies
// do not visually touch when bar spacing narrows.
func PositionsBox(mediaCenter, mediaWidth, pixelRatio float64) BitmapPosition {
	center := int(math.Round(mediaCenter * pixelRatio))
	width := MediaWidthToBitmap(mediaWidth, pixelRatio)
	offset := width / 2
	return BitmapPosition{Position: center - offset, Length: width}
}
