// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var red = color.NRGBA{R: 255, A: 255}

func TestNewSizeBitmapDimensions(t *testing.T) {
	s := NewSize(800, 600, 2)

	assert.Equal(t, 1600, s.BitmapWidth)
	assert.Equal(t, 1200, s.BitmapHeight)
}

func TestNewSizeInvalidRatioDefaultsToOne(t *testing.T) {
	s := NewSize(100, 100, 0)

	assert.Equal(t, 1.0, s.PixelRatio)
	assert.Equal(t, 100, s.BitmapWidth)
}

func TestFillRectPaintsExactBounds(t *testing.T) {
	c := NewSoftwareCanvas(20, 20, 1)

	c.FillRect(5, 5, 3, 2, red)

	img := c.Image()
	_, _, _, a := img.At(4, 5).RGBA()
	assert.Zero(t, a)
	r, _, _, _ := img.At(5, 5).RGBA()
	assert.NotZero(t, r)
	r, _, _, _ = img.At(7, 6).RGBA()
	assert.NotZero(t, r)
	_, _, _, a = img.At(8, 5).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(5, 7).RGBA()
	assert.Zero(t, a)
}

func TestFillRectClipsToBounds(t *testing.T) {
	c := NewSoftwareCanvas(10, 10, 1)

	// Must not panic.
	c.FillRect(-5, -5, 100, 100, red)
	c.FillRect(50, 50, 10, 10, red)

	r, _, _, _ := c.Image().At(0, 0).RGBA()
	assert.NotZero(t, r)
}

func TestClearUsesBackground(t *testing.T) {
	c := NewSoftwareCanvas(4, 4, 1)
	c.SetBackground(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	c.FillRect(0, 0, 4, 4, red)

	c.Clear()

	_, g, _, _ := c.Image().At(2, 2).RGBA()
	assert.Equal(t, uint32(2*257), g)
}

func TestDashedLineAlternates(t *testing.T) {
	c := NewSoftwareCanvas(20, 4, 1)

	c.DashedLineH(1, 0, 15, 1, []int{2, 2}, red)

	img := c.Image()
	r, _, _, _ := img.At(0, 1).RGBA()
	assert.NotZero(t, r)
	r, _, _, _ = img.At(1, 1).RGBA()
	assert.NotZero(t, r)
	_, _, _, a := img.At(2, 1).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(3, 1).RGBA()
	assert.Zero(t, a)
	r, _, _, _ = img.At(4, 1).RGBA()
	assert.NotZero(t, r)
}

func TestResizeNotifiesCallbacks(t *testing.T) {
	c := NewSoftwareCanvas(10, 10, 1)
	var got []Size
	remove := c.OnResize(func(s Size) {
		got = append(got, s)
	})

	c.Resize(20, 10, 2)
	assert.Len(t, got, 1)
	assert.Equal(t, 40, got[0].BitmapWidth)

	// Same size again is a no-op.
	c.Resize(20, 10, 2)
	assert.Len(t, got, 1)

	remove()
	c.Resize(30, 30, 1)
	assert.Len(t, got, 1)
}

func TestDisposeIsIdempotent(t *testing.T) {
	c := NewSoftwareCanvas(10, 10, 1)

	c.Dispose()
	c.Dispose()
	// Drawing after dispose is a no-op, not a crash.
	c.FillRect(0, 0, 5, 5, red)
	c.Clear()
}

func TestMeasureTextNonEmpty(t *testing.T) {
	c := NewSoftwareCanvas(100, 20, 1)

	w, h := c.MeasureText("123.45", 12)

	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)

	// Larger font measures wider.
	w2, _ := c.MeasureText("123.45", 24)
	assert.Greater(t, w2, w)
}

func TestDrawTextPaintsPixels(t *testing.T) {
	c := NewSoftwareCanvas(100, 30, 1)

	c.DrawText("88", 2, 2, 16, red)

	var painted bool
	img := c.Image()
	for y := 0; y < 30 && !painted; y++ {
		for x := 0; x < 100 && !painted; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				painted = true
			}
		}
	}
	assert.True(t, painted)
}
