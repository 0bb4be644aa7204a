// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// SoftwareCanvas is an image.RGBA-backed Canvas. It is not safe for
// concurrent use; the paint pipeline is single threaded.
type SoftwareCanvas struct {
	img        *image.RGBA
	size       Size
	background color.NRGBA
	resizeCbs  map[int]func(Size)
	nextCbId   int
	disposed   bool
}

func NewSoftwareCanvas(width, height, pixelRatio float64) *SoftwareCanvas {
	c := &SoftwareCanvas{
		resizeCbs: make(map[int]func(Size)),
	}
	c.alloc(NewSize(width, height, pixelRatio))
	return c
}

func (c *SoftwareCanvas) alloc(s Size) {
	c.size = s
	w := s.BitmapWidth
	h := s.BitmapHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the backing store for presentation (blitting).
func (c *SoftwareCanvas) Image() *image.RGBA {
	return c.img
}

func (c *SoftwareCanvas) Context() DrawContext {
	return c
}

func (c *SoftwareCanvas) Size() Size {
	return c.size
}

// SetBackground sets the color used by Clear. A fully transparent
// background makes the canvas suitable as an overlay surface.
func (c *SoftwareCanvas) SetBackground(bg color.NRGBA) {
	c.background = bg
}

func (c *SoftwareCanvas) Clear() {
	if c.disposed {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// Resize reallocates the backing store and notifies all registered
// callbacks. A no-op if the size is unchanged.
func (c *SoftwareCanvas) Resize(width, height, pixelRatio float64) {
	if c.disposed {
		return
	}
	s := NewSize(width, height, pixelRatio)
	if s == c.size {
		return
	}
	c.alloc(s)
	for _, cb := range c.resizeCbs {
		cb(s)
	}
}

func (c *SoftwareCanvas) OnResize(cb func(Size)) func() {
	id := c.nextCbId
	c.nextCbId++
	c.resizeCbs[id] = cb
	return func() {
		delete(c.resizeCbs, id)
	}
}

func (c *SoftwareCanvas) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.resizeCbs = make(map[int]func(Size))
	c.img = image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func (c *SoftwareCanvas) FillRect(x, y, width, height int, col color.NRGBA) {
	if c.disposed || width <= 0 || height <= 0 {
		return
	}
	rect := image.Rect(x, y, x+width, y+height).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{col}, image.Point{}, draw.Over)
}

func (c *SoftwareCanvas) Line(x0, y0, x1, y1, width int, col color.NRGBA) {
	if c.disposed {
		return
	}
	if width < 1 {
		width = 1
	}
	// Axis-parallel lines degrade to plain rect fills.
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		c.FillRect(x0, y0-width/2, x1-x0+1, width, col)
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		c.FillRect(x0-width/2, y0, width, y1-y0+1, col)
		return
	}
	// Bresenham with a square pen for diagonals.
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		c.FillRect(x-width/2, y-width/2, width, width, col)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (c *SoftwareCanvas) DashedLineH(y, x0, x1, width int, dash []int, col color.NRGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if len(dash) == 0 {
		c.FillRect(x0, y, x1-x0+1, width, col)
		return
	}
	forEachDashRun(x0, x1, dash, func(start, length int) {
		c.FillRect(start, y, length, width, col)
	})
}

func (c *SoftwareCanvas) DashedLineV(x, y0, y1, width int, dash []int, col color.NRGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if len(dash) == 0 {
		c.FillRect(x, y0, width, y1-y0+1, col)
		return
	}
	forEachDashRun(y0, y1, dash, func(start, length int) {
		c.FillRect(x, start, width, length, col)
	})
}

// forEachDashRun walks the dash pattern along [from, to] and invokes fill
// for every "on" run.
func forEachDashRun(from, to int, dash []int, fill func(start, length int)) {
	pos := from
	i := 0
	on := true
	for pos <= to {
		run := dash[i%len(dash)]
		if run < 1 {
			run = 1
		}
		if on {
			length := run
			if pos+length-1 > to {
				length = to - pos + 1
			}
			fill(pos, length)
		}
		pos += run
		on = !on
		i++
	}
}

func (c *SoftwareCanvas) DrawText(s string, x, y, sizePx int, col color.NRGBA) {
	if c.disposed || s == "" {
		return
	}
	face := fontFace(sizePx)
	drawer := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(s)
}

func (c *SoftwareCanvas) MeasureText(s string, sizePx int) (width, height int) {
	face := fontFace(sizePx)
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
