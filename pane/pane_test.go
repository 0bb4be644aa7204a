// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package pane

import (
	"testing"

	"candlekit/surface"

	"github.com/stretchr/testify/assert"
)

func newTestPane() (*PaneWidget, *surface.SoftwareCanvas, *surface.SoftwareCanvas) {
	main := surface.NewSoftwareCanvas(100, 100, 1)
	top := surface.NewSoftwareCanvas(100, 100, 1)
	return NewPaneWidget(main, top), main, top
}

func TestPaintMainGatedByDirtyFlag(t *testing.T) {
	p, _, _ := newTestPane()

	// Initially dirty.
	assert.True(t, p.PaintMain())
	// Clean after painting.
	assert.False(t, p.PaintMain())

	p.InvalidateMain()
	assert.True(t, p.PaintMain())
	assert.False(t, p.PaintMain())
}

func TestPaintSurfacesAreIndependent(t *testing.T) {
	p, _, _ := newTestPane()
	p.Paint()

	p.InvalidateTop()

	assert.False(t, p.PaintMain())
	assert.True(t, p.PaintTop())
}

func TestPaintReturnsWhetherEitherPainted(t *testing.T) {
	p, _, _ := newTestPane()

	assert.True(t, p.Paint())
	assert.False(t, p.Paint())

	p.InvalidateMain()
	assert.True(t, p.Paint())
}

func TestRenderersRunInRegistrationOrder(t *testing.T) {
	p, _, _ := newTestPane()
	var order []int
	p.AddMainRenderer(func(surface.DrawContext) { order = append(order, 1) })
	p.AddMainRenderer(func(surface.DrawContext) { order = append(order, 2) })
	p.AddMainRenderer(func(surface.DrawContext) { order = append(order, 3) })

	p.PaintMain()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMainPaintsBeforeTop(t *testing.T) {
	p, _, _ := newTestPane()
	var order []string
	p.AddMainRenderer(func(surface.DrawContext) { order = append(order, "main") })
	p.AddTopRenderer(func(surface.DrawContext) { order = append(order, "top") })

	p.Paint()

	assert.Equal(t, []string{"main", "top"}, order)
}

func TestRegistrationMarksDirty(t *testing.T) {
	p, _, _ := newTestPane()
	p.Paint()

	remove := p.AddMainRenderer(func(surface.DrawContext) {})
	assert.True(t, p.PaintMain())

	remove()
	assert.True(t, p.PaintMain())

	// Removing twice is a no-op.
	remove()
	assert.False(t, p.PaintMain())
}

func TestRendererInvalidateSchedulesNextCycleOnly(t *testing.T) {
	p, _, _ := newTestPane()
	paints := 0
	p.AddMainRenderer(func(surface.DrawContext) {
		paints++
		if paints < 5 {
			p.InvalidateMain()
		}
	})

	// A renderer-triggered invalidation must not loop within one call.
	assert.True(t, p.PaintMain())
	assert.Equal(t, 1, paints)

	// But it schedules the next cycle.
	assert.True(t, p.PaintMain())
	assert.Equal(t, 2, paints)
}

func TestPanickingRendererIsIsolated(t *testing.T) {
	p, _, _ := newTestPane()
	var ranAfter bool
	p.AddMainRenderer(func(surface.DrawContext) { panic("bad indicator") })
	p.AddMainRenderer(func(surface.DrawContext) { ranAfter = true })

	assert.True(t, p.PaintMain())
	assert.True(t, ranAfter)
}

func TestResizeInvalidatesBothSurfaces(t *testing.T) {
	p, main, _ := newTestPane()
	p.Paint()

	main.Resize(200, 100, 1)

	assert.True(t, p.PaintMain())
	assert.True(t, p.PaintTop())
}

func TestDisposeIsIdempotent(t *testing.T) {
	p, _, _ := newTestPane()
	p.AddMainRenderer(func(surface.DrawContext) {})

	p.Dispose()
	p.Dispose()

	assert.False(t, p.Paint())
}
