// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package pane

import (
	"log"

	"candlekit/surface"
)

// RenderFunc paints onto a surface during a paint cycle. Callbacks close
// over whatever frame state their owner maintains.
type RenderFunc func(ctx surface.DrawContext)

// Each surface is an explicit two-state machine. The flag is moved to clean
// before renderers run, so an invalidation triggered by a renderer schedules
// the next paint cycle instead of looping within the current one.
type surfaceState int

const (
	surfaceClean surfaceState = iota
	surfaceDirty
)

type paneRenderer struct {
	id int
	f  RenderFunc
}

// PaneWidget composes the two raster surfaces of a chart pane: "main" for
// the chart content and "top" for transient overlays like the crosshair.
// It owns both surfaces and the renderer lists exclusively; a surface is
// repainted during paint() if and only if its dirty flag was set at call
// time.
type PaneWidget struct {
	main surface.Canvas
	top  surface.Canvas

	mainState surfaceState
	topState  surfaceState

	mainRenderers []paneRenderer
	topRenderers  []paneRenderer
	nextId        int

	removeMainResize func()
	removeTopResize  func()
	disposed         bool
}

func NewPaneWidget(main, top surface.Canvas) *PaneWidget {
	p := &PaneWidget{
		main:      main,
		top:       top,
		mainState: surfaceDirty,
		topState:  surfaceDirty,
	}
	p.removeMainResize = main.OnResize(func(surface.Size) {
		p.InvalidateAll()
	})
	p.removeTopResize = top.OnResize(func(surface.Size) {
		p.InvalidateAll()
	})
	return p
}

func (p *PaneWidget) InvalidateMain() {
	p.mainState = surfaceDirty
}

func (p *PaneWidget) InvalidateTop() {
	p.topState = surfaceDirty
}

func (p *PaneWidget) InvalidateAll() {
	p.mainState = surfaceDirty
	p.topState = surfaceDirty
}

// AddMainRenderer appends a renderer to the main surface and returns its
// unregister closure. Registration changes force a repaint in both
// directions: adding and removing mark the surface dirty.
func (p *PaneWidget) AddMainRenderer(f RenderFunc) func() {
	return p.addRenderer(&p.mainRenderers, f, p.InvalidateMain)
}

func (p *PaneWidget) AddTopRenderer(f RenderFunc) func() {
	return p.addRenderer(&p.topRenderers, f, p.InvalidateTop)
}

func (p *PaneWidget) addRenderer(list *[]paneRenderer, f RenderFunc, invalidate func()) func() {
	id := p.nextId
	p.nextId++
	*list = append(*list, paneRenderer{id: id, f: f})
	invalidate()
	removed := false
	return func() {
		if removed || p.disposed {
			return
		}
		removed = true
		for i := range *list {
			if (*list)[i].id == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				break
			}
		}
		invalidate()
	}
}

// PaintMain repaints the main surface if it is dirty and reports whether it
// painted. Renderers run in registration order; later renderers draw on top.
func (p *PaneWidget) PaintMain() bool {
	return p.paintSurface(p.main, &p.mainState, p.mainRenderers)
}

func (p *PaneWidget) PaintTop() bool {
	return p.paintSurface(p.top, &p.topState, p.topRenderers)
}

func (p *PaneWidget) paintSurface(canvas surface.Canvas, state *surfaceState, renderers []paneRenderer) bool {
	if p.disposed || *state == surfaceClean {
		return false
	}
	// Clear the flag before running renderers: a renderer calling
	// invalidate schedules the next cycle rather than re-entering this one.
	*state = surfaceClean
	canvas.Clear()
	ctx := canvas.Context()
	for _, r := range renderers {
		safeRender(r.f, ctx)
	}
	return true
}

// safeRender isolates renderer failures: one panicking indicator renderer
// must not blank the whole pane.
func safeRender(f RenderFunc, ctx surface.DrawContext) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("renderer panic: %v", r)
		}
	}()
	f(ctx)
}

// Paint runs one paint cycle: main first, then top, each independently
// gated by its dirty flag. Returns whether either surface painted.
func (p *PaneWidget) Paint() bool {
	paintedMain := p.PaintMain()
	paintedTop := p.PaintTop()
	return paintedMain || paintedTop
}

// Dispose clears the renderer lists and frees both surfaces. Safe to call
// multiple times and from any state.
func (p *PaneWidget) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.removeMainResize()
	p.removeTopResize()
	p.mainRenderers = nil
	p.topRenderers = nil
	p.main.Dispose()
	p.top.Dispose()
}
