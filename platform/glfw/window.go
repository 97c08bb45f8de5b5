// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfw

import "github.com/go-gl/glfw/v3.3/glfw"

type window struct {
	w       *glfw.Window
	redraw  bool
	tracker motionTracker
}

func (w *window) FramebufferSize() (width, height int) {
	return w.w.GetFramebufferSize()
}

func (w *window) SurfaceHandles() (display, win uintptr, err error) {
	return surfaceHandles(w.w)
}

func (w *window) RequestRedraw() {
	w.redraw = true
}

func (w *window) SetTitle(title string) {
	w.w.SetTitle(title)
}

// motionTracker turns absolute cursor positions into relative motion.
type motionTracker struct {
	x, y  float64
	valid bool
}

// move records the position (x, y) and returns the motion since the last
// position. The first position after a reset produces no motion.
func (t *motionTracker) move(x, y float64) (dx, dy float64, ok bool) {
	if t.valid {
		dx, dy = x-t.x, y-t.y
		ok = dx != 0 || dy != 0
	}
	t.x, t.y, t.valid = x, y, true
	return dx, dy, ok
}

func (t *motionTracker) reset() {
	t.valid = false
}
