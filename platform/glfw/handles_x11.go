// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || freebsd || netbsd || openbsd) && !wayland

package glfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func surfaceHandles(w *glfw.Window) (display, window uintptr, err error) {
	return uintptr(unsafe.Pointer(glfw.GetX11Display())), uintptr(w.GetX11Window()), nil
}
