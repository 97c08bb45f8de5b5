// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func surfaceHandles(w *glfw.Window) (display, window uintptr, err error) {
	return 0, uintptr(unsafe.Pointer(w.GetWin32Window())), nil
}
