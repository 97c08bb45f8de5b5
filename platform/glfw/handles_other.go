// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux && !freebsd && !netbsd && !openbsd && !windows

package glfw

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/samples"
)

// TODO: darwin needs a CAMetalLayer-backed NSView; GLFW only exposes the NSWindow.
func surfaceHandles(*glfw.Window) (display, window uintptr, err error) {
	return 0, 0, fmt.Errorf("%w: %s", samples.ErrUnsupportedPlatform, runtime.GOOS)
}
