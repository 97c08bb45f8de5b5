// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfw implements samples.Platform on top of GLFW.
//
// GLFW must be driven from the main OS thread, so this package locks the
// calling goroutine to its thread in init. Call Run from main.
//
//	p, err := glfw.New()
//	if err != nil {
//	    return err
//	}
//	return samples.NewApp(p, def).Run()
//
// Only one window is supported. Surface handles are available for X11,
// Wayland (build with -tags wayland) and Win32.
package glfw
