// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camera implements a first-person fly camera for wgpu samples.
//
// The camera works in a left-handed coordinate system: +X is right, +Y is up
// and +Z points into the screen. Orientation is stored as yaw and pitch in
// degrees; the front, right and up basis vectors are derived from them each
// time the view matrix is computed.
//
// Typical use inside a sample:
//
//	cam := camera.New(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 1},
//	    camera.WithMonitorSize(1920, 1080))
//
//	// per frame
//	view := cam.View(dt)
//	proj := camera.PerspectiveLH(mgl32.DegToRad(45), aspect, 0.1, 100)
//	mvp := proj.Mul4(view)
//
// Input is fed through ProcessKeyboard, ProcessMouseButton and
// ProcessMouseMotion. Movement flags persist until the matching key is
// released, so integration happens once per frame in View.
package camera
