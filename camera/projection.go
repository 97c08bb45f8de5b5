// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LookAtLH returns a left-handed view matrix for an eye at eye looking at
// target. up must not be parallel to target-eye.
//
// mgl32.LookAtV is right-handed, hence the hand-built matrix.
func LookAtLH(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	f := target.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	// Column-major.
	return mgl32.Mat4{
		s.X(), u.X(), f.X(), 0,
		s.Y(), u.Y(), f.Y(), 0,
		s.Z(), u.Z(), f.Z(), 0,
		-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}
}

// PerspectiveLH returns a left-handed perspective projection mapping view
// depth [near, far] to clip depth [0, 1], the WebGPU convention. fovY is in
// radians.
func PerspectiveLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := float32(1 / math.Tan(float64(fovY)/2))
	w := h / aspect
	r := far / (far - near)

	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}
