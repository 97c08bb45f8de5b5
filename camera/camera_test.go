// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gpucontext"
)

const eps = 1e-5

// near reports whether a and b are at most tol apart.
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

func TestNewReproducesFront(t *testing.T) {
	tests := []struct {
		name  string
		front mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, 1}},
		{"diagonal", mgl32.Vec3{1, 0, 1}},
		{"behind", mgl32.Vec3{0, 0, -1}},
		{"looking up", mgl32.Vec3{0, 0.5, 1}},
		{"looking down", mgl32.Vec3{-0.3, -0.4, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(mgl32.Vec3{}, tt.front)
			want := tt.front.Normalize()
			if !near(c.Front(), want, 1e-4) {
				t.Errorf("Front() = %v, want %v", c.Front(), want)
			}
			c.View(0)
			if !near(c.Front(), want, 1e-4) {
				t.Errorf("Front() after View = %v, want %v", c.Front(), want)
			}
		})
	}
}

func TestSetPitchClamps(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{45, 45},
		{89, 89},
		{120, 89},
		{-89, -89},
		{-1000, -89},
	}

	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	for _, tt := range tests {
		c.SetPitch(tt.in)
		if got := c.Pitch(); got != tt.want {
			t.Errorf("SetPitch(%v): Pitch() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetYawWraps(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{390, 30},
		{725, 5},
		{-30, -30},
		{-390, -30},
		{-720, 0},
	}

	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	for _, tt := range tests {
		c.SetYaw(tt.in)
		if got := c.Yaw(); math.Abs(float64(got-tt.want)) > eps {
			t.Errorf("SetYaw(%v): Yaw() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasisOrthonormal(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	for _, yaw := range []float32{0, 33, 90, 180, -135, 359} {
		for _, pitch := range []float32{-89, -45, 0, 10, 89} {
			c.SetYaw(yaw)
			c.SetPitch(pitch)
			c.View(0)

			f, r, u := c.Front(), c.Right(), c.Up()
			for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
				if l := v.Len(); math.Abs(float64(l-1)) > 1e-4 {
					t.Errorf("yaw=%v pitch=%v: |%s| = %v, want 1", yaw, pitch, name, l)
				}
			}
			if d := f.Dot(r); math.Abs(float64(d)) > 1e-4 {
				t.Errorf("yaw=%v pitch=%v: front·right = %v, want 0", yaw, pitch, d)
			}
			if d := f.Dot(u); math.Abs(float64(d)) > 1e-4 {
				t.Errorf("yaw=%v pitch=%v: front·up = %v, want 0", yaw, pitch, d)
			}
			if d := r.Dot(u); math.Abs(float64(d)) > 1e-4 {
				t.Errorf("yaw=%v pitch=%v: right·up = %v, want 0", yaw, pitch, d)
			}
		}
	}
}

func TestViewMovesForward(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, WithMoveSpeed(1))
	c.ProcessKeyboard(gpucontext.KeyW, true)
	c.View(500 * time.Millisecond)

	want := mgl32.Vec3{0, 0, 0.5}
	if !near(c.Position(), want, eps) {
		t.Errorf("Position() = %v, want %v", c.Position(), want)
	}

	c.ProcessKeyboard(gpucontext.KeyW, false)
	c.View(time.Second)
	if !near(c.Position(), want, eps) {
		t.Errorf("Position() after release = %v, want %v", c.Position(), want)
	}
}

func TestViewStrafeAndDiagonal(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, WithMoveSpeed(2))
	c.ProcessKeyboard(gpucontext.KeyD, true)
	c.View(time.Second)
	if want := (mgl32.Vec3{2, 0, 0}); !near(c.Position(), want, eps) {
		t.Errorf("strafe right: Position() = %v, want %v", c.Position(), want)
	}

	c.SetPosition(mgl32.Vec3{})
	c.ProcessKeyboard(gpucontext.KeyW, true)
	c.View(time.Second)
	// Diagonal is not re-normalized.
	if want := (mgl32.Vec3{2, 0, 2}); !near(c.Position(), want, eps) {
		t.Errorf("diagonal: Position() = %v, want %v", c.Position(), want)
	}

	c.SetPosition(mgl32.Vec3{})
	c.ProcessKeyboard(gpucontext.KeyS, true)
	c.ProcessKeyboard(gpucontext.KeyA, true)
	c.View(time.Second)
	// Opposite keys cancel out.
	if want := (mgl32.Vec3{}); !near(c.Position(), want, eps) {
		t.Errorf("all keys: Position() = %v, want %v", c.Position(), want)
	}
}

func TestProcessKeyboardIgnoresOtherKeys(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1})
	c.ProcessKeyboard(gpucontext.KeySpace, true)
	c.ProcessKeyboard(gpucontext.KeyEscape, true)
	c.View(time.Second)
	if want := (mgl32.Vec3{1, 2, 3}); c.Position() != want {
		t.Errorf("Position() = %v, want %v", c.Position(), want)
	}
}

func TestMouseMotionRequiresLook(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, WithSensitivity(0.5))

	c.ProcessMouseMotion(10, 10)
	if c.Yaw() != 0 || c.Pitch() != 0 {
		t.Fatalf("motion without look changed yaw/pitch to %v/%v", c.Yaw(), c.Pitch())
	}

	c.ProcessMouseButton(gpucontext.MouseButtonRight, true)
	c.ProcessMouseMotion(10, 10)
	if c.LookEnabled() {
		t.Error("right button enabled look")
	}

	c.ProcessMouseButton(gpucontext.MouseButtonLeft, true)
	c.ProcessMouseMotion(10, -4)
	if got := c.Yaw(); math.Abs(float64(got-5)) > eps {
		t.Errorf("Yaw() = %v, want 5", got)
	}
	if got := c.Pitch(); math.Abs(float64(got+2)) > eps {
		t.Errorf("Pitch() = %v, want -2", got)
	}

	c.ProcessMouseMotion(0, 1000)
	if got := c.Pitch(); got != MaxPitch {
		t.Errorf("Pitch() = %v, want %v", got, MaxPitch)
	}

	c.ProcessMouseButton(gpucontext.MouseButtonLeft, false)
	c.ProcessMouseMotion(100, 0)
	if got := c.Yaw(); math.Abs(float64(got-5)) > eps {
		t.Errorf("Yaw() after release = %v, want 5", got)
	}
}

func TestScreenCoefficient(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{1920, 1080, 1},
		{3840, 2160, 0.5},
		{960, 540, 2},
		{2560, 1080, 1},
		{0, 0, 1},
		{-1, 1080, 1},
	}
	for _, tt := range tests {
		if got := ScreenCoefficient(tt.w, tt.h); math.Abs(float64(got-tt.want)) > eps {
			t.Errorf("ScreenCoefficient(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}

	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, WithMonitorSize(3840, 2160))
	c.ProcessMouseButton(gpucontext.MouseButtonLeft, true)
	c.ProcessMouseMotion(20, 0)
	if got := c.Yaw(); math.Abs(float64(got-10)) > eps {
		t.Errorf("Yaw() on 4K monitor = %v, want 10", got)
	}
}

func TestAddPosition(t *testing.T) {
	c := New(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 1})
	c.AddPosition(mgl32.Vec3{1, -1, 2})
	if want := (mgl32.Vec3{2, 0, 3}); c.Position() != want {
		t.Errorf("Position() = %v, want %v", c.Position(), want)
	}
}
