// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gpucontext"
)

// Pitch limits in degrees. Keeping pitch away from ±90 keeps the front
// vector from becoming parallel to the world up axis.
const (
	MinPitch = -89
	MaxPitch = 89
)

var (
	worldUp = mgl32.Vec3{0, 1, 0}
	axisX   = mgl32.Vec3{1, 0, 0}
	axisZ   = mgl32.Vec3{0, 0, 1}
)

// Camera is a first-person camera controlled by WASD movement and
// mouse look while the primary button is held.
//
// Camera is NOT safe for concurrent use. It is owned by a single sample and
// driven from the event loop thread.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	yaw   float32 // degrees
	pitch float32 // degrees

	sensitivity       float32
	moveSpeed         float32
	screenCoefficient float32

	moveForward  bool
	moveBackward bool
	moveLeft     bool
	moveRight    bool
	lookEnabled  bool
}

// New creates a camera at position looking along front. front need not be
// normalized but must be non-zero.
func New(position, front mgl32.Vec3, opts ...Option) *Camera {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	front = front.Normalize()
	c := &Camera{
		position:          position,
		sensitivity:       o.sensitivity,
		moveSpeed:         o.moveSpeed,
		screenCoefficient: ScreenCoefficient(o.monitorW, o.monitorH),
	}

	// Rx(pitch) maps +Z to (0, -sin p, cos p), so the pitch that
	// reproduces front has the opposite sign of front.y.
	c.SetYaw(radToDeg(math.Atan2(float64(front.X()), float64(front.Z()))))
	c.SetPitch(-radToDeg(math.Asin(float64(mgl32.Clamp(front.Y(), -1, 1)))))
	c.updateVectors()
	return c
}

// View recomputes the orientation basis, integrates movement for the elapsed
// frame time dt and returns the left-handed view matrix.
//
// Diagonal movement is the sum of the forward and strafe vectors and is not
// re-normalized.
func (c *Camera) View(dt time.Duration) mgl32.Mat4 {
	c.updateVectors()

	step := c.moveSpeed * float32(dt.Seconds())
	if c.moveForward {
		c.position = c.position.Add(c.front.Mul(step))
	}
	if c.moveBackward {
		c.position = c.position.Sub(c.front.Mul(step))
	}
	if c.moveRight {
		c.position = c.position.Add(c.right.Mul(step))
	}
	if c.moveLeft {
		c.position = c.position.Sub(c.right.Mul(step))
	}

	return LookAtLH(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) updateVectors() {
	rotY := mgl32.QuatRotate(mgl32.DegToRad(c.yaw), worldUp)
	rotX := mgl32.QuatRotate(mgl32.DegToRad(c.pitch), axisX)

	c.front = rotY.Mul(rotX).Rotate(axisZ).Normalize()
	c.right = worldUp.Cross(c.front).Normalize()
	c.up = c.front.Cross(c.right).Normalize()
}

// ProcessKeyboard updates the movement flags. W, S, A and D map to forward,
// backward, left and right; other keys are ignored.
func (c *Camera) ProcessKeyboard(key gpucontext.Key, pressed bool) {
	switch key {
	case gpucontext.KeyW:
		c.moveForward = pressed
	case gpucontext.KeyS:
		c.moveBackward = pressed
	case gpucontext.KeyA:
		c.moveLeft = pressed
	case gpucontext.KeyD:
		c.moveRight = pressed
	}
}

// ProcessMouseButton enables mouse look while the left button is held.
func (c *Camera) ProcessMouseButton(button gpucontext.MouseButton, pressed bool) {
	if button == gpucontext.MouseButtonLeft {
		c.lookEnabled = pressed
	}
}

// ProcessMouseMotion applies a relative pointer delta to yaw and pitch.
// Deltas are ignored unless look is enabled.
func (c *Camera) ProcessMouseMotion(dx, dy float64) {
	if !c.lookEnabled {
		return
	}
	scale := float64(c.sensitivity * c.screenCoefficient)
	c.SetYaw(c.yaw + float32(dx*scale))
	c.SetPitch(c.pitch + float32(dy*scale))
}

// SetYaw sets the yaw in degrees, wrapped into (-360, 360). The remainder
// keeps the sign of v, so -390 becomes -30.
func (c *Camera) SetYaw(v float32) {
	c.yaw = float32(math.Mod(float64(v), 360))
}

// Yaw returns the yaw in degrees.
func (c *Camera) Yaw() float32 { return c.yaw }

// SetPitch sets the pitch in degrees, clamped to [MinPitch, MaxPitch].
func (c *Camera) SetPitch(v float32) {
	c.pitch = mgl32.Clamp(v, MinPitch, MaxPitch)
}

// Pitch returns the pitch in degrees.
func (c *Camera) Pitch() float32 { return c.pitch }

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// SetPosition moves the camera to p.
func (c *Camera) SetPosition(p mgl32.Vec3) { c.position = p }

// AddPosition offsets the camera position by d.
func (c *Camera) AddPosition(d mgl32.Vec3) { c.position = c.position.Add(d) }

// Front returns the unit view direction as of the last View call.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector as of the last View call.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit up vector as of the last View call.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

func (c *Camera) Sensitivity() float32     { return c.sensitivity }
func (c *Camera) SetSensitivity(s float32) { c.sensitivity = s }
func (c *Camera) MoveSpeed() float32       { return c.moveSpeed }
func (c *Camera) SetMoveSpeed(s float32)   { c.moveSpeed = s }

// ScreenCoefficient returns the look-speed multiplier derived at creation.
func (c *Camera) ScreenCoefficient() float32 { return c.screenCoefficient }

// LookEnabled reports whether mouse look is currently active.
func (c *Camera) LookEnabled() bool { return c.lookEnabled }

func radToDeg(r float64) float32 {
	return float32(r * 180 / math.Pi)
}
