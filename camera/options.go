// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

// Reference resolution used to normalize mouse look speed.
const (
	ReferenceWidth  = 1920
	ReferenceHeight = 1080
)

// Option configures a Camera during creation.
type Option func(*options)

type options struct {
	sensitivity float32
	moveSpeed   float32
	monitorW    int
	monitorH    int
}

func defaultOptions() options {
	return options{
		sensitivity: 1,
		moveSpeed:   1,
	}
}

// WithSensitivity sets the mouse look sensitivity in degrees per pixel
// at the reference resolution.
func WithSensitivity(s float32) Option {
	return func(o *options) {
		o.sensitivity = s
	}
}

// WithMoveSpeed sets the movement speed in world units per second.
func WithMoveSpeed(speed float32) Option {
	return func(o *options) {
		o.moveSpeed = speed
	}
}

// WithMonitorSize sets the resolution of the monitor the window lives on.
// It is used once, at construction, to derive the screen coefficient.
// Zero or negative sizes are treated as unknown.
func WithMonitorSize(width, height int) Option {
	return func(o *options) {
		o.monitorW = width
		o.monitorH = height
	}
}

// ScreenCoefficient returns the look-speed multiplier for a monitor of the
// given resolution. The smaller of the horizontal and vertical scale ratios
// against the reference resolution is inverted, so larger monitors (which
// report larger pixel deltas for the same hand movement) get a smaller
// multiplier. Unknown sizes yield 1.
func ScreenCoefficient(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	sx := float32(width) / ReferenceWidth
	sy := float32(height) / ReferenceHeight
	return 1 / min(sx, sy)
}
