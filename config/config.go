// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the runner configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
)

var (
	// ErrUnknownPresentMode is returned for a present mode name that is not
	// one of fifo, fifo_relaxed, mailbox or immediate.
	ErrUnknownPresentMode = errors.New("config: unknown present mode")

	// ErrUnknownColor is returned for a clear colour that is neither a CSS
	// colour name nor a #rrggbb value.
	ErrUnknownColor = errors.New("config: unknown color")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the runner configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Surface SurfaceConfig `yaml:"surface"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig sizes the sample window. A zero size means half of the
// primary monitor.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SurfaceConfig controls presentation.
type SurfaceConfig struct {
	PresentModes []string `yaml:"present_modes"`
	FrameLatency int      `yaml:"frame_latency"`
}

// CameraConfig tunes first-person cameras.
type CameraConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
	MoveSpeed   float32 `yaml:"move_speed"`
}

// RenderConfig holds render settings shared by all samples.
type RenderConfig struct {
	ClearColor string `yaml:"clear_color"`
}

// LogConfig sets the process log level (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Surface: SurfaceConfig{
			PresentModes: []string{"fifo_relaxed", "fifo"},
			FrameLatency: 3,
		},
		Camera: CameraConfig{
			Sensitivity: 1,
			MoveSpeed:   1,
		},
		Render: RenderConfig{ClearColor: "black"},
		Log:    LogConfig{Level: "info"},
	}
}

// Validate reports the first invalid value in c.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Surface.FrameLatency < 1 {
		return fmt.Errorf("%w: frame_latency %d", ErrInvalid, c.Surface.FrameLatency)
	}
	if c.Camera.Sensitivity <= 0 || c.Camera.MoveSpeed <= 0 {
		return fmt.Errorf("%w: camera sensitivity and move_speed must be positive", ErrInvalid)
	}
	if _, err := c.PresentModes(); err != nil {
		return err
	}
	if _, err := c.ClearColor(); err != nil {
		return err
	}
	return nil
}

// PresentModes returns the configured present modes in preference order.
func (c *Config) PresentModes() ([]gputypes.PresentMode, error) {
	modes := make([]gputypes.PresentMode, 0, len(c.Surface.PresentModes))
	for _, name := range c.Surface.PresentModes {
		m, err := ParsePresentMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// ClearColor returns the configured clear colour.
func (c *Config) ClearColor() (color.RGBA, error) {
	return ParseColor(c.Render.ClearColor)
}

// ParsePresentMode parses a present mode name. Names are case-insensitive
// and accept '-' in place of '_'.
func ParsePresentMode(name string) (gputypes.PresentMode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "fifo", "vsync":
		return gputypes.PresentModeFifo, nil
	case "fifo_relaxed":
		return gputypes.PresentModeFifoRelaxed, nil
	case "mailbox":
		return gputypes.PresentModeMailbox, nil
	case "immediate":
		return gputypes.PresentModeImmediate, nil
	}
	return gputypes.PresentModeUndefined, fmt.Errorf("%w: %q", ErrUnknownPresentMode, name)
}

// ParseColor parses a CSS colour name or a #rrggbb value. An empty string
// is black.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return colornames.Black, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
