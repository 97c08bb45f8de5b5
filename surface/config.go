// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// DefaultFrameLatency is the desired maximum number of frames queued for
// presentation.
const DefaultFrameLatency = 3

// DefaultPresentModes is the present mode preference used when none is given.
// FIFO is the fallback when none of the preferred modes is supported.
var DefaultPresentModes = []gputypes.PresentMode{
	gputypes.PresentModeFifoRelaxed,
	gputypes.PresentModeFifo,
}

// Config is the surface configuration applied by a Manager.
type Config struct {
	Usage       gputypes.TextureUsage
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode gputypes.PresentMode
	AlphaMode   gputypes.CompositeAlphaMode

	// DesiredMaximumFrameLatency is a hint; targets that cannot honor it
	// ignore it.
	DesiredMaximumFrameLatency uint32

	// ViewFormats lists the formats views of the surface texture may use.
	// The first entry is used for the per-frame view.
	ViewFormats []gputypes.TextureFormat
}

// Capabilities describes what a surface supports on the selected adapter.
type Capabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []gputypes.PresentMode
	AlphaModes   []gputypes.CompositeAlphaMode
}

// CapabilitiesOf converts wgpu surface capabilities. A nil argument yields
// empty capabilities.
func CapabilitiesOf(caps *wgpu.SurfaceCapabilities) Capabilities {
	if caps == nil {
		return Capabilities{}
	}
	return Capabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

// ChoosePresentMode returns the first entry of prefs that appears in
// supported. An empty prefs uses DefaultPresentModes. FIFO is returned when
// nothing matches, since every surface must support it.
func ChoosePresentMode(prefs, supported []gputypes.PresentMode) gputypes.PresentMode {
	if len(prefs) == 0 {
		prefs = DefaultPresentModes
	}
	for _, p := range prefs {
		if slices.Contains(supported, p) {
			return p
		}
	}
	return gputypes.PresentModeFifo
}

// clampSize converts a window size to a surface extent of at least 1x1.
func clampSize(width, height int) (uint32, uint32) {
	return uint32(max(width, 1)), uint32(max(height, 1))
}
