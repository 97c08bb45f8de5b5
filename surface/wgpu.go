// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/wgpu"
)

// wgpuTarget adapts a *wgpu.Surface to Target.
type wgpuTarget struct {
	surface *wgpu.Surface
	device  *wgpu.Device
}

// NewWGPUTarget returns a Target backed by a wgpu surface configured
// against device.
//
// wgpu has no frame latency or view format settings; those fields of Config
// are ignored and the per-frame view always uses Config.Format.
func NewWGPUTarget(s *wgpu.Surface, device *wgpu.Device) Target {
	return &wgpuTarget{surface: s, device: device}
}

func (t *wgpuTarget) Configure(cfg *Config) error {
	return t.surface.Configure(t.device, &wgpu.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       cfg.Usage,
		PresentMode: cfg.PresentMode,
		AlphaMode:   cfg.AlphaMode,
	})
}

func (t *wgpuTarget) Acquire() (Frame, bool, error) {
	tex, suboptimal, err := t.surface.GetCurrentTexture()
	if err != nil {
		return nil, false, err
	}
	return &wgpuFrame{surface: t.surface, texture: tex}, suboptimal, nil
}

type wgpuFrame struct {
	surface *wgpu.Surface
	texture *wgpu.SurfaceTexture
}

func (f *wgpuFrame) CreateView(desc *wgpu.TextureViewDescriptor) (*wgpu.TextureView, error) {
	return f.texture.CreateView(desc)
}

func (f *wgpuFrame) Present() error {
	return f.surface.Present(f.texture)
}

func (f *wgpuFrame) Discard() {
	f.surface.DiscardTexture()
}
