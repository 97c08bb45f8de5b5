// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demos holds the GPU helpers shared by the bundled samples. Each
// sample lives in its own sub-package and registers itself with the samples
// registry when imported.
package demos

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples"
	"github.com/gogpu/wgpu"
)

// ClearValue converts c to a render pass clear value.
func ClearValue(c color.RGBA) wgpu.Color {
	return wgpu.Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
		A: float64(c.A) / 0xff,
	}
}

// PutFloats writes vals to buf as little-endian float32s and returns the
// number of bytes written.
func PutFloats(buf []byte, vals ...float32) int {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return len(vals) * 4
}

// Floats encodes vals as little-endian float32s.
func Floats(vals ...float32) []byte {
	buf := make([]byte, len(vals)*4)
	PutFloats(buf, vals...)
	return buf
}

// NewBuffer creates a buffer with the given usage and uploads data into it.
// CopyDst is always added to usage.
func NewBuffer(ctx *samples.GraphicsContext, label string, usage wgpu.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	buf, err := ctx.Device().CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)+3) &^ 3,
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := ctx.Queue().WriteBuffer(buf, 0, data); err != nil {
		buf.Release()
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	return buf, nil
}

// DrawPass records a single render pass that clears view to clear, lets draw
// record its commands and submits the result.
func DrawPass(ctx *samples.GraphicsContext, view *wgpu.TextureView, clear wgpu.Color, draw func(pass *wgpu.RenderPassEncoder)) error {
	enc, err := ctx.Device().CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "frame"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	pass, err := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "main",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: clear,
			},
		},
	})
	if err != nil {
		enc.DiscardEncoding()
		return fmt.Errorf("begin render pass: %w", err)
	}
	draw(pass)
	if err := pass.End(); err != nil {
		enc.DiscardEncoding()
		return fmt.Errorf("end render pass: %w", err)
	}
	cmd, err := enc.Finish()
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	return ctx.Submit(cmd)
}
