// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package triangle registers the "triangle" sample: a vertex-coloured
// triangle drawn from a vertex buffer.
package triangle

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples"
	"github.com/gogpu/samples/demos"
	"github.com/gogpu/samples/internal/shader"
	"github.com/gogpu/wgpu"
)

//go:embed shaders/triangle.wgsl
var shaderSource string

// Name is the registry name of the sample.
const Name = "triangle"

func init() {
	samples.Register(samples.Definition{
		Name:        Name,
		Title:       "Triangle",
		Description: "A vertex-coloured triangle.",
		Shaders:     map[string]string{"triangle.wgsl": shaderSource},
		New:         New,
	})
}

// Triangle draws Vertices every frame.
type Triangle struct {
	shader   *wgpu.ShaderModule
	layout   *wgpu.PipelineLayout
	pipeline *wgpu.RenderPipeline
	vertices *wgpu.Buffer
	clear    wgpu.Color
}

// New creates the triangle sample.
func New(ctx *samples.GraphicsContext) (samples.Sample, error) {
	t := &Triangle{clear: demos.ClearValue(ctx.Settings().ClearColor)}
	if err := t.init(ctx); err != nil {
		_ = t.Close()
		return nil, err
	}
	return t, nil
}

func (t *Triangle) init(ctx *samples.GraphicsContext) error {
	var err error
	device := ctx.Device()

	t.shader, err = shader.NewModule(device, "triangle_shader", shaderSource, "vs_main", "fs_main")
	if err != nil {
		return err
	}

	t.layout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{Label: "triangle_pipe_layout"})
	if err != nil {
		return fmt.Errorf("create triangle pipeline layout: %w", err)
	}

	t.pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "triangle_pipeline",
		Layout: t.layout,
		Vertex: wgpu.VertexState{
			Module:     t.shader,
			EntryPoint: "vs_main",
			Buffers:    VertexLayout(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     t.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{Format: ctx.Format(), WriteMask: gputypes.ColorWriteMaskAll},
			},
		},
		Primitive:   Primitive(),
		Multisample: gputypes.DefaultMultisampleState(),
	})
	if err != nil {
		return fmt.Errorf("create triangle pipeline: %w", err)
	}

	t.vertices, err = demos.NewBuffer(ctx, "triangle_vertices", wgpu.BufferUsageVertex, EncodeVertices(Vertices))
	return err
}

// Render implements samples.Sample.
func (t *Triangle) Render(ctx *samples.GraphicsContext, view *wgpu.TextureView, _ time.Duration) error {
	return demos.DrawPass(ctx, view, t.clear, func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(t.pipeline)
		pass.SetVertexBuffer(0, t.vertices, 0)
		pass.Draw(uint32(len(Vertices)), 1, 0, 0)
	})
}

// Close releases the GPU resources in reverse creation order.
func (t *Triangle) Close() error {
	if t.vertices != nil {
		t.vertices.Release()
		t.vertices = nil
	}
	if t.pipeline != nil {
		t.pipeline.Release()
		t.pipeline = nil
	}
	if t.layout != nil {
		t.layout.Release()
		t.layout = nil
	}
	if t.shader != nil {
		t.shader.Release()
		t.shader = nil
	}
	return nil
}
