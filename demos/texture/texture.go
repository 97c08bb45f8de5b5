// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture registers the "texture" sample: a procedurally generated
// checkerboard uploaded to a texture and drawn on a quad.
package texture

import (
	_ "embed"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples"
	"github.com/gogpu/samples/demos"
	"github.com/gogpu/samples/internal/shader"
	"github.com/gogpu/wgpu"
	"golang.org/x/image/colornames"
)

//go:embed shaders/texture.wgsl
var shaderSource string

// Name is the registry name of the sample.
const Name = "texture"

// Checkerboard parameters.
const (
	Cells       = 8
	TextureSize = 256
)

// quadStride is the byte size of one quad vertex.
//
//	position (vec2<f32>) = 8 bytes (location 0)
//	uv       (vec2<f32>) = 8 bytes (location 1)
const quadStride = 16

// quad is two triangles covering the central 80% of the viewport, as
// x, y, u, v per vertex. v grows downwards.
var quad = []float32{
	-0.8, 0.8, 0, 0,
	0.8, 0.8, 1, 0,
	-0.8, -0.8, 0, 1,

	-0.8, -0.8, 0, 1,
	0.8, 0.8, 1, 0,
	0.8, -0.8, 1, 1,
}

func init() {
	samples.Register(samples.Definition{
		Name:        Name,
		Title:       "Texture",
		Description: "A procedurally generated checkerboard texture on a quad.",
		Shaders:     map[string]string{"texture.wgsl": shaderSource},
		New:         New,
	})
}

// Texture draws the checkerboard quad.
type Texture struct {
	clear wgpu.Color

	shader     *wgpu.ShaderModule
	bindLayout *wgpu.BindGroupLayout
	pipeLayout *wgpu.PipelineLayout
	pipeline   *wgpu.RenderPipeline
	vertices   *wgpu.Buffer
	texture    *wgpu.Texture
	view       *wgpu.TextureView
	sampler    *wgpu.Sampler
	bindGroup  *wgpu.BindGroup
}

// New creates the texture sample.
func New(ctx *samples.GraphicsContext) (samples.Sample, error) {
	t := &Texture{clear: demos.ClearValue(ctx.Settings().ClearColor)}
	if err := t.init(ctx); err != nil {
		_ = t.Close()
		return nil, err
	}
	return t, nil
}

func (t *Texture) init(ctx *samples.GraphicsContext) error {
	var err error
	device := ctx.Device()

	t.shader, err = shader.NewModule(device, "texture_shader", shaderSource, "vs_main", "fs_main")
	if err != nil {
		return err
	}

	img := Upscale(Checker(Cells, colornames.White, colornames.Steelblue), TextureSize)
	if err := t.upload(ctx, img); err != nil {
		return err
	}

	t.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:        "checker_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
		LodMaxClamp:  32,
	})
	if err != nil {
		return fmt.Errorf("create checker sampler: %w", err)
	}

	t.bindLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "texture_bind_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create texture bind layout: %w", err)
	}

	t.bindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "texture_bind_group",
		Layout: t.bindLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: t.view},
			{Binding: 1, Sampler: t.sampler},
		},
	})
	if err != nil {
		return fmt.Errorf("create texture bind group: %w", err)
	}

	t.pipeLayout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "texture_pipe_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{t.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create texture pipeline layout: %w", err)
	}

	t.pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "texture_pipeline",
		Layout: t.pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     t.shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: quadStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
						{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     t.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{Format: ctx.Format(), WriteMask: gputypes.ColorWriteMaskAll},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.DefaultMultisampleState(),
	})
	if err != nil {
		return fmt.Errorf("create texture pipeline: %w", err)
	}

	t.vertices, err = demos.NewBuffer(ctx, "quad_vertices", wgpu.BufferUsageVertex, demos.Floats(quad...))
	return err
}

// upload creates the checker texture and its view from img.
func (t *Texture) upload(ctx *samples.GraphicsContext, img *image.RGBA) error {
	var err error
	size := wgpu.Extent3D{
		Width:              uint32(img.Rect.Dx()),
		Height:             uint32(img.Rect.Dy()),
		DepthOrArrayLayers: 1,
	}

	t.texture, err = ctx.Device().CreateTexture(&wgpu.TextureDescriptor{
		Label:         "checker_texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create checker texture: %w", err)
	}

	err = ctx.Queue().WriteTexture(
		&wgpu.ImageCopyTexture{Texture: t.texture, Aspect: gputypes.TextureAspectAll},
		img.Pix,
		&wgpu.ImageDataLayout{BytesPerRow: uint32(img.Stride), RowsPerImage: size.Height},
		&size,
	)
	if err != nil {
		return fmt.Errorf("write checker texture: %w", err)
	}

	t.view, err = ctx.Device().CreateTextureView(t.texture, &wgpu.TextureViewDescriptor{
		Label:           "checker_view",
		Format:          gputypes.TextureFormatRGBA8Unorm,
		Dimension:       gputypes.TextureViewDimension2D,
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return fmt.Errorf("create checker view: %w", err)
	}
	return nil
}

// Render implements samples.Sample.
func (t *Texture) Render(ctx *samples.GraphicsContext, view *wgpu.TextureView, _ time.Duration) error {
	return demos.DrawPass(ctx, view, t.clear, func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(t.pipeline)
		pass.SetBindGroup(0, t.bindGroup, nil)
		pass.SetVertexBuffer(0, t.vertices, 0)
		pass.Draw(uint32(len(quad)/4), 1, 0, 0)
	})
}

// Close releases the GPU resources in reverse creation order.
func (t *Texture) Close() error {
	if t.vertices != nil {
		t.vertices.Release()
	}
	if t.pipeline != nil {
		t.pipeline.Release()
	}
	if t.pipeLayout != nil {
		t.pipeLayout.Release()
	}
	if t.bindGroup != nil {
		t.bindGroup.Release()
	}
	if t.bindLayout != nil {
		t.bindLayout.Release()
	}
	if t.sampler != nil {
		t.sampler.Release()
	}
	if t.view != nil {
		t.view.Release()
	}
	if t.texture != nil {
		t.texture.Release()
	}
	if t.shader != nil {
		t.shader.Release()
	}
	*t = Texture{}
	return nil
}
