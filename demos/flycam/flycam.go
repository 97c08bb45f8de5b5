// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package flycam registers the "flycam" sample: the triangle in 3D, viewed
// through a first-person camera.
//
// Hold the left mouse button and move the mouse to look around; W, A, S and
// D move the camera.
package flycam

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples"
	"github.com/gogpu/samples/camera"
	"github.com/gogpu/samples/demos"
	"github.com/gogpu/samples/demos/triangle"
	"github.com/gogpu/samples/internal/shader"
	"github.com/gogpu/wgpu"
)

//go:embed shaders/flycam.wgsl
var shaderSource string

// Name is the registry name of the sample.
const Name = "flycam"

// Projection parameters.
const (
	FieldOfView = 45 // degrees
	Near        = 0.1
	Far         = 100
)

// SpinRate is the model rotation speed in radians per second.
const SpinRate = 0.5

// uniformSize is one mat4x4<f32>.
const uniformSize = 64

var (
	startPosition = mgl32.Vec3{0, 0, -2}
	startFront    = mgl32.Vec3{0, 0, 1}
)

func init() {
	samples.Register(samples.Definition{
		Name:        Name,
		Title:       "Fly Camera",
		Description: "The triangle in 3D with a WASD + mouse camera.",
		Shaders:     map[string]string{"flycam.wgsl": shaderSource},
		New:         New,
	})
}

// Flycam renders a spinning triangle through a camera.Camera.
type Flycam struct {
	cam   *camera.Camera
	angle float32
	clear wgpu.Color

	shader     *wgpu.ShaderModule
	bindLayout *wgpu.BindGroupLayout
	pipeLayout *wgpu.PipelineLayout
	pipeline   *wgpu.RenderPipeline
	vertices   *wgpu.Buffer
	uniforms   *wgpu.Buffer
	bindGroup  *wgpu.BindGroup

	staging [uniformSize]byte
}

// New creates the flycam sample.
func New(ctx *samples.GraphicsContext) (samples.Sample, error) {
	s := ctx.Settings()
	opts := []camera.Option{
		camera.WithSensitivity(s.CameraSensitivity),
		camera.WithMoveSpeed(s.CameraMoveSpeed),
	}
	if m, ok := ctx.Monitor(); ok {
		opts = append(opts, camera.WithMonitorSize(m.Width, m.Height))
	}

	f := &Flycam{
		cam:   camera.New(startPosition, startFront, opts...),
		clear: demos.ClearValue(s.ClearColor),
	}
	if err := f.init(ctx); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func (f *Flycam) init(ctx *samples.GraphicsContext) error {
	var err error
	device := ctx.Device()

	f.shader, err = shader.NewModule(device, "flycam_shader", shaderSource, "vs_main", "fs_main")
	if err != nil {
		return err
	}

	f.bindLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "flycam_uniform_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create flycam uniform layout: %w", err)
	}

	f.pipeLayout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "flycam_pipe_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{f.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create flycam pipeline layout: %w", err)
	}

	f.pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "flycam_pipeline",
		Layout: f.pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     f.shader,
			EntryPoint: "vs_main",
			Buffers:    triangle.VertexLayout(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     f.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{Format: ctx.Format(), WriteMask: gputypes.ColorWriteMaskAll},
			},
		},
		Primitive:   triangle.Primitive(),
		Multisample: gputypes.DefaultMultisampleState(),
	})
	if err != nil {
		return fmt.Errorf("create flycam pipeline: %w", err)
	}

	f.vertices, err = demos.NewBuffer(ctx, "flycam_vertices", wgpu.BufferUsageVertex, triangle.EncodeVertices(triangle.Vertices))
	if err != nil {
		return err
	}
	f.uniforms, err = demos.NewBuffer(ctx, "flycam_uniforms", wgpu.BufferUsageUniform, f.staging[:])
	if err != nil {
		return err
	}

	f.bindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "flycam_bind_group",
		Layout:  f.bindLayout,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, Buffer: f.uniforms, Size: uniformSize}},
	})
	if err != nil {
		return fmt.Errorf("create flycam bind group: %w", err)
	}
	return nil
}

// Camera implements samples.CameraController.
func (f *Flycam) Camera() *camera.Camera { return f.cam }

// Render implements samples.Sample.
func (f *Flycam) Render(ctx *samples.GraphicsContext, view *wgpu.TextureView, dt time.Duration) error {
	f.angle += SpinRate * float32(dt.Seconds())
	mvp := Transform(f.cam.View(dt), ctx.Aspect(), f.angle)

	for i, v := range mvp {
		demos.PutFloats(f.staging[i*4:], v)
	}
	if err := ctx.Queue().WriteBuffer(f.uniforms, 0, f.staging[:]); err != nil {
		return fmt.Errorf("write flycam uniforms: %w", err)
	}

	return demos.DrawPass(ctx, view, f.clear, func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(f.pipeline)
		pass.SetBindGroup(0, f.bindGroup, nil)
		pass.SetVertexBuffer(0, f.vertices, 0)
		pass.Draw(uint32(len(triangle.Vertices)), 1, 0, 0)
	})
}

// Transform returns projection * view * model for a model rotated by angle
// radians about the Y axis.
func Transform(view mgl32.Mat4, aspect, angle float32) mgl32.Mat4 {
	proj := camera.PerspectiveLH(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
	model := mgl32.HomogRotate3DY(angle)
	return proj.Mul4(view).Mul4(model)
}

// Close releases the GPU resources in reverse creation order.
func (f *Flycam) Close() error {
	if f.bindGroup != nil {
		f.bindGroup.Release()
		f.bindGroup = nil
	}
	if f.uniforms != nil {
		f.uniforms.Release()
		f.uniforms = nil
	}
	if f.vertices != nil {
		f.vertices.Release()
		f.vertices = nil
	}
	if f.pipeline != nil {
		f.pipeline.Release()
		f.pipeline = nil
	}
	if f.pipeLayout != nil {
		f.pipeLayout.Release()
		f.pipeLayout = nil
	}
	if f.bindLayout != nil {
		f.bindLayout.Release()
		f.bindLayout = nil
	}
	if f.shader != nil {
		f.shader.Release()
		f.shader = nil
	}
	return nil
}
