// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/samples/demos"
	"github.com/gogpu/wgpu"
)

// VertexStride is the byte size of one encoded Vertex.
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec3<f32>) = 12 bytes (location 1)
const VertexStride = 24

// Vertex is a coloured vertex.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// Vertices is the triangle, wound clockwise.
var Vertices = []Vertex{
	{Position: [3]float32{0, 0.5, 0}, Color: [3]float32{1, 0, 0}},
	{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}},
}

// EncodeVertices packs vs for a vertex buffer laid out by VertexLayout.
func EncodeVertices(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	for i, v := range vs {
		p, c := v.Position, v.Color
		demos.PutFloats(buf[i*VertexStride:], p[0], p[1], p[2], c[0], c[1], c[2])
	}
	return buf
}

// VertexLayout returns the vertex buffer layout of encoded vertices.
func VertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}

// Primitive is the primitive state shared by the triangle pipelines.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCW,
		CullMode:  gputypes.CullModeNone,
	}
}
