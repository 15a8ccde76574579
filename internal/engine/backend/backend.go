// Package backend defines the rendering contract the scene draws through.
// It has no GL dependency so scene logic can run against a fake.
package backend

import "github.com/Faultbox/faultland/pkg/math"

// Program identifies a linked shading program.
type Program uint32

// Mesh identifies uploaded vertex, normal and index buffers.
type Mesh struct {
	VAO        uint32
	Positions  uint32
	Normals    uint32
	Indices    uint32
	IndexCount int32
}

// Valid reports whether the mesh holds live buffers.
func (m Mesh) Valid() bool {
	return m.VAO != 0
}

// Backend is the set of GPU operations the scene needs.
type Backend interface {
	// CompileProgram compiles and links a vertex/fragment pair.
	// Compile and link diagnostics are returned in the error.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	DeleteProgram(p Program)
	UseProgram(p Program)

	// UploadMesh creates fresh buffers for a position/normal/index set.
	UploadMesh(positions, normals []float32, indices []uint16) (Mesh, error)
	DeleteMesh(m Mesh)
	DrawIndexed(m Mesh)

	SetMat4(p Program, name string, m math.Mat4)
	SetVec3(p Program, name string, v math.Vec3)
	SetFloat(p Program, name string, f float32)
	SetInt(p Program, name string, i int32)
	SetFloats(p Program, name string, fs []float32)
	SetVec3s(p Program, name string, vs []math.Vec3)

	Viewport(width, height int)
	Clear()
}
