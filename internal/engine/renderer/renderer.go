// Package renderer provides the OpenGL implementation of the rendering backend.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/faultland/internal/engine/backend"
	"github.com/Faultbox/faultland/internal/engine/shader"
	"github.com/Faultbox/faultland/internal/logger"
	"github.com/Faultbox/faultland/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	CullFaces  bool
	Wireframe  bool
}

// Renderer handles all OpenGL rendering. It implements backend.Backend.
type Renderer struct {
	config   Config
	uniforms map[backend.Program]*shader.Uniforms
}

var _ backend.Backend = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		uniforms: make(map[backend.Program]*shader.Uniforms),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.CullFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}
	if cfg.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	r.Viewport(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for p := range r.uniforms {
		r.DeleteProgram(p)
	}
}

// CompileProgram implements backend.Backend.
func (r *Renderer) CompileProgram(vertexSrc, fragmentSrc string) (backend.Program, error) {
	id, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	p := backend.Program(id)
	r.uniforms[p] = shader.NewUniforms(id)
	logger.Debug("shader program created", zap.Uint32("program", id))
	return p, nil
}

// DeleteProgram implements backend.Backend.
func (r *Renderer) DeleteProgram(p backend.Program) {
	if p == 0 {
		return
	}
	gl.DeleteProgram(uint32(p))
	delete(r.uniforms, p)
}

// UseProgram implements backend.Backend.
func (r *Renderer) UseProgram(p backend.Program) {
	gl.UseProgram(uint32(p))
}

// UploadMesh implements backend.Backend.
// Positions go to attribute 0, normals to attribute 1.
func (r *Renderer) UploadMesh(positions, normals []float32, indices []uint16) (backend.Mesh, error) {
	if len(positions) == 0 || len(indices) == 0 {
		return backend.Mesh{}, fmt.Errorf("empty mesh: %d position floats, %d indices", len(positions), len(indices))
	}
	if len(normals) != len(positions) {
		return backend.Mesh{}, fmt.Errorf("normal buffer has %d floats, positions have %d", len(normals), len(positions))
	}

	var m backend.Mesh
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.Positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.Positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &m.Normals)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.Normals)
	gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, gl.Ptr(normals), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &m.Indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.Indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
	m.IndexCount = int32(len(indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", m.VAO),
		zap.Int("vertices", len(positions)/3),
		zap.Int32("indices", m.IndexCount),
	)
	return m, nil
}

// DeleteMesh implements backend.Backend.
func (r *Renderer) DeleteMesh(m backend.Mesh) {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	buffers := []uint32{m.Positions, m.Normals, m.Indices}
	for _, b := range buffers {
		if b != 0 {
			gl.DeleteBuffers(1, &b)
		}
	}
}

// DrawIndexed implements backend.Backend.
func (r *Renderer) DrawIndexed(m backend.Mesh) {
	if !m.Valid() {
		return
	}
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

func (r *Renderer) location(p backend.Program, name string) int32 {
	u, ok := r.uniforms[p]
	if !ok {
		return -1
	}
	return u.Location(name)
}

// SetMat4 implements backend.Backend.
func (r *Renderer) SetMat4(p backend.Program, name string, m math.Mat4) {
	gl.UniformMatrix4fv(r.location(p, name), 1, false, m.Ptr())
}

// SetVec3 implements backend.Backend.
func (r *Renderer) SetVec3(p backend.Program, name string, v math.Vec3) {
	gl.Uniform3f(r.location(p, name), v.X, v.Y, v.Z)
}

// SetFloat implements backend.Backend.
func (r *Renderer) SetFloat(p backend.Program, name string, f float32) {
	gl.Uniform1f(r.location(p, name), f)
}

// SetInt implements backend.Backend.
func (r *Renderer) SetInt(p backend.Program, name string, i int32) {
	gl.Uniform1i(r.location(p, name), i)
}

// SetFloats implements backend.Backend.
func (r *Renderer) SetFloats(p backend.Program, name string, fs []float32) {
	if len(fs) == 0 {
		return
	}
	gl.Uniform1fv(r.location(p, name), int32(len(fs)), &fs[0])
}

// SetVec3s implements backend.Backend.
func (r *Renderer) SetVec3s(p backend.Program, name string, vs []math.Vec3) {
	if len(vs) == 0 {
		return
	}
	flat := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	gl.Uniform3fv(r.location(p, name), int32(len(vs)), &flat[0])
}

// Viewport implements backend.Backend.
func (r *Renderer) Viewport(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear implements backend.Backend.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
