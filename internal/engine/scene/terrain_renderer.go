package scene

import (
	"fmt"

	"github.com/Faultbox/faultland/internal/engine/backend"
	"github.com/Faultbox/faultland/internal/engine/scene/shaders"
	"github.com/Faultbox/faultland/internal/engine/terrain"
	"github.com/Faultbox/faultland/pkg/math"
)

// Light holds the fixed lighting parameters of the terrain pass.
type Light struct {
	Position math.Vec3 // view space
	Ambient  float32
}

// TerrainRenderer owns the terrain program and the live mesh buffers.
type TerrainRenderer struct {
	backend backend.Backend
	program backend.Program
	mesh    backend.Mesh
}

// NewTerrainRenderer compiles the terrain shaders.
func NewTerrainRenderer(b backend.Backend) (*TerrainRenderer, error) {
	program, err := b.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainRenderer{backend: b, program: program}, nil
}

// LoadTerrain uploads t and releases the buffers it replaces.
// On failure the previous mesh stays live.
func (tr *TerrainRenderer) LoadTerrain(t *terrain.Terrain) error {
	mesh, err := tr.backend.UploadMesh(t.Positions, t.Normals, t.Indices)
	if err != nil {
		return fmt.Errorf("upload terrain mesh: %w", err)
	}
	tr.clearTerrain()
	tr.mesh = mesh
	return nil
}

// Mesh returns the live mesh handle.
func (tr *TerrainRenderer) Mesh() backend.Mesh {
	return tr.mesh
}

// Render draws the terrain with one indexed draw call.
func (tr *TerrainRenderer) Render(projection, modelView math.Mat4, light Light, materials []Material) {
	if !tr.mesh.Valid() {
		return
	}

	b := tr.backend
	b.UseProgram(tr.program)

	b.SetMat4(tr.program, "uProjection", projection)
	b.SetMat4(tr.program, "uModelView", modelView)
	b.SetMat4(tr.program, "uNormalMatrix", modelView.NormalMatrix())
	b.SetVec3(tr.program, "uLightPos", light.Position)
	b.SetFloat(tr.program, "uAmbient", light.Ambient)

	mu := flattenMaterials(materials)
	b.SetInt(tr.program, "uMaterialCount", mu.count)
	b.SetFloats(tr.program, "uMaterialThreshold", mu.thresholds)
	b.SetVec3s(tr.program, "uMaterialColor", mu.colors)
	b.SetFloats(tr.program, "uMaterialShininess", mu.exponents)
	b.SetFloats(tr.program, "uMaterialSpecular", mu.intensity)

	b.DrawIndexed(tr.mesh)
}

func (tr *TerrainRenderer) clearTerrain() {
	if tr.mesh.Valid() {
		tr.backend.DeleteMesh(tr.mesh)
		tr.mesh = backend.Mesh{}
	}
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearTerrain()
	if tr.program != 0 {
		tr.backend.DeleteProgram(tr.program)
		tr.program = 0
	}
}
