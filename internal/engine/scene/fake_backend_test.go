package scene

import (
	"github.com/Faultbox/faultland/internal/engine/backend"
	"github.com/Faultbox/faultland/pkg/math"
)

// fakeBackend records the calls the scene makes.
type fakeBackend struct {
	compileErr error
	uploadErr  error

	nextID   uint32
	programs map[backend.Program]bool
	meshes   map[uint32]backend.Mesh
	deleted  []backend.Mesh

	used      backend.Program
	draws     []backend.Mesh
	clears    int
	viewportW int
	viewportH int

	mat4s  map[string]math.Mat4
	vec3s  map[string]math.Vec3
	floats map[string]float32
	ints   map[string]int32
	arrays map[string][]float32
	vec3a  map[string][]math.Vec3
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		programs: make(map[backend.Program]bool),
		meshes:   make(map[uint32]backend.Mesh),
		mat4s:    make(map[string]math.Mat4),
		vec3s:    make(map[string]math.Vec3),
		floats:   make(map[string]float32),
		ints:     make(map[string]int32),
		arrays:   make(map[string][]float32),
		vec3a:    make(map[string][]math.Vec3),
	}
}

func (f *fakeBackend) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) CompileProgram(vertexSrc, fragmentSrc string) (backend.Program, error) {
	if f.compileErr != nil {
		return 0, f.compileErr
	}
	p := backend.Program(f.id())
	f.programs[p] = true
	return p, nil
}

func (f *fakeBackend) DeleteProgram(p backend.Program) { delete(f.programs, p) }
func (f *fakeBackend) UseProgram(p backend.Program)    { f.used = p }

func (f *fakeBackend) UploadMesh(positions, normals []float32, indices []uint16) (backend.Mesh, error) {
	if f.uploadErr != nil {
		return backend.Mesh{}, f.uploadErr
	}
	m := backend.Mesh{
		VAO:        f.id(),
		Positions:  f.id(),
		Normals:    f.id(),
		Indices:    f.id(),
		IndexCount: int32(len(indices)),
	}
	f.meshes[m.VAO] = m
	return m, nil
}

func (f *fakeBackend) DeleteMesh(m backend.Mesh) {
	delete(f.meshes, m.VAO)
	f.deleted = append(f.deleted, m)
}

func (f *fakeBackend) DrawIndexed(m backend.Mesh) { f.draws = append(f.draws, m) }

func (f *fakeBackend) SetMat4(p backend.Program, name string, m math.Mat4) {
	f.mat4s[name] = m
}

func (f *fakeBackend) SetVec3(p backend.Program, name string, v math.Vec3) {
	f.vec3s[name] = v
}

func (f *fakeBackend) SetFloat(p backend.Program, name string, v float32) {
	f.floats[name] = v
}

func (f *fakeBackend) SetInt(p backend.Program, name string, i int32) {
	f.ints[name] = i
}

func (f *fakeBackend) SetFloats(p backend.Program, name string, v []float32) {
	f.arrays[name] = v
}

func (f *fakeBackend) SetVec3s(p backend.Program, name string, vs []math.Vec3) {
	f.vec3a[name] = vs
}

func (f *fakeBackend) Viewport(width, height int) {
	f.viewportW = width
	f.viewportH = height
}

func (f *fakeBackend) Clear() { f.clears++ }

var _ backend.Backend = (*fakeBackend)(nil)
