// Package terrain generates heightfield meshes with the fault-formation algorithm.
package terrain

import (
	"errors"

	"github.com/Faultbox/faultland/pkg/math"
)

// Grid size bounds. The upper bound keeps every vertex index inside uint16.
const (
	MinGridSize = 2
	MaxGridSize = 255
)

// ErrInvalidParameter is returned when a generation request is out of range.
var ErrInvalidParameter = errors.New("invalid terrain parameter")

// Terrain is the mesh produced by one generation call.
// It is never modified after Generate returns it.
type Terrain struct {
	GridSize  int
	Positions []float32 // x, y, z per vertex, row-major
	Normals   []float32 // x, y, z per vertex, parallel to Positions
	Indices   []uint16  // two triangles per grid cell
}

// VertexCount returns the number of grid vertices.
func (t *Terrain) VertexCount() int {
	return len(t.Positions) / 3
}

// Index returns the linear vertex index of row i, column j.
func (t *Terrain) Index(i, j int) int {
	return i*t.GridSize + j
}

// Position returns the position of vertex idx.
func (t *Terrain) Position(idx int) math.Vec3 {
	return vec3At(t.Positions, idx)
}

// Normal returns the normal of vertex idx.
func (t *Terrain) Normal(idx int) math.Vec3 {
	return vec3At(t.Normals, idx)
}

// Height returns the height of the vertex at row i, column j.
func (t *Terrain) Height(i, j int) float32 {
	return t.Positions[t.Index(i, j)*3+1]
}

// MaxHeight returns the highest vertex height, or 0 for an empty terrain.
func (t *Terrain) MaxHeight() float32 {
	_, hi := heightRange(t.Positions)
	return hi
}

// MinHeight returns the lowest vertex height, or 0 for an empty terrain.
func (t *Terrain) MinHeight() float32 {
	lo, _ := heightRange(t.Positions)
	return lo
}

func vec3At(buf []float32, idx int) math.Vec3 {
	return math.Vec3{X: buf[idx*3], Y: buf[idx*3+1], Z: buf[idx*3+2]}
}

// heightRange scans the y components of an interleaved position buffer.
func heightRange(positions []float32) (lo, hi float32) {
	if len(positions) < 3 {
		return 0, 0
	}
	lo, hi = positions[1], positions[1]
	for v := 4; v < len(positions); v += 3 {
		h := positions[v]
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return lo, hi
}
