package terrain

import (
	"github.com/Faultbox/faultland/pkg/math"
)

// buildIndices emits two triangles per grid cell, (a,b,c) and (b,d,c),
// where a is the cell's corner at (i, j), b = a+1, c one row down, d = c+1.
// Front faces point towards +Y.
func buildIndices(n int) []uint16 {
	cells := n - 1
	indices := make([]uint16, 0, cells*cells*6)
	for i := range cells {
		for j := range cells {
			a := uint16(i*n + j)
			b := a + 1
			c := uint16((i+1)*n + j)
			d := c + 1
			indices = append(indices,
				a, b, c,
				b, d, c,
			)
		}
	}
	return indices
}

// neighbors returns the linear indices of the four axis-aligned neighbors of
// (i, j). A neighbor outside the grid is replaced by the vertex itself, which
// flattens normals along the border.
func neighbors(i, j, n int) (south, north, west, east int) {
	south = max(i-1, 0)*n + j
	north = min(i+1, n-1)*n + j
	west = i*n + max(j-1, 0)
	east = i*n + min(j+1, n-1)
	return south, north, west, east
}

// buildNormals reconstructs per-vertex normals from central differences:
// normalize(cross(north - south, west - east)).
func buildNormals(positions []float32, n int) []float32 {
	normals := make([]float32, len(positions))
	for i := range n {
		for j := range n {
			south, north, west, east := neighbors(i, j, n)
			du := vec3At(positions, north).Sub(vec3At(positions, south))
			dv := vec3At(positions, west).Sub(vec3At(positions, east))
			nrm := du.Cross(dv).Normalize()

			idx := (i*n + j) * 3
			normals[idx] = nrm.X
			normals[idx+1] = nrm.Y
			normals[idx+2] = nrm.Z
		}
	}
	return normals
}

// FaceNormal returns the geometric normal of triangle tri (0-based).
func (t *Terrain) FaceNormal(tri int) math.Vec3 {
	a := t.Position(int(t.Indices[tri*3]))
	b := t.Position(int(t.Indices[tri*3+1]))
	c := t.Position(int(t.Indices[tri*3+2]))
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
