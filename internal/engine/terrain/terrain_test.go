package terrain

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-5

func generate(t *testing.T, gridSize, faultCount int, seed uint64) *Terrain {
	t.Helper()
	ter, err := Generate(gridSize, faultCount, NewSource(seed))
	if err != nil {
		t.Fatalf("Generate(%d, %d): %v", gridSize, faultCount, err)
	}
	return ter
}

func TestGenerate_BufferSizes(t *testing.T) {
	for _, n := range []int{2, 3, 17, 50, 255} {
		ter := generate(t, n, 10, 7)

		if got := ter.VertexCount(); got != n*n {
			t.Errorf("n=%d: expected %d vertices, got %d", n, n*n, got)
		}
		if got := len(ter.Normals) / 3; got != n*n {
			t.Errorf("n=%d: expected %d normals, got %d", n, n*n, got)
		}
		if got := len(ter.Indices); got != 6*(n-1)*(n-1) {
			t.Errorf("n=%d: expected %d indices, got %d", n, 6*(n-1)*(n-1), got)
		}
	}
}

func TestGenerate_IndicesInRange(t *testing.T) {
	n := 255
	ter := generate(t, n, 3, 1)
	for k, idx := range ter.Indices {
		if int(idx) >= n*n {
			t.Fatalf("index %d at position %d out of range (%d vertices)", idx, k, n*n)
		}
	}
}

func TestGenerate_InvalidGridSize(t *testing.T) {
	tests := []struct {
		name       string
		gridSize   int
		faultCount int
	}{
		{"grid too small", 1, 10},
		{"grid zero", 0, 0},
		{"grid too large", 256, 10},
		{"negative faults", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ter, err := Generate(tt.gridSize, tt.faultCount, NewSource(1))
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			if ter != nil {
				t.Error("expected no terrain on invalid parameters")
			}
		})
	}
}

func TestGenerate_BoundarySizesSucceed(t *testing.T) {
	if _, err := Generate(2, 0, NewSource(1)); err != nil {
		t.Errorf("Generate(2, 0): %v", err)
	}
	if testing.Short() {
		t.Skip("skipping 255x255 with 1000 faults in short mode")
	}
	if _, err := Generate(255, 1000, NewSource(1)); err != nil {
		t.Errorf("Generate(255, 1000): %v", err)
	}
}

func TestGenerate_NoFaultsIsFlat(t *testing.T) {
	ter := generate(t, 20, 0, 3)

	for v := 0; v < ter.VertexCount(); v++ {
		p := ter.Position(v)
		if p.Y != 0 {
			t.Fatalf("vertex %d: expected height 0, got %f", v, p.Y)
		}
		if !p.IsFinite() || !ter.Normal(v).IsFinite() {
			t.Fatalf("vertex %d: non-finite position or normal", v)
		}
	}
	if ter.MaxHeight() != 0 {
		t.Errorf("expected max height 0, got %f", ter.MaxHeight())
	}
}

func TestGenerate_NormalizedRange(t *testing.T) {
	// Any seed must land exactly on [-0.5, 0.5].
	for seed := uint64(1); seed <= 20; seed++ {
		ter := generate(t, 50, 50, seed)
		lo, hi := ter.MinHeight(), ter.MaxHeight()
		if lo == hi {
			continue
		}
		if math.Abs(float64(hi)-HeightScale) > tolerance {
			t.Errorf("seed %d: expected max height 0.5, got %f", seed, hi)
		}
		if math.Abs(float64(lo)+HeightScale) > tolerance {
			t.Errorf("seed %d: expected min height -0.5, got %f", seed, lo)
		}
	}
}

func TestGenerate_PlanarPositionsUnchanged(t *testing.T) {
	n := 9
	ter := generate(t, n, 40, 11)
	for i := range n {
		for j := range n {
			p := ter.Position(ter.Index(i, j))
			wantX := float32(i)/float32(n-1)*2 - 1
			wantZ := float32(j)/float32(n-1)*2 - 1
			if p.X != wantX || p.Z != wantZ {
				t.Fatalf("(%d,%d): got x=%f z=%f, want x=%f z=%f", i, j, p.X, p.Z, wantX, wantZ)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, 30, 25, 42)
	b := generate(t, 30, 25, 42)
	for k := range a.Positions {
		if a.Positions[k] != b.Positions[k] {
			t.Fatalf("same seed produced different height at %d", k)
		}
	}
}

func TestGenerate_UnitNormals(t *testing.T) {
	ter := generate(t, 40, 60, 5)
	for v := 0; v < ter.VertexCount(); v++ {
		l := ter.Normal(v).Length()
		if math.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("vertex %d: normal length %f, want 1", v, l)
		}
	}
}

func TestGenerate_NormalsPointUpOnFlatTerrain(t *testing.T) {
	ter := generate(t, 5, 0, 1)
	for v := 0; v < ter.VertexCount(); v++ {
		n := ter.Normal(v)
		if math.Abs(float64(n.Y)-1) > tolerance {
			t.Fatalf("vertex %d: expected normal (0,1,0), got %v", v, n)
		}
	}
}

func TestGenerate_WindingFacesUp(t *testing.T) {
	ter := generate(t, 6, 0, 1)
	for tri := 0; tri < len(ter.Indices)/3; tri++ {
		if n := ter.FaceNormal(tri); n.Y <= 0 {
			t.Fatalf("triangle %d faces down: %v", tri, n)
		}
	}
}

func TestBuildIndices_CellLayout(t *testing.T) {
	// 3x3 grid: first cell corners a=0, b=1, c=3, d=4.
	indices := buildIndices(3)
	want := []uint16{0, 1, 3, 1, 4, 3}
	for k, w := range want {
		if indices[k] != w {
			t.Errorf("index %d: got %d, want %d", k, indices[k], w)
		}
	}
}

func TestNeighbors_CornerClampsToSelf(t *testing.T) {
	n := 4
	south, north, west, east := neighbors(0, 0, n)
	if south != 0 || west != 0 {
		t.Errorf("corner (0,0): expected south and west to be self, got %d, %d", south, west)
	}
	if north != n || east != 1 {
		t.Errorf("corner (0,0): expected north=%d east=1, got %d, %d", n, north, east)
	}

	south, north, west, east = neighbors(n-1, n-1, n)
	self := (n-1)*n + n - 1
	if north != self || east != self {
		t.Errorf("corner (%d,%d): expected north and east to be self, got %d, %d", n-1, n-1, north, east)
	}
	if south != self-n || west != self-1 {
		t.Errorf("corner (%d,%d): unexpected south=%d west=%d", n-1, n-1, south, west)
	}
}

func TestGenerate_CornerNormalFinite(t *testing.T) {
	ter := generate(t, 8, 30, 9)
	for _, idx := range []int{ter.Index(0, 0), ter.Index(0, 7), ter.Index(7, 0), ter.Index(7, 7)} {
		n := ter.Normal(idx)
		if !n.IsFinite() {
			t.Fatalf("corner %d: non-finite normal %v", idx, n)
		}
		if math.Abs(float64(n.Length())-1) > 1e-4 {
			t.Errorf("corner %d: normal length %f, want 1", idx, n.Length())
		}
	}
}

func TestApplyFault_StepsBothSides(t *testing.T) {
	positions := buildGrid(3)
	// x > 0 is positive: the row i=2 rises, rows 0 and 1 sink.
	applyFault(positions, fault{a: 1, b: 0, d: 0})
	for v := 0; v < len(positions); v += 3 {
		want := float32(-FaultStep)
		if positions[v] > 0 {
			want = FaultStep
		}
		if positions[v+1] != want {
			t.Errorf("vertex at x=%f: height %f, want %f", positions[v], positions[v+1], want)
		}
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestRandomFault_UniformMapping(t *testing.T) {
	f := randomFault(constSource(0))
	if f.a != -1 || f.b != -1 || f.d != -1 {
		t.Errorf("expected (-1,-1,-1), got %+v", f)
	}
	f = randomFault(constSource(0.5))
	if f.a != 0 || f.b != 0 || f.d != 0 {
		t.Errorf("expected (0,0,0), got %+v", f)
	}
}

// seqSource replays a fixed sequence of values.
type seqSource struct {
	values []float64
	next   int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestGenerate_UniformShiftSkipsNormalization(t *testing.T) {
	// a=0, b=0, d=0.5: every vertex lies on the positive side.
	src := &seqSource{values: []float64{0.5, 0.5, 0.75}}
	ter, err := Generate(4, 1, src)
	if err != nil {
		t.Fatal(err)
	}
	for v := 0; v < ter.VertexCount(); v++ {
		if h := ter.Position(v).Y; h != FaultStep {
			t.Fatalf("vertex %d: expected untouched height %f, got %f", v, float32(FaultStep), h)
		}
	}
}

func TestGenerate_NilSourceUsesRandomSeed(t *testing.T) {
	ter, err := Generate(10, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ter.VertexCount() != 100 {
		t.Errorf("expected 100 vertices, got %d", ter.VertexCount())
	}
}
