package terrain

import (
	"fmt"
	"math/rand/v2"
)

// Fault-formation constants.
const (
	// FaultStep is the height added on the positive side of a fault line
	// and removed on the other side.
	FaultStep = 0.1
	// HeightScale is the half extent of the normalized height range.
	HeightScale = 0.5
)

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded PCG source. A zero seed picks a random one.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Validate checks a generation request without doing any work.
func Validate(gridSize, faultCount int) error {
	if gridSize < MinGridSize || gridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size %d outside [%d, %d]",
			ErrInvalidParameter, gridSize, MinGridSize, MaxGridSize)
	}
	if faultCount < 0 {
		return fmt.Errorf("%w: negative fault count %d", ErrInvalidParameter, faultCount)
	}
	return nil
}

// Generate builds a gridSize x gridSize terrain shaped by faultCount random faults.
// Invalid parameters fail before any buffer is allocated.
func Generate(gridSize, faultCount int, rng Source) (*Terrain, error) {
	if err := Validate(gridSize, faultCount); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSource(0)
	}

	positions := buildGrid(gridSize)
	for range faultCount {
		applyFault(positions, randomFault(rng))
	}
	normalizeHeights(positions)

	return &Terrain{
		GridSize:  gridSize,
		Positions: positions,
		Normals:   buildNormals(positions, gridSize),
		Indices:   buildIndices(gridSize),
	}, nil
}

// buildGrid lays out a flat grid over [-1, 1] x [-1, 1].
func buildGrid(n int) []float32 {
	positions := make([]float32, 0, n*n*3)
	span := float32(n - 1)
	for i := range n {
		x := float32(i)/span*2 - 1
		for j := range n {
			z := float32(j)/span*2 - 1
			positions = append(positions, x, 0, z)
		}
	}
	return positions
}

// fault is the line a*x + b*z + d = 0.
type fault struct {
	a, b, d float64
}

func randomFault(rng Source) fault {
	return fault{
		a: uniform(rng),
		b: uniform(rng),
		d: uniform(rng),
	}
}

// uniform maps [0, 1) onto [-1, 1).
func uniform(rng Source) float64 {
	return rng.Float64()*2 - 1
}

// side reports whether (x, z) lies strictly on the positive side of the line.
func (f fault) side(x, z float32) bool {
	return f.a*float64(x)+f.b*float64(z)+f.d > 0
}

// applyFault raises every vertex on the positive side and lowers the rest.
func applyFault(positions []float32, f fault) {
	for v := 0; v < len(positions); v += 3 {
		if f.side(positions[v], positions[v+2]) {
			positions[v+1] += FaultStep
		} else {
			positions[v+1] -= FaultStep
		}
	}
}

// normalizeHeights rescales heights onto [-HeightScale, HeightScale].
// A flat field is left untouched.
func normalizeHeights(positions []float32) {
	lo, hi := heightRange(positions)
	if lo == hi {
		return
	}
	mid := (float64(hi) + float64(lo)) / 2
	half := (float64(hi) - float64(lo)) / 2
	for v := 1; v < len(positions); v += 3 {
		positions[v] = float32(HeightScale * (float64(positions[v]) - mid) / half)
	}
}
