// Package scene holds the per-session render state: the current terrain,
// its GPU buffers, the orbit camera and the projection.
package scene

import (
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/faultland/internal/engine/backend"
	"github.com/Faultbox/faultland/internal/engine/camera"
	"github.com/Faultbox/faultland/internal/engine/terrain"
	"github.com/Faultbox/faultland/internal/logger"
	"github.com/Faultbox/faultland/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Width  int
	Height int

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	Light     Light
	Materials []Material
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		FOV:    45,
		Near:   0.01,
		Far:    100,
		Light: Light{
			Position: math.Vec3{X: 0, Y: 2, Z: 1},
			Ambient:  0.1,
		},
		Materials: DefaultMaterials(),
	}
}

// Scene is the render session context passed through the frame loop.
type Scene struct {
	config  Config
	backend backend.Backend

	terrainRenderer *TerrainRenderer
	current         *terrain.Terrain

	Camera     *camera.OrbitCamera
	projection math.Mat4
}

// New creates a scene and compiles its shading pipeline.
// A shader failure is fatal and returned as is.
func New(b backend.Backend, cfg Config) (*Scene, error) {
	if len(cfg.Materials) == 0 {
		cfg.Materials = DefaultMaterials()
	}

	tr, err := NewTerrainRenderer(b)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		config:          cfg,
		backend:         b,
		terrainRenderer: tr,
		Camera:          camera.NewOrbitCamera(),
	}
	s.Resize(cfg.Width, cfg.Height)
	return s, nil
}

// Regenerate builds a new terrain and makes it current.
// Invalid parameters are rejected before anything in the scene changes.
func (s *Scene) Regenerate(gridSize, faultCount int, rng terrain.Source) error {
	start := time.Now()
	t, err := terrain.Generate(gridSize, faultCount, rng)
	if err != nil {
		return err
	}
	logger.Info("terrain generated",
		zap.Int("grid", gridSize),
		zap.Int("faults", faultCount),
		zap.Int("vertices", t.VertexCount()),
		zap.Int("indices", len(t.Indices)),
		zap.Float32("maxHeight", t.MaxHeight()),
		zap.Duration("took", time.Since(start)),
	)
	return s.SetTerrain(t)
}

// SetTerrain replaces the current terrain and its buffers wholesale.
func (s *Scene) SetTerrain(t *terrain.Terrain) error {
	if err := s.terrainRenderer.LoadTerrain(t); err != nil {
		return err
	}
	s.current = t
	s.Camera.SetHeightAbove(t.MaxHeight())
	return nil
}

// Terrain returns the current terrain, or nil before the first generation.
func (s *Scene) Terrain() *terrain.Terrain {
	return s.current
}

// Update advances the camera by dt seconds.
func (s *Scene) Update(dt float64) {
	s.Camera.Advance(dt)

	var maxHeight float32
	if s.current != nil {
		maxHeight = s.current.MaxHeight()
	}
	s.Camera.SetHeightAbove(maxHeight)
}

// Resize updates the viewport and projection.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.config.Width = width
	s.config.Height = height
	s.backend.Viewport(width, height)

	aspect := float32(width) / float32(height)
	fov := s.config.FOV * gomath.Pi / 180
	s.projection = math.Perspective(fov, aspect, s.config.Near, s.config.Far)
}

// Projection returns the current projection matrix.
func (s *Scene) Projection() math.Mat4 {
	return s.projection
}

// Render draws one frame.
func (s *Scene) Render() {
	s.backend.Clear()

	// The terrain's model matrix is identity.
	modelView := s.Camera.ViewMatrix()
	s.terrainRenderer.Render(s.projection, modelView, s.config.Light, s.config.Materials)
}

// Close releases GPU resources.
func (s *Scene) Close() {
	s.terrainRenderer.Destroy()
	s.current = nil
}
