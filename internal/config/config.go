// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	CullFaces  bool `yaml:"cull_faces"`
	Wireframe  bool `yaml:"wireframe"`
}

// TerrainConfig holds the initial generation request.
// The values also serve as defaults for malformed input in the UI.
type TerrainConfig struct {
	GridSize   int    `yaml:"grid_size"`
	FaultCount int    `yaml:"fault_count"`
	Seed       uint64 `yaml:"seed"` // 0 picks a random seed
}

// CameraConfig holds orbit camera and projection settings.
type CameraConfig struct {
	Speed     float32 `yaml:"speed"` // radians per second
	Radius    float32 `yaml:"radius"`
	Clearance float32 `yaml:"clearance"`
	FOV       float32 `yaml:"fov"` // degrees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			CullFaces:  true,
			Wireframe:  false,
		},
		Terrain: TerrainConfig{
			GridSize:   128,
			FaultCount: 200,
			Seed:       0,
		},
		Camera: CameraConfig{
			Speed:     0.3,
			Radius:    1.4,
			Clearance: 0.2,
			FOV:       45,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Grid size bounds accepted by the generator.
const (
	minGridSize = 2
	maxGridSize = 255
)

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive",
			c.Graphics.Width, c.Graphics.Height))
	}
	if c.Terrain.GridSize < minGridSize || c.Terrain.GridSize > maxGridSize {
		errs = append(errs, fmt.Errorf("terrain: grid_size %d outside [%d, %d]",
			c.Terrain.GridSize, minGridSize, maxGridSize))
	}
	if c.Terrain.FaultCount < 0 {
		errs = append(errs, fmt.Errorf("terrain: fault_count %d must not be negative", c.Terrain.FaultCount))
	}
	if c.Camera.Radius <= 0 {
		errs = append(errs, fmt.Errorf("camera: radius %v must be positive", c.Camera.Radius))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov %v outside (0, 180)", c.Camera.FOV))
	}
	return errors.Join(errs...)
}
