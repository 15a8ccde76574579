// Package game implements the viewer's explicit run loop.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/faultland/internal/config"
	"github.com/Faultbox/faultland/internal/engine/clock"
	"github.com/Faultbox/faultland/internal/engine/input"
	"github.com/Faultbox/faultland/internal/engine/renderer"
	"github.com/Faultbox/faultland/internal/engine/scene"
	"github.com/Faultbox/faultland/internal/engine/terrain"
	"github.com/Faultbox/faultland/internal/engine/window"
	"github.com/Faultbox/faultland/internal/game/panel"
	"github.com/Faultbox/faultland/internal/logger"
)

// Title is the application name shown in the title bar.
const Title = "Faultland"

// Game is the viewer instance.
type Game struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	clock    clock.Clock
	scene    *scene.Scene
	panel    *panel.Panel
	rng      *rand.Rand

	title string
}

// New creates the window, GL backend and scene, then generates the first
// terrain from cfg.Terrain. Shader failures abort initialization.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("grid", cfg.Terrain.GridSize),
		zap.Int("faults", cfg.Terrain.FaultCount),
		zap.Uint64("seed", cfg.Terrain.Seed),
	)

	g := &Game{
		config: cfg,
		input:  input.New(),
		clock:  clock.NewSystem(),
		rng:    terrain.NewSource(cfg.Terrain.Seed),
		panel: panel.New(panel.Params{
			GridSize:   cfg.Terrain.GridSize,
			FaultCount: cfg.Terrain.FaultCount,
		}),
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [3]float32{0.05, 0.07, 0.1},
		CullFaces:  cfg.Graphics.CullFaces,
		Wireframe:  cfg.Graphics.Wireframe,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width = width
	sceneCfg.Height = height
	sceneCfg.FOV = cfg.Camera.FOV
	g.scene, err = scene.New(g.renderer, sceneCfg)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	g.scene.Camera.Speed = cfg.Camera.Speed
	g.scene.Camera.Radius = cfg.Camera.Radius
	g.scene.Camera.Clearance = cfg.Camera.Clearance

	if err := g.generate(g.panel.Params()); err != nil {
		g.Close()
		return nil, fmt.Errorf("initial terrain: %w", err)
	}
	g.updateTitle()

	logger.Info("viewer initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the viewer is stopped.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		dt := g.clock.Tick()

		// 1. Process input
		if g.input.Update() {
			g.Stop()
			break
		}
		for _, event := range g.input.Events() {
			g.handleEvent(event)
		}

		// 2. Update
		g.scene.Update(dt)
		g.updateTitle()

		// 3. Render
		g.scene.Render()

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop stopped")
	return nil
}

// Stop ends the loop after the current frame.
func (g *Game) Stop() {
	g.running = false
}

// Close releases GPU resources and the window.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.scene != nil {
		g.scene.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		g.Stop()

	case input.EventWindowResize:
		// The event carries window coordinates; GL wants pixels
		width, height := g.window.DrawableSize()
		g.scene.Resize(width, height)

	case input.EventKeyDown:
		if event.Repeat {
			return
		}
		key, ok := panelKey(event.Key)
		if !ok {
			return
		}
		g.handleAction(g.panel.HandleKey(key))
	}
}

func (g *Game) handleAction(action panel.Action) {
	switch action {
	case panel.ActionGenerate, panel.ActionRegenerate:
		params := g.panel.Params()
		if err := g.generate(params); err != nil {
			// The previous terrain stays current.
			logger.Warn("terrain generation rejected",
				zap.Int("grid", params.GridSize),
				zap.Int("faults", params.FaultCount),
				zap.Error(err),
			)
			g.panel.SetStatus(statusFor(err))
			return
		}
		g.panel.SetStatus("")

	case panel.ActionTogglePause:
		g.scene.Camera.Paused = g.panel.Paused()
		logger.Debug("orbit pause toggled", zap.Bool("paused", g.scene.Camera.Paused))

	case panel.ActionQuit:
		g.Stop()
	}
}

func (g *Game) generate(params panel.Params) error {
	return g.scene.Regenerate(params.GridSize, params.FaultCount, g.rng)
}

func (g *Game) updateTitle() {
	title := g.panel.Title(Title)
	if title != g.title {
		g.window.SetTitle(title)
		g.title = title
	}
}

func statusFor(err error) string {
	if errors.Is(err, terrain.ErrInvalidParameter) {
		return "invalid parameters"
	}
	return "generation failed"
}

// panelKey maps an SDL keycode to a panel key.
func panelKey(k sdl.Keycode) (panel.Key, bool) {
	switch {
	case k >= sdl.K_KP_1 && k <= sdl.K_KP_9:
		return panel.Key('1' + (k - sdl.K_KP_1)), true
	case k == sdl.K_KP_0:
		return '0', true
	case k == sdl.K_KP_ENTER:
		return panel.KeyEnter, true
	case k >= 0 && k < 0x80:
		return panel.Key(k), true
	}
	return 0, false
}
