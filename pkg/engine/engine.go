package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mazewalk/internal/logger"
	"mazewalk/pkg/config"
	"mazewalk/pkg/sound"
	"mazewalk/pkg/world"
)

// winLinger keeps the window open after the goal so the cue can play out
const winLinger = 600 * time.Millisecond

// Engine owns the window, the simulation and its presentation
type Engine struct {
	window      *glfw.Window
	config      *config.Config
	logger      *logger.Logger
	input       *InputHandler
	renderer    Renderer
	audioEngine *AudioEngine
	state       *world.State
	isRunning   bool
	lastUpdate  float64
	frameRate   int
	wonAt       time.Time
}

// NewEngine creates the window and GL context, loads textures and sets up
// the simulation. Texture or shader failures are returned as errors; audio
// failures only disable sound.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	maze, err := cfg.BuildMaze()
	if err != nil {
		return nil, fmt.Errorf("failed to build maze: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Set window hints
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	// Framebuffer size can differ from window size on HiDPI displays
	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer, err := NewOpenGLRenderer(cfg.Textures, fbWidth, fbHeight)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	log.Infof("Loaded textures %s and %s", cfg.Textures.Floor, cfg.Textures.Wall)

	engine := &Engine{
		window:    window,
		config:    cfg,
		logger:    log,
		input:     NewInputHandler(window),
		renderer:  renderer,
		state:     world.NewState(maze, cfg.Simulation()),
		frameRate: cfg.Window.FrameRate,
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		engine.renderer.Resize(width, height)
	})

	if cfg.Audio.Enabled {
		audioEngine, err := NewAudioEngine(cfg.Audio)
		if err != nil {
			log.Warnf("Audio disabled: %v", err)
		} else {
			engine.audioEngine = audioEngine
		}
	}

	return engine, nil
}

// Run starts the main game loop and returns when the window closes
func (e *Engine) Run() {
	e.isRunning = true
	e.lastUpdate = glfw.GetTime()

	for e.isRunning && !e.window.ShouldClose() {
		frameStart := time.Now()
		now := glfw.GetTime()
		deltaTime := now - e.lastUpdate
		e.lastUpdate = now

		e.processInput()
		e.update(deltaTime, now)
		e.render()

		e.window.SwapBuffers()
		glfw.PollEvents()

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}
}

// processInput handles keys that act outside the simulation
func (e *Engine) processInput() {
	e.input.Update()

	if e.input.IsKeyDown(glfw.KeyEscape) {
		e.window.SetShouldClose(true)
	}

	if e.input.IsKeyPressed(glfw.KeyM) {
		e.logger.Infof("Map:\n%s", world.RenderMinimap(e.state))
	}
}

// update advances the simulation and reacts to its events
func (e *Engine) update(deltaTime, now float64) {
	if e.state.Won {
		if time.Since(e.wonAt) >= winLinger {
			e.window.SetShouldClose(true)
		}
		return
	}

	events := e.state.Step(e.input.Frame(), deltaTime, now)
	if events == 0 {
		return
	}

	if events.Has(world.EventWallBump) {
		e.logger.Debugf("Blocked by wall at %d,%d", e.state.LastWall.X, e.state.LastWall.Z)
	}
	if events.Has(world.EventJump) {
		e.logger.Debug("Jump")
	}
	if events.Has(world.EventObstacleHit) {
		e.logger.Info("Hit by the obstacle, back to the start")
	}
	if events.Has(world.EventGoalReached) {
		e.logger.Info("Congratulations! You reached the end of the maze!")
		e.logger.Infof("Map:\n%s", world.RenderMinimap(e.state))
		e.wonAt = time.Now()
	}

	if e.audioEngine != nil {
		for _, cue := range sound.CuesFor(events) {
			e.audioEngine.Play(cue)
		}
	}
}

// render draws the current frame
func (e *Engine) render() {
	e.renderer.Render(world.BuildScene(e.state, e.renderer.AspectRatio()))
}

// Close releases audio, GL objects and the window
func (e *Engine) Close() {
	e.logger.Info("Shutting down engine...")
	if e.audioEngine != nil {
		e.audioEngine.Shutdown()
	}
	e.renderer.Close()
	e.window.Destroy()
	glfw.Terminate()
}
