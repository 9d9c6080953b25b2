// Package window creates an SDL2 window that owns an OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shaderlink/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window and context configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	Hidden  bool
	Profile string // "core" or "es"
	Major   int
	Minor   int
}

// Window wraps an SDL2 window and its OpenGL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New creates a window and makes its OpenGL context current.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Debug("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Context attributes must be set before the window exists
	profile := int(sdl.GL_CONTEXT_PROFILE_CORE)
	if cfg.Profile == "es" {
		profile = int(sdl.GL_CONTEXT_PROFILE_ES)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, profile)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	logger.Debug("window created",
		zap.String("profile", cfg.Profile),
		zap.Int("major", cfg.Major),
		zap.Int("minor", cfg.Minor),
		zap.Bool("hidden", cfg.Hidden),
	)

	return w, nil
}

// Close destroys the context and window and shuts SDL2 down.
func (w *Window) Close() {
	logger.Debug("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
