package sdlframe

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Environment variables that override the configured window size,
// useful when developing on a desktop instead of the target device.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// Config describes the application window. It is typically loaded from a
// TOML file shipped next to the application binary.
type Config struct {
	Title       string `toml:"title"`
	Width       int32  `toml:"width"`
	Height      int32  `toml:"height"`
	Borderless  bool   `toml:"borderless"`    // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable   bool   `toml:"resizable"`     // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen  bool   `toml:"fullscreen"`    // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	AlwaysOnTop bool   `toml:"always_on_top"` // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Maximized   bool   `toml:"maximized"`     // Start maximized (SDL_WINDOW_MAXIMIZED)
	Hidden      bool   `toml:"hidden"`        // Start hidden (omits SDL_WINDOW_SHOWN)
	LogPath     string `toml:"log_path"`      // Full path for the log file, including filename
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Title:     "swingnav",
		Width:     1024,
		Height:    768,
		Resizable: true,
	}
}

// LoadConfig reads a TOML window configuration from path, applying
// defaults for absent keys and WINDOW_WIDTH/WINDOW_HEIGHT environment
// overrides on top.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("sdlframe: reading config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("sdlframe: invalid window size %dx%d in %s", cfg.Width, cfg.Height, path)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			c.Width = int32(n)
		}
	}
	if v := os.Getenv(WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			c.Height = int32(n)
		}
	}
}

func (c Config) flags() uint32 {
	var flags uint32

	if !c.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if c.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if c.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if c.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if c.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if c.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	return flags
}
