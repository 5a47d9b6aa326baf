package mvc

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config configures a Workspace. It is usually loaded from a TOML file:
//
//	title = "Counter"
//	width = 640
//	height = 480
//	layout_dirs = ["layouts"]
//	verbosity = 1
//	show_fps = true
//	screenshot_dir = "shots"
//
//	[keys]
//	Space = "Increment"
type Config struct {
	Title         string            `toml:"title"`
	Width         int               `toml:"width"`
	Height        int               `toml:"height"`
	LayoutDirs    []string          `toml:"layout_dirs"`
	Verbosity     int               `toml:"verbosity"`
	Debug         bool              `toml:"debug"`
	ShowFPS       bool              `toml:"show_fps"`
	ScreenshotDir string            `toml:"screenshot_dir"`
	Keys          map[string]string `toml:"keys"`
}

const (
	defaultWidth         = 640
	defaultHeight        = 480
	defaultScreenshotDir = "screenshots"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:         "mvc",
		Width:         defaultWidth,
		Height:        defaultHeight,
		ScreenshotDir: defaultScreenshotDir,
	}
}

// LoadConfig reads a TOML configuration file. Unset fields keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults replaces invalid values with defaults.
func (c *Config) applyDefaults() {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
}
