package gauges

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk TOML layout:
//
//	title = "Cockpit"
//	max_fps = 60
//
//	[window]
//	width = 1280
//	height = 1024
//	fullscreen = false
type fileConfig struct {
	Title  string `toml:"title"`
	MaxFPS int    `toml:"max_fps"`
	Window struct {
		Width      int  `toml:"width"`
		Height     int  `toml:"height"`
		Fullscreen bool `toml:"fullscreen"`
	} `toml:"window"`
}

// LoadConfig reads an application Config from a TOML file. Missing keys
// keep their zero values and fall back to the application defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfigReader(f)
}

// LoadConfigReader reads an application Config from TOML content.
func LoadConfigReader(r io.Reader) (Config, error) {
	var fc fileConfig
	if _, err := toml.NewDecoder(r).Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("gauges: parse config: %w", err)
	}
	return Config{
		Width:      fc.Window.Width,
		Height:     fc.Window.Height,
		Fullscreen: fc.Window.Fullscreen,
		MaxFPS:     fc.MaxFPS,
		Title:      fc.Title,
	}, nil
}
