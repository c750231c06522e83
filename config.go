package tileview

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the file name looked up in the working directory.
const ConfigFile = "tileview.toml"

// Config holds everything the demo can be tuned with. Every field has a
// default, and a missing config file is not an error.
type Config struct {
	Title         string        `toml:"title"`
	Width         int           `toml:"width"`
	Height        int           `toml:"height"`
	VSync         bool          `toml:"vsync"`
	Verbose       bool          `toml:"verbose"`
	Asset         string        `toml:"asset"`
	InfoBarHeight float32       `toml:"info_bar_height"`
	Overlay       OverlayConfig `toml:"overlay"`
}

// OverlayConfig describes the rectangle overlay. When Area is set the
// rectangle is placed in window pixels instead of content-area NDC.
type OverlayConfig struct {
	Coords [4]float32 `toml:"coords"`
	Color  [4]float32 `toml:"color"`
	Style  string     `toml:"style"`
	Area   []float32  `toml:"area,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	r := DefaultRectangle()
	return Config{
		Title:         "fuzzy pickles",
		Width:         800,
		Height:        600,
		VSync:         true,
		Asset:         "../resources/Overworld_Tiles_aligned_2.png",
		InfoBarHeight: DefaultInfoBarHeight,
		Overlay: OverlayConfig{
			Coords: r.Coords.Array(),
			Color:  r.Color.Array(),
			Style:  r.Style.String(),
		},
	}
}

// LoadConfig decodes the TOML file at path over the defaults. A missing
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file, using defaults", "path", path)
			return conf, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// DecodeConfig decodes TOML text over the defaults.
func DecodeConfig(data string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.Decode(data, &conf); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return conf, nil
}

// WriteConfig encodes conf as TOML to path.
func WriteConfig(path string, conf Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the window, info bar and overlay settings.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Width, c.Height, ErrInvalidSize)
	}
	if c.InfoBarHeight < 0 {
		return fmt.Errorf("info bar height %g is negative", c.InfoBarHeight)
	}
	if float32(c.Height) <= c.InfoBarHeight {
		return fmt.Errorf("window height %d: %w", c.Height, ErrWindowTooShort)
	}
	if c.Asset == "" {
		return errors.New("asset path is empty")
	}
	if _, err := parseRectStyle(c.Overlay.Style); err != nil {
		return err
	}
	if n := len(c.Overlay.Area); n != 0 && n != 4 {
		return fmt.Errorf("overlay area needs 4 values, got %d", n)
	}
	return nil
}

// Rectangle returns the overlay rectangle described by the config.
func (c Config) Rectangle() Rectangle {
	style, _ := parseRectStyle(c.Overlay.Style)
	k, col := c.Overlay.Coords, c.Overlay.Color
	return Rectangle{
		Coords: NDCRect{X1: k[0], Y1: k[1], X2: k[2], Y2: k[3]},
		Color:  RGBAf(col[0], col[1], col[2], col[3]),
		Style:  style,
	}
}

// RenderArea returns the pixel area for the overlay, if one is configured.
func (c Config) RenderArea() (PixelRect, bool) {
	a := c.Overlay.Area
	if len(a) != 4 {
		return PixelRect{}, false
	}
	return PixelRect{X1: a[0], Y1: a[1], X2: a[2], Y2: a[3]}, true
}

func parseRectStyle(s string) (RectStyle, error) {
	switch s {
	case "", "solid":
		return RectSolid, nil
	case "border":
		return RectBorder, nil
	default:
		return RectSolid, fmt.Errorf("unknown overlay style %q", s)
	}
}
