package tileview_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fuzzy-pickles/tileview"
)

func TestLoadConfigMissingFile(t *testing.T) {
	conf, err := tileview.LoadConfig(filepath.Join(t.TempDir(), tileview.ConfigFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(conf, tileview.DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", conf)
	}
}

func TestDefaultConfig(t *testing.T) {
	conf := tileview.DefaultConfig()

	if conf.Asset != "../resources/Overworld_Tiles_aligned_2.png" {
		t.Errorf("unexpected asset %q", conf.Asset)
	}
	if conf.InfoBarHeight != 32 {
		t.Errorf("expected bar height 32, got %v", conf.InfoBarHeight)
	}
	if conf.Rectangle() != tileview.DefaultRectangle() {
		t.Errorf("expected default rectangle, got %+v", conf.Rectangle())
	}
	if _, ok := conf.RenderArea(); ok {
		t.Errorf("expected no render area by default")
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDecodeConfigOverridesDefaults(t *testing.T) {
	conf, err := tileview.DecodeConfig(`
title = "tiles"
height = 720
info_bar_height = 48.0

[overlay]
style = "border"
area = [10.0, 20.0, 110.0, 220.0]
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conf.Title != "tiles" || conf.Height != 720 || conf.InfoBarHeight != 48 {
		t.Errorf("overrides not applied: %+v", conf)
	}
	if conf.Width != 800 {
		t.Errorf("expected default width 800, got %d", conf.Width)
	}

	r := conf.Rectangle()
	if r.Style != tileview.RectBorder {
		t.Errorf("expected border style, got %v", r.Style)
	}
	if r.Coords != tileview.DefaultRectangle().Coords {
		t.Errorf("expected default coords, got %+v", r.Coords)
	}

	area, ok := conf.RenderArea()
	if !ok {
		t.Fatal("expected render area")
	}
	if area != (tileview.PixelRect{X1: 10, Y1: 20, X2: 110, Y2: 220}) {
		t.Errorf("unexpected area %+v", area)
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad style", "[overlay]\nstyle = \"dotted\"\n"},
		{"short area", "[overlay]\narea = [1.0, 2.0, 3.0]\n"},
		{"window below bar", "height = 30\n"},
		{"zero width", "width = 0\n"},
		{"empty asset", "asset = \"\"\n"},
		{"syntax", "title = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tileview.DecodeConfig(tt.data); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), tileview.ConfigFile)

	want := tileview.DefaultConfig()
	want.Title = "round trip"
	want.Verbose = true
	want.Overlay.Color = [4]float32{0.25, 0.5, 0.75, 1}

	if err := tileview.WriteConfig(path, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	got, err := tileview.LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
