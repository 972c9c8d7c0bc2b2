package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLayoutFromBytes(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{"TOML", ".toml", `
[subtitle_band]
color = 0x112233

[items]
height = 50.0
font = "Monospace"
`},
		{"YAML", ".yaml", `
subtitle_band:
  color: 0x112233
items:
  height: 50
  font: Monospace
`},
		{"YML", "yml", `
subtitle_band:
  color: 1122867
items:
  height: 50
  font: Monospace
`},
		{"JSON", ".json", `{
  "subtitle_band": {"color": 1122867},
  "items": {"height": 50, "font": "Monospace"}
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := LoadLayoutFromBytes([]byte(tt.data), tt.ext)
			if err != nil {
				t.Fatalf("LoadLayoutFromBytes() error = %v", err)
			}
			if layout.SubtitleBand.Color != 0x112233 {
				t.Errorf("SubtitleBand.Color = %#x, want 0x112233", layout.SubtitleBand.Color)
			}
			if layout.Items.Height != 50 {
				t.Errorf("Items.Height = %v, want 50", layout.Items.Height)
			}
			if layout.Items.Font != "Monospace" {
				t.Errorf("Items.Font = %q, want Monospace", layout.Items.Font)
			}

			// Untouched keys keep their defaults
			defaults := DefaultLayout()
			if layout.Banner != defaults.Banner {
				t.Errorf("Banner = %+v, want default %+v", layout.Banner, defaults.Banner)
			}
			if layout.Items.Width != defaults.Items.Width {
				t.Errorf("Items.Width = %v, want default %v", layout.Items.Width, defaults.Items.Width)
			}
		})
	}
}

func TestLoadLayoutFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{"UnknownFormat", ".ini", "a=b"},
		{"BrokenTOML", ".toml", "[items"},
		{"UnknownFont", ".toml", "[title]\nfont = \"ComicSans\""},
		{"UnknownAlignment", ".json", `{"subtitle": {"alignment": "justify"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadLayoutFromBytes([]byte(tt.data), tt.ext); err == nil {
				t.Error("LoadLayoutFromBytes() error = nil, want an error")
			}
		})
	}
}

func TestLoadLayoutFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte("[banner]\ntexture = \"shopui_title_carmod\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayoutFromFile(path)
	if err != nil {
		t.Fatalf("LoadLayoutFromFile() error = %v", err)
	}
	if layout.Banner.Texture != "shopui_title_carmod" {
		t.Errorf("Banner.Texture = %q", layout.Banner.Texture)
	}
	if layout.Banner.Dictionary != "commonmenu" {
		t.Errorf("Banner.Dictionary = %q, want default commonmenu", layout.Banner.Dictionary)
	}

	if _, err := LoadLayoutFromFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadLayoutFromFile() on a missing file returned no error")
	}
}

func TestDefaultLayoutIsValid(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Errorf("DefaultLayout().Validate() = %v", err)
	}
}
