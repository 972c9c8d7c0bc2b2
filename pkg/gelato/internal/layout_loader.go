package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadLayoutFromFile reads a layout file. The format is chosen by extension:
// .toml, .yaml/.yml or .json. Keys missing from the file keep their defaults.
func LoadLayoutFromFile(filePath string) (Layout, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return LoadLayoutFromBytes(data, filepath.Ext(filePath))
}

// LoadLayoutFromBytes decodes layout data in the format named by ext.
func LoadLayoutFromBytes(data []byte, ext string) (Layout, error) {
	layout := DefaultLayout()

	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		err = toml.Unmarshal(data, &layout)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &layout)
	case "json":
		err = json.Unmarshal(data, &layout)
	default:
		return Layout{}, fmt.Errorf("unsupported layout format %q", ext)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("failed to decode layout: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}

	return layout, nil
}

// Validate checks that every font and alignment name is known.
func (l Layout) Validate() error {
	for _, name := range []string{l.Title.Font, l.Subtitle.Font, l.Items.Font} {
		if _, ok := constants.ParseFont(name); !ok {
			return fmt.Errorf("unknown font %q", name)
		}
	}
	for _, name := range []string{l.Title.Alignment, l.Subtitle.Alignment} {
		if _, ok := constants.ParseTextAlign(name); !ok {
			return fmt.Errorf("unknown alignment %q", name)
		}
	}
	return nil
}
