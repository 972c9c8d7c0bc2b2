package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed textures
var builtinTextures embed.FS

// textureExtensions are tried in order when resolving a texture file.
var textureExtensions = []string{".png", ".svg", ".jpg", ".jpeg"}

// TextureLibrary resolves dictionary/name pairs to encoded image data. Files
// under <root>/textures/<dictionary>/ win over the textures built into gelato.
type TextureLibrary struct {
	root string
}

func NewTextureLibrary(root string) *TextureLibrary {
	return &TextureLibrary{root: root}
}

// TextureKey returns the cache key of a texture.
func TextureKey(dictionary, name string) string {
	return dictionary + "/" + name
}

// Open returns the encoded bytes of a texture. SVG data is returned as is;
// use IsSVG to decide how to decode it.
func (l *TextureLibrary) Open(dictionary, name string) ([]byte, error) {
	if l.root != "" {
		for _, ext := range textureExtensions {
			data, err := os.ReadFile(filepath.Join(l.root, "textures", dictionary, name+ext))
			if err == nil {
				return data, nil
			}
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read texture %s: %w", TextureKey(dictionary, name), err)
			}
		}
	}

	for _, ext := range textureExtensions {
		data, err := builtinTextures.ReadFile("textures/" + dictionary + "/" + name + ext)
		if err == nil {
			return data, nil
		}
	}

	return nil, fmt.Errorf("texture %s not found", TextureKey(dictionary, name))
}
