package internal

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"image"
	"os"
	"path/filepath"
	"reflect"
	"text/template"
)

//go:embed movies/*.svg
var builtinMovies embed.FS

// Movie is a scaleform movie backed by an SVG text/template.
// Function calls pushed into the movie become template data:
//
//	<text>{{arg "SHOW_SHARD_WASTED_MP_MESSAGE" 0}}</text>
//	{{if called "SHOW_SHARD_WASTED_MP_MESSAGE"}}...{{end}}
type Movie struct {
	Name   string
	tmpl   *template.Template
	calls  map[string][]any
	dirty  bool
	width  int
	height int
}

// NewMovie parses the SVG template of a movie.
func NewMovie(name string, source []byte) (*Movie, error) {
	m := &Movie{
		Name:  name,
		calls: make(map[string][]any),
		dirty: true,
	}

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"arg":    m.arg,
		"called": m.called,
	}).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse movie %s: %w", name, err)
	}

	m.tmpl = tmpl
	return m, nil
}

func (m *Movie) arg(function string, index int) string {
	args := m.calls[function]
	if index < 0 || index >= len(args) {
		return ""
	}
	return html.EscapeString(fmt.Sprint(args[index]))
}

func (m *Movie) called(function string) bool {
	_, ok := m.calls[function]
	return ok
}

// Call records the latest arguments of a movie function. Repeating the
// previous call with equal arguments does not mark the movie for rendering.
func (m *Movie) Call(function string, args ...any) {
	copied := make([]any, len(args))
	copy(copied, args)

	if previous, ok := m.calls[function]; ok && reflect.DeepEqual(previous, copied) {
		return
	}

	m.calls[function] = copied
	m.dirty = true
}

// Args returns the arguments of the last call to function.
func (m *Movie) Args(function string) ([]any, bool) {
	args, ok := m.calls[function]
	return args, ok
}

// NeedsRender reports whether the movie must be rasterized again for this size.
func (m *Movie) NeedsRender(width, height int) bool {
	return m.dirty || width != m.width || height != m.height
}

// Render executes the template and returns the SVG source.
func (m *Movie) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("failed to execute movie %s: %w", m.Name, err)
	}
	return buf.Bytes(), nil
}

// Frame is a rasterized movie and the text labels to draw over it.
type Frame struct {
	Image *image.RGBA
	Texts MovieTexts
}

// Rasterize renders the movie at the given size and clears the dirty state.
func (m *Movie) Rasterize(width, height int) (Frame, error) {
	source, err := m.Render()
	if err != nil {
		return Frame{}, err
	}

	texts, err := ExtractMovieText(source)
	if err != nil {
		return Frame{}, err
	}

	img, err := RasterizeSVG(source, width, height)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to rasterize movie %s: %w", m.Name, err)
	}

	m.dirty = false
	m.width = width
	m.height = height
	return Frame{Image: img, Texts: texts}, nil
}

// Scale returns the factors from view box units to a target of width x height.
func (t MovieTexts) Scale(width, height float32) (float32, float32) {
	sx, sy := float32(1), float32(1)
	if t.ViewWidth > 0 {
		sx = width / t.ViewWidth
	}
	if t.ViewHeight > 0 {
		sy = height / t.ViewHeight
	}
	return sx, sy
}

// MovieLibrary resolves movie names to SVG templates. Registered sources win,
// then <root>/scaleform/<name>.svg, then the movies built into gelato.
type MovieLibrary struct {
	root    string
	sources map[string][]byte
}

func NewMovieLibrary(root string) *MovieLibrary {
	return &MovieLibrary{
		root:    root,
		sources: make(map[string][]byte),
	}
}

func (l *MovieLibrary) Register(name string, source []byte) {
	l.sources[name] = source
}

func (l *MovieLibrary) Open(name string) (*Movie, error) {
	if source, ok := l.sources[name]; ok {
		return NewMovie(name, source)
	}

	if l.root != "" {
		source, err := os.ReadFile(filepath.Join(l.root, "scaleform", name+".svg"))
		if err == nil {
			return NewMovie(name, source)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read movie %s: %w", name, err)
		}
	}

	source, err := builtinMovies.ReadFile("movies/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("movie %s not found", name)
	}
	return NewMovie(name, source)
}
