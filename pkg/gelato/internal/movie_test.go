package internal

import (
	"image/color"
	"strings"
	"testing"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
)

const testMovie = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100" width="200" height="100">
  <rect x="0" y="0" width="200" height="100" fill="#FF0000"/>
{{- if called "SET_TEXT"}}
  <text x="100" y="50" font-size="20" fill="#00FF00" text-anchor="middle">{{arg "SET_TEXT" 0}}</text>
{{- end}}
</svg>`

func TestMovie_RenderUsesCalls(t *testing.T) {
	m, err := NewMovie("TEST", []byte(testMovie))
	if err != nil {
		t.Fatalf("NewMovie() error = %v", err)
	}

	out, err := m.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(string(out), "<text") {
		t.Error("text rendered before SET_TEXT was called")
	}

	m.Call("SET_TEXT", "<Hello & bye>")
	out, err = m.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), "&lt;Hello &amp; bye&gt;") {
		t.Errorf("argument not escaped into the movie:\n%s", out)
	}

	args, ok := m.Args("SET_TEXT")
	if !ok || len(args) != 1 || args[0] != "<Hello & bye>" {
		t.Errorf("Args(SET_TEXT) = %v, %v", args, ok)
	}
}

func TestMovie_Rasterize(t *testing.T) {
	m, err := NewMovie("TEST", []byte(testMovie))
	if err != nil {
		t.Fatalf("NewMovie() error = %v", err)
	}
	m.Call("SET_TEXT", "Wasted")

	if !m.NeedsRender(400, 200) {
		t.Fatal("NeedsRender() = false for a new movie")
	}

	frame, err := m.Rasterize(400, 200)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	if b := frame.Image.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("image size = %dx%d, want 400x200", b.Dx(), b.Dy())
	}
	if got := frame.Image.RGBAAt(200, 100); got.R < 200 || got.G > 50 || got.A < 200 {
		t.Errorf("center pixel = %v, want opaque red", got)
	}

	if len(frame.Texts.Labels) != 1 {
		t.Fatalf("labels = %v, want one", frame.Texts.Labels)
	}
	label := frame.Texts.Labels[0]
	if label.Text != "Wasted" || label.Align != constants.TextAlignCenter {
		t.Errorf("label = %+v", label)
	}
	if label.Color != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("label color = %v, want green", label.Color)
	}

	if m.NeedsRender(400, 200) {
		t.Error("NeedsRender() = true right after Rasterize")
	}
	if !m.NeedsRender(800, 400) {
		t.Error("NeedsRender() = false after a size change")
	}
	m.Call("SET_TEXT", "Passed")
	if !m.NeedsRender(400, 200) {
		t.Error("NeedsRender() = false after a new call")
	}
}

func TestMovie_RepeatedCallKeepsFrame(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want bool
	}{
		{"same args", []any{"Title", "Msg"}, false},
		{"changed arg", []any{"Title", "Other"}, true},
		{"extra arg", []any{"Title", "Msg", 3}, true},
		{"fewer args", []any{"Title"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMovie("TEST", []byte(testMovie))
			if err != nil {
				t.Fatalf("NewMovie() error = %v", err)
			}

			m.Call("SET_TEXT", "Title", "Msg")
			if _, err := m.Rasterize(640, 360); err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}

			m.Call("SET_TEXT", tt.args...)
			if got := m.NeedsRender(640, 360); got != tt.want {
				t.Errorf("NeedsRender() after Call(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestMovieText_Placement(t *testing.T) {
	texts := MovieTexts{
		ViewWidth:  1920,
		ViewHeight: 1080,
		Labels: []MovieText{
			{X: 960, Y: 530, Size: 100, Color: color.RGBA{R: 255, A: 255}, Align: constants.TextAlignCenter, Text: "x"},
		},
	}

	sx, sy := texts.Scale(960, 540)
	if sx != 0.5 || sy != 0.5 {
		t.Fatalf("Scale() = %v, %v; want 0.5, 0.5", sx, sy)
	}

	pos, style := texts.Labels[0].Placement(sx, sy)
	if pos.X != 480 || pos.Y != 225 {
		t.Errorf("Placement() pos = %+v, want {480 225}", pos)
	}
	if style.Size != 50 || style.Alignment != constants.TextAlignCenter {
		t.Errorf("Placement() style = %+v", style)
	}
}

func TestExtractMovieText(t *testing.T) {
	svg := `<svg viewBox="0,0,640,480">
  <text x="10" y="20">  </text>
  <text x="30px" y="40" font-size="12" fill="#FFFFFF" text-anchor="end">Right</text>
</svg>`

	texts, err := ExtractMovieText([]byte(svg))
	if err != nil {
		t.Fatalf("ExtractMovieText() error = %v", err)
	}
	if texts.ViewWidth != 640 || texts.ViewHeight != 480 {
		t.Errorf("view box = %vx%v, want 640x480", texts.ViewWidth, texts.ViewHeight)
	}
	if len(texts.Labels) != 1 {
		t.Fatalf("labels = %+v, want the non-empty one only", texts.Labels)
	}
	l := texts.Labels[0]
	if l.X != 30 || l.Y != 40 || l.Size != 12 || l.Align != constants.TextAlignRight {
		t.Errorf("label = %+v", l)
	}

	if _, err := ExtractMovieText([]byte("<svg><text>")); err == nil {
		t.Error("ExtractMovieText() accepted truncated XML")
	}
}

func TestMovieLibrary_Open(t *testing.T) {
	lib := NewMovieLibrary(t.TempDir())

	if _, err := lib.Open("MP_BIG_MESSAGE_FREEMODE"); err != nil {
		t.Errorf("Open(builtin) error = %v", err)
	}

	lib.Register("CUSTOM", []byte(testMovie))
	m, err := lib.Open("CUSTOM")
	if err != nil {
		t.Fatalf("Open(registered) error = %v", err)
	}
	if m.Name != "CUSTOM" {
		t.Errorf("Name = %q", m.Name)
	}

	if _, err := lib.Open("NOT_A_MOVIE"); err == nil {
		t.Error("Open() of an unknown movie returned no error")
	}

	lib.Register("BROKEN", []byte("{{if}}"))
	if _, err := lib.Open("BROKEN"); err == nil {
		t.Error("Open() of a broken template returned no error")
	}
}

func TestRasterizeSVG_ViewBoxSize(t *testing.T) {
	img, err := RasterizeSVG([]byte(`<svg viewBox="0 0 32 16"><rect width="32" height="16" fill="#0000FF"/></svg>`), 0, 0)
	if err != nil {
		t.Fatalf("RasterizeSVG() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("size = %dx%d, want 32x16", b.Dx(), b.Dy())
	}
}

func TestTextureLibrary_Builtin(t *testing.T) {
	lib := NewTextureLibrary("")

	data, err := lib.Open("commonmenu", "interaction_bgd")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !IsSVG(data) {
		t.Error("built-in banner is not SVG")
	}

	img, err := DecodeTexture(data, 100, 25)
	if err != nil {
		t.Fatalf("DecodeTexture() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 25 {
		t.Errorf("decoded size = %dx%d, want 100x25", b.Dx(), b.Dy())
	}

	if _, err := lib.Open("commonmenu", "missing"); err == nil {
		t.Error("Open() of a missing texture returned no error")
	}
}

func TestHexColors(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"0xFF8000", color.RGBA{R: 255, G: 128, A: 255}},
		{"#00ff00", color.RGBA{G: 255, A: 255}},
		{"0000FF", color.RGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseHexColor("zz"); err == nil {
		t.Error("ParseHexColor(zz) returned no error")
	}
}
