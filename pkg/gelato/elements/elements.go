// Package elements provides the scaled drawables that menus are built from.
//
// Elements are authored in a 1080-pixel-high reference space and converted to
// screen pixels by Recalculate. Process and Draw are the same operation.
package elements

import (
	"image/color"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
)

// ScaledRectangle is a solid colored rectangle.
type ScaledRectangle struct {
	Position host.Point
	Size     host.Size
	Color    color.RGBA

	absPosition host.Point
	absSize     host.Size
}

func NewScaledRectangle(pos host.Point, size host.Size) *ScaledRectangle {
	r := &ScaledRectangle{Position: pos, Size: size, Color: host.White}
	r.Recalculate()
	return r
}

func (r *ScaledRectangle) Recalculate() {
	r.absPosition, r.absSize = internal.ToAbsolute(r.Position, r.Size)
}

func (r *ScaledRectangle) Draw() {
	h := internal.GetHost()
	if h == nil {
		return
	}
	h.DrawRect(r.absPosition, r.absSize, r.Color)
}

func (r *ScaledRectangle) Process() { r.Draw() }

// ScaledTexture draws a texture from a texture dictionary.
type ScaledTexture struct {
	Position   host.Point
	Size       host.Size
	Dictionary string
	Name       string
	Heading    float32 // Rotation in degrees
	Color      color.RGBA

	absPosition host.Point
	absSize     host.Size
}

func NewScaledTexture(pos host.Point, size host.Size, dictionary, name string) *ScaledTexture {
	t := &ScaledTexture{
		Position:   pos,
		Size:       size,
		Dictionary: dictionary,
		Name:       name,
		Color:      host.White,
	}
	t.Recalculate()
	return t
}

func (t *ScaledTexture) Recalculate() {
	t.absPosition, t.absSize = internal.ToAbsolute(t.Position, t.Size)
}

func (t *ScaledTexture) Draw() {
	h := internal.GetHost()
	if h == nil {
		return
	}
	h.DrawTexture(t.absPosition, t.absSize, t.Dictionary, t.Name, t.Heading, t.Color)
}

func (t *ScaledTexture) Process() { t.Draw() }

// ScaledText is a single line of text.
type ScaledText struct {
	Position  host.Point
	Text      string
	Scale     float32
	Font      constants.Font
	Color     color.RGBA
	Alignment constants.TextAlign

	absPosition host.Point
	absSize     float32
}

func NewScaledText(pos host.Point, text string, scale float32, font constants.Font) *ScaledText {
	t := &ScaledText{
		Position: pos,
		Text:     text,
		Scale:    scale,
		Font:     font,
		Color:    host.White,
	}
	t.Recalculate()
	return t
}

func (t *ScaledText) Recalculate() {
	f := internal.ScaleFactor()
	t.absPosition = host.Point{X: t.Position.X * f, Y: t.Position.Y * f}
	t.absSize = t.Scale * constants.TextBaseHeight * f
}

// PixelSize returns the text height in screen pixels after the last Recalculate.
func (t *ScaledText) PixelSize() float32 {
	return t.absSize
}

func (t *ScaledText) Draw() {
	h := internal.GetHost()
	if h == nil || t.Text == "" {
		return
	}
	h.DrawText(t.absPosition, t.Text, host.TextStyle{
		Font:      t.Font,
		Size:      t.absSize,
		Color:     t.Color,
		Alignment: t.Alignment,
	})
}

func (t *ScaledText) Process() { t.Draw() }
