package internal

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
)

// MovieText is a text label found in a rendered movie. oksvg does not
// rasterize <text>, so hosts draw these on top of the movie raster.
// Coordinates are in view box units.
type MovieText struct {
	X, Y  float32
	Size  float32
	Color color.RGBA
	Align constants.TextAlign
	Text  string
}

// MovieTexts holds the labels of a movie and the view box they are placed in.
type MovieTexts struct {
	ViewWidth  float32
	ViewHeight float32
	Labels     []MovieText
}

// ExtractMovieText collects every non-empty <text> element of an SVG document.
func ExtractMovieText(svg []byte) (MovieTexts, error) {
	var result MovieTexts

	decoder := xml.NewDecoder(bytes.NewReader(svg))
	var current *MovieText
	var content strings.Builder

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return MovieTexts{}, fmt.Errorf("failed to scan movie text: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "svg":
				result.ViewWidth, result.ViewHeight = parseViewBox(t.Attr)
			case "text":
				current = parseTextElement(t.Attr)
				content.Reset()
			}
		case xml.CharData:
			if current != nil {
				content.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "text" && current != nil {
				current.Text = strings.TrimSpace(content.String())
				if current.Text != "" {
					result.Labels = append(result.Labels, *current)
				}
				current = nil
			}
		}
	}

	return result, nil
}

func parseViewBox(attrs []xml.Attr) (float32, float32) {
	var width, height float32
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			fields := strings.Fields(strings.ReplaceAll(attr.Value, ",", " "))
			if len(fields) == 4 {
				width = parseFloat(fields[2])
				height = parseFloat(fields[3])
				return width, height
			}
		case "width":
			width = parseFloat(attr.Value)
		case "height":
			height = parseFloat(attr.Value)
		}
	}
	return width, height
}

func parseTextElement(attrs []xml.Attr) *MovieText {
	text := &MovieText{Size: 16, Color: color.RGBA{A: 255}}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			text.X = parseFloat(attr.Value)
		case "y":
			text.Y = parseFloat(attr.Value)
		case "font-size":
			text.Size = parseFloat(attr.Value)
		case "fill":
			if c, err := ParseHexColor(attr.Value); err == nil {
				text.Color = c
			}
		case "text-anchor":
			switch attr.Value {
			case "middle":
				text.Align = constants.TextAlignCenter
			case "end":
				text.Align = constants.TextAlignRight
			}
		}
	}
	return text
}

func parseFloat(s string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

// Placement converts the SVG baseline position to the top-left origin hosts
// draw text from, scaled to the target.
func (t MovieText) Placement(sx, sy float32) (host.Point, host.TextStyle) {
	size := t.Size * sy
	return host.Point{X: t.X * sx, Y: (t.Y - t.Size*0.8) * sy}, host.TextStyle{
		Font:      constants.FontChaletLondon,
		Size:      size,
		Color:     t.Color,
		Alignment: t.Align,
	}
}
