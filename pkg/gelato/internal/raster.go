package internal

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// IsSVG checks if the data looks like an SVG document.
func IsSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

// RasterizeSVG renders an SVG document into an RGBA image of the given size.
// A zero width or height falls back to the document's view box.
func RasterizeSVG(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width <= 0 || height <= 0 {
		width = int(icon.ViewBox.W)
		height = int(icon.ViewBox.H)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("SVG has no usable size")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	return img, nil
}

// DecodeTexture decodes PNG, JPEG or SVG data. SVG documents are rasterized
// at width x height; raster images keep their own size.
func DecodeTexture(data []byte, width, height int) (image.Image, error) {
	if IsSVG(data) {
		return RasterizeSVG(data, width, height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture: %w", err)
	}
	return img, nil
}
