package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ParseHexColor accepts "0xRRGGBB", "#RRGGBB" or "RRGGBB".
func ParseHexColor(hexStr string) (color.RGBA, error) {
	hexStr = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hexStr), "0x"), "#")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hexStr, err)
	}

	return HexToColor(uint32(hex)), nil
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
