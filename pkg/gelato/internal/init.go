// Package internal contains the shared infrastructure for the gelato overlay toolkit.
// This includes the active host, logging, layout configuration, input repeat timing
// and vector movie rasterization.
// Types and functions in this package are not part of the public API.
package internal

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
)

var activeHost host.Host

// SetHost sets the host used by every element, menu and scaleform.
func SetHost(h host.Host) {
	activeHost = h
}

// GetHost returns the active host, or nil before Init.
func GetHost() host.Host {
	return activeHost
}

// ScaleFactor returns the multiplier from reference space to screen pixels.
// It is 1 when no host is set or the host reports no height.
func ScaleFactor() float32 {
	if activeHost == nil {
		return 1
	}
	res := activeHost.Resolution()
	if res.Height <= 0 {
		return 1
	}
	return res.Height / constants.ReferenceHeight
}

// ToAbsolute converts a reference-space position and size to screen pixels.
func ToAbsolute(pos host.Point, size host.Size) (host.Point, host.Size) {
	f := ScaleFactor()
	return host.Point{X: pos.X * f, Y: pos.Y * f}, host.Size{Width: size.Width * f, Height: size.Height * f}
}
