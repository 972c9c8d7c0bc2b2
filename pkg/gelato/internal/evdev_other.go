//go:build !linux

package internal

import (
	"errors"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
)

var DefaultEvdevKeymap = map[uint16]constants.Control{}

// EvdevReader is only available on Linux.
type EvdevReader struct {
	*ControlState
}

func OpenEvdevReader(string, map[uint16]constants.Control) (*EvdevReader, error) {
	return nil, errors.New("evdev input is only supported on linux")
}

func (r *EvdevReader) Close() error {
	return nil
}
