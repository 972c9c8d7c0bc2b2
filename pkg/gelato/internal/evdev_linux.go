//go:build linux

package internal

import (
	"fmt"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// DefaultEvdevKeymap covers keyboards and the d-pad/face buttons of most
// handheld gamepads.
var DefaultEvdevKeymap = map[uint16]constants.Control{
	uint16(evdev.KEY_UP):         constants.ControlUp,
	uint16(evdev.KEY_DOWN):       constants.ControlDown,
	uint16(evdev.KEY_LEFT):       constants.ControlLeft,
	uint16(evdev.KEY_RIGHT):      constants.ControlRight,
	uint16(evdev.KEY_ENTER):      constants.ControlAccept,
	uint16(evdev.KEY_BACKSPACE):  constants.ControlBack,
	uint16(evdev.KEY_ESC):        constants.ControlBack,
	uint16(evdev.BTN_DPAD_UP):    constants.ControlUp,
	uint16(evdev.BTN_DPAD_DOWN):  constants.ControlDown,
	uint16(evdev.BTN_DPAD_LEFT):  constants.ControlLeft,
	uint16(evdev.BTN_DPAD_RIGHT): constants.ControlRight,
	uint16(evdev.BTN_SOUTH):      constants.ControlAccept,
	uint16(evdev.BTN_EAST):       constants.ControlBack,
}

// EvdevReader reads key events from a Linux input device on its own goroutine.
type EvdevReader struct {
	*ControlState
	device *evdev.InputDevice
	keymap map[uint16]constants.Control
	closed *atomic.Bool
}

// OpenEvdevReader opens the device and starts reading. A nil keymap uses DefaultEvdevKeymap.
func OpenEvdevReader(devicePath string, keymap map[uint16]constants.Control) (*EvdevReader, error) {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", devicePath, err)
	}

	if keymap == nil {
		keymap = DefaultEvdevKeymap
	}

	r := &EvdevReader{
		ControlState: NewControlState(),
		device:       device,
		keymap:       keymap,
		closed:       atomic.NewBool(false),
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Opened evdev control device", "path", devicePath, "name", name)

	go r.run()

	return r, nil
}

func (r *EvdevReader) run() {
	logger := GetInternalLogger()

	for {
		event, err := r.device.ReadOne()
		if err != nil {
			if !r.closed.Load() {
				logger.Error("Evdev read failed, controls from this device stop", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY {
			continue
		}

		control, ok := r.keymap[uint16(event.Code)]
		if !ok {
			continue
		}

		// Value 2 is autorepeat; held state is already set
		switch event.Value {
		case 1:
			r.Press(control, true)
		case 0:
			r.Press(control, false)
		}
	}
}

// Close stops the reader. The goroutine exits when the pending read fails.
func (r *EvdevReader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.device.Close()
}
