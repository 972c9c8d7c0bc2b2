package gelato

import "reflect"

// Processable is anything advanced and drawn once per rendered frame.
type Processable interface {
	Process()
}

// Recalculator recomputes positions and sizes after a resolution change.
type Recalculator interface {
	Recalculate()
}

// Drawable is a header element of a menu: banner image or text, subtitle band or text.
type Drawable interface {
	Processable
	Recalculator
	Draw()
}

// ControlHandler reads host controls once per input frame.
type ControlHandler interface {
	HandleControls()
}

// Disposer releases host resources.
type Disposer interface {
	Dispose()
}

// sameObject reports whether a and b are the same value. Values of types
// that cannot be compared with == are never the same.
func sameObject(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
