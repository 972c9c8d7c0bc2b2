package headless

import (
	"errors"
	"reflect"
	"testing"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
)

func TestHost_ScaleformHandles(t *testing.T) {
	h := New(1280, 720)

	first, err := h.LoadScaleform("A")
	if err != nil {
		t.Fatalf("LoadScaleform(A) error = %v", err)
	}
	second, err := h.LoadScaleform("B")
	if err != nil {
		t.Fatalf("LoadScaleform(B) error = %v", err)
	}

	if first == 0 || second == 0 || first == second {
		t.Errorf("handles = %d, %d; want distinct non-zero handles", first, second)
	}
	if h.LiveScaleforms() != 2 {
		t.Errorf("LiveScaleforms() = %d, want 2", h.LiveScaleforms())
	}

	h.ReleaseScaleform(first)
	if h.LiveScaleforms() != 1 {
		t.Errorf("LiveScaleforms() = %d after release, want 1", h.LiveScaleforms())
	}
}

func TestHost_FailScaleform(t *testing.T) {
	h := New(1280, 720)
	cause := errors.New("missing")
	h.FailScaleform("GONE", cause)

	handle, err := h.LoadScaleform("GONE")
	if !errors.Is(err, cause) {
		t.Errorf("LoadScaleform() error = %v, want %v", err, cause)
	}
	if handle != 0 || h.LiveScaleforms() != 0 {
		t.Error("failed load allocated a movie")
	}
}

func TestHost_RecordsCalls(t *testing.T) {
	h := New(1920, 1080)

	h.DrawRect(host.Point{X: 1, Y: 2}, host.Size{Width: 3, Height: 4}, host.White)
	h.DrawText(host.Point{}, "hi", host.TextStyle{Size: 10})
	h.CallScaleformFunction(7, "FN", 1, "two")

	want := []string{OpDrawRect, OpDrawText, OpCallScaleformFunction}
	if got := h.Ops(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ops() = %v, want %v", got, want)
	}

	call := h.CallsOf(OpCallScaleformFunction)[0]
	if !reflect.DeepEqual(call.Args, []any{host.Handle(7), "FN", 1, "two"}) {
		t.Errorf("call args = %v", call.Args)
	}

	h.Reset()
	if len(h.Calls()) != 0 {
		t.Error("Reset() kept calls")
	}
	if h.Resolution() != (host.Size{Width: 1920, Height: 1080}) {
		t.Errorf("Resolution() = %+v", h.Resolution())
	}
}

func TestHost_Controls(t *testing.T) {
	h := New(1920, 1080)

	h.Press(constants.ControlUp)
	h.BeginFrame()
	if !h.IsControlPressed(constants.ControlUp) || !h.IsControlJustPressed(constants.ControlUp) {
		t.Error("held Up not reported")
	}

	h.BeginFrame()
	if h.IsControlJustPressed(constants.ControlUp) {
		t.Error("Up still just pressed on the next frame")
	}

	h.Release(constants.ControlUp)
	h.Tap(constants.ControlAccept)
	if h.IsControlPressed(constants.ControlAccept) || !h.IsControlJustPressed(constants.ControlAccept) {
		t.Error("Tap should read as just pressed but not held")
	}
}
