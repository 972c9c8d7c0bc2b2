package elements

import (
	"testing"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
	"github.com/BrandonKowalski/gelato/pkg/gelato/platform/headless"
)

func withHost(t *testing.T, width, height float32) *headless.Host {
	t.Helper()
	h := headless.New(width, height)
	internal.SetHost(h)
	t.Cleanup(func() { internal.SetHost(nil) })
	return h
}

func TestScaledRectangle_Scales(t *testing.T) {
	tests := []struct {
		name     string
		height   float32
		wantPos  host.Point
		wantSize host.Size
	}{
		{"1080p", 1080, host.Point{X: 10, Y: 20}, host.Size{Width: 100, Height: 50}},
		{"720p", 720, host.Point{X: 10 * 720.0 / 1080, Y: 20 * 720.0 / 1080}, host.Size{Width: 100 * 720.0 / 1080, Height: 50 * 720.0 / 1080}},
		{"2160p", 2160, host.Point{X: 20, Y: 40}, host.Size{Width: 200, Height: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withHost(t, tt.height*16/9, tt.height)

			r := NewScaledRectangle(host.Point{X: 10, Y: 20}, host.Size{Width: 100, Height: 50})
			r.Process()

			call := h.CallsOf(headless.OpDrawRect)[0]
			pos := call.Args[0].(host.Point)
			size := call.Args[1].(host.Size)
			if !near(pos.X, tt.wantPos.X) || !near(pos.Y, tt.wantPos.Y) {
				t.Errorf("pos = %+v, want %+v", pos, tt.wantPos)
			}
			if !near(size.Width, tt.wantSize.Width) || !near(size.Height, tt.wantSize.Height) {
				t.Errorf("size = %+v, want %+v", size, tt.wantSize)
			}
		})
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 0.001 && d > -0.001
}

func TestScaledElements_RecalculateAfterResize(t *testing.T) {
	h := withHost(t, 1920, 1080)

	tex := NewScaledTexture(host.Point{}, host.Size{Width: 100, Height: 100}, "commonmenu", "interaction_bgd")
	h.SetResolution(3840, 2160)

	tex.Draw()
	if size := h.CallsOf(headless.OpDrawTexture)[0].Args[1].(host.Size); size.Width != 100 {
		t.Errorf("size changed before Recalculate: %+v", size)
	}

	h.Reset()
	tex.Recalculate()
	tex.Draw()
	if size := h.CallsOf(headless.OpDrawTexture)[0].Args[1].(host.Size); size.Width != 200 {
		t.Errorf("size after Recalculate = %+v, want width 200", size)
	}
}

func TestScaledText(t *testing.T) {
	h := withHost(t, 1920, 1080)

	text := NewScaledText(host.Point{X: 5, Y: 5}, "Hello", 0.5, constants.FontHouseScript)
	text.Alignment = constants.TextAlignCenter
	if text.PixelSize() != 20 {
		t.Errorf("PixelSize() = %v, want 20", text.PixelSize())
	}

	text.Process()
	call := h.CallsOf(headless.OpDrawText)[0]
	style := call.Args[2].(host.TextStyle)
	if style.Font != constants.FontHouseScript || style.Alignment != constants.TextAlignCenter || style.Size != 20 {
		t.Errorf("style = %+v", style)
	}

	h.Reset()
	text.Text = ""
	text.Draw()
	if len(h.Calls()) != 0 {
		t.Error("empty text was drawn")
	}
}

func TestElementsWithoutHost(t *testing.T) {
	internal.SetHost(nil)

	r := NewScaledRectangle(host.Point{}, host.Size{Width: 1, Height: 1})
	r.Process()
	NewScaledTexture(host.Point{}, host.Size{}, "a", "b").Process()
	NewScaledText(host.Point{}, "x", 1, constants.FontChaletLondon).Process()
}
