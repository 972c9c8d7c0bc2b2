package gelato_test

import (
	"reflect"
	"testing"

	"github.com/BrandonKowalski/gelato/pkg/gelato"
	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/platform/headless"
)

type recorder struct {
	name  string
	log   *[]string
	calcs int
}

func (r *recorder) Process() {
	*r.log = append(*r.log, r.name)
}

func (r *recorder) Recalculate() {
	r.calcs++
}

func TestPool_AddRemove(t *testing.T) {
	newTestHost(t)

	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	p := gelato.NewPool()
	p.Add(a)
	p.Add(b)
	p.Add(a)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}

	p.Process()
	if !reflect.DeepEqual(log, []string{"a", "b"}) {
		t.Errorf("processed %v, want [a b]", log)
	}

	p.Remove(a)
	if p.Contains(a) || !p.Contains(b) {
		t.Error("Remove(a) removed the wrong object")
	}
}

func TestPool_RecalculatesOnResolutionChange(t *testing.T) {
	h := newTestHost(t)

	var log []string
	r := &recorder{name: "r", log: &log}

	p := gelato.NewPool()
	p.Add(r)

	p.Process()
	p.Process()
	if r.calcs != 1 {
		t.Errorf("Recalculate called %d times at a stable resolution, want 1", r.calcs)
	}

	h.SetResolution(1280, 720)
	p.Process()
	if r.calcs != 2 {
		t.Errorf("Recalculate called %d times after resize, want 2", r.calcs)
	}
}

func TestPool_MenusAndScaleforms(t *testing.T) {
	h := newTestHost(t)

	first := gelato.NewMenu("First", "")
	second := gelato.NewMenu("Second", "")
	bm, err := gelato.NewBigMessage("Title", "Message")
	if err != nil {
		t.Fatalf("NewBigMessage() error = %v", err)
	}

	p := gelato.NewPool()
	p.Add(first)
	p.Add(second)
	p.Add(bm)

	if p.AreAnyVisible() {
		t.Error("AreAnyVisible() = true with every menu hidden")
	}

	second.SetVisible(true)
	bm.SetVisible(true)
	if !p.AreAnyVisible() {
		t.Error("AreAnyVisible() = false with a visible menu")
	}

	h.Reset()
	p.Process()
	if n := len(h.CallsOf(headless.OpDrawScaleformFullscreen)); n != 1 {
		t.Errorf("fullscreen draws = %d, want 1", n)
	}
	if texts := drawnTexts(h); len(texts) == 0 || texts[0] != "Second" {
		t.Errorf("drawn texts = %v, want the visible menu only", texts)
	}

	p.HideAll()
	if p.AreAnyVisible() || bm.Visible() {
		t.Error("HideAll() left something visible")
	}

	p.Dispose()
	if h.LiveScaleforms() != 0 {
		t.Errorf("LiveScaleforms() = %d after Dispose, want 0", h.LiveScaleforms())
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Dispose, want 0", p.Len())
	}
}

func TestPool_HideAllRespectsCancel(t *testing.T) {
	newTestHost(t)

	m := gelato.NewMenu("Sticky", "")
	m.SetVisible(true)
	m.Closing.Subscribe(func(_ any, args *gelato.CancelEventArgs) { args.Cancel = true })

	p := gelato.NewPool()
	p.Add(m)
	p.HideAll()

	if !m.Visible() {
		t.Error("HideAll() hid a menu whose close was canceled")
	}
}

func TestPool_ForEach(t *testing.T) {
	newTestHost(t)

	p := gelato.NewPool()
	p.Add(gelato.NewMenu("A", ""))
	p.Add(&recorder{name: "r", log: new([]string)})
	p.Add(gelato.NewMenu("B", ""))

	var titles []string
	gelato.ForEach(p, func(m *gelato.Menu) {
		title, _ := m.Title()
		titles = append(titles, title)
	})

	if !reflect.DeepEqual(titles, []string{"A", "B"}) {
		t.Errorf("ForEach(*Menu) visited %v, want [A B]", titles)
	}
}

func TestPool_ProcessTolerantOfRemoval(t *testing.T) {
	newTestHost(t)

	var log []string
	p := gelato.NewPool()
	b := &recorder{name: "b", log: &log}
	remover := &selfRemover{pool: p, log: &log}
	remover.target = b
	p.Add(remover)
	p.Add(b)

	p.Process()
	if !reflect.DeepEqual(log, []string{"remover", "b"}) {
		t.Errorf("processed %v, want the frame to finish with the original list", log)
	}

	log = nil
	p.Process()
	if !reflect.DeepEqual(log, []string{"remover"}) {
		t.Errorf("processed %v, want [remover]", log)
	}
}

type selfRemover struct {
	pool   *gelato.Pool
	target gelato.Processable
	log    *[]string
}

func (s *selfRemover) Process() {
	*s.log = append(*s.log, "remover")
	s.pool.Remove(s.target)
}

func newSubMenuPair(t *testing.T) (parent, child *gelato.Menu, leafActivations *int) {
	t.Helper()

	parent = gelato.NewMenu("Main", "Options")
	child = gelato.NewMenu("Video", "Display settings")
	parent.Add(gelato.NewSubMenuItem("Video", child))

	leaf := gelato.NewMenuItem("Resolution")
	leafActivations = new(int)
	leaf.Activated.Subscribe(func(any, gelato.EventArgs) { *leafActivations++ })
	child.Add(leaf)

	return parent, child, leafActivations
}

func TestPool_AcceptOpensSubMenuOnce(t *testing.T) {
	h := newTestHost(t)
	parent, child, leafActivations := newSubMenuPair(t)

	p := gelato.NewPool()
	p.Add(parent)
	p.Add(child)
	parent.SetVisible(true)

	h.Tap(constants.ControlAccept)
	p.Process()

	if parent.Visible() || !child.Visible() {
		t.Fatalf("parent visible = %v, child visible = %v; want only the submenu", parent.Visible(), child.Visible())
	}
	if *leafActivations != 0 {
		t.Errorf("one Accept activated the submenu item %d times, want 0", *leafActivations)
	}

	h.Tap(constants.ControlAccept)
	p.Process()
	if *leafActivations != 1 {
		t.Errorf("submenu item activated %d times on the next Accept, want 1", *leafActivations)
	}
}

func TestPool_BackReturnsToParentOnce(t *testing.T) {
	tests := []struct {
		name       string
		childFirst bool
	}{
		{"child before parent", true},
		{"parent before child", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHost(t)
			parent, child, _ := newSubMenuPair(t)

			p := gelato.NewPool()
			if tt.childFirst {
				p.Add(child)
				p.Add(parent)
			} else {
				p.Add(parent)
				p.Add(child)
			}
			parent.SetVisible(true)
			parent.Select()

			h.Tap(constants.ControlBack)
			p.Process()

			if !parent.Visible() || child.Visible() {
				t.Fatalf("parent visible = %v, child visible = %v; want only the parent", parent.Visible(), child.Visible())
			}

			h.Tap(constants.ControlBack)
			p.Process()
			if parent.Visible() {
				t.Error("parent ignored the next Back")
			}
		})
	}
}

// frameless hides the frame counter of the wrapped host.
type frameless struct {
	host.Host
}

func TestPool_SubMenuWithoutFrameCounter(t *testing.T) {
	h := headless.New(1920, 1080)
	if err := gelato.Init(gelato.Options{Host: frameless{h}}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(gelato.Close)

	parent, child, leafActivations := newSubMenuPair(t)
	p := gelato.NewPool()
	p.Add(parent)
	p.Add(child)
	parent.SetVisible(true)

	h.Tap(constants.ControlAccept)
	p.Process()
	if !child.Visible() || *leafActivations != 0 {
		t.Fatalf("child visible = %v, activations = %d; want the submenu open and untouched", child.Visible(), *leafActivations)
	}

	h.Tap(constants.ControlAccept)
	p.Process()
	if *leafActivations != 1 {
		t.Errorf("submenu item activated %d times on the next Accept, want 1", *leafActivations)
	}
}

func TestPool_DrawDoesNotReadControls(t *testing.T) {
	h := newTestHost(t)
	m := newVisibleMenu(t, h, "A", "B", "C")

	p := gelato.NewPool()
	p.Add(m)

	h.Tap(constants.ControlDown)
	p.HandleControls()
	p.Draw()
	p.Draw()
	p.Draw()
	if m.Index() != 1 {
		t.Errorf("Index() = %d after one Down and three draws, want 1", m.Index())
	}

	h.Tap(constants.ControlDown)
	p.Draw()
	if m.Index() != 1 {
		t.Errorf("Draw moved the selection to %d", m.Index())
	}

	h.Reset()
	p.Draw()
	if texts := drawnTexts(h); len(texts) == 0 || texts[0] != "Main" {
		t.Errorf("drawn texts = %v, want the menu drawn", texts)
	}
}
