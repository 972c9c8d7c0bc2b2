package gelato

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
)

// Pool processes a set of menus, scaleforms and other Processables every frame.
// Objects are processed in the order they were added.
type Pool struct {
	objects        []Processable
	lastResolution host.Size
}

func NewPool() *Pool {
	return &Pool{}
}

// Add appends an object. Adding an object twice is ignored.
func (p *Pool) Add(obj Processable) {
	if p.Contains(obj) {
		return
	}
	p.objects = append(p.objects, obj)
}

// Remove drops an object from the pool.
func (p *Pool) Remove(obj Processable) {
	for i, o := range p.objects {
		if sameObject(o, obj) {
			p.objects = append(p.objects[:i], p.objects[i+1:]...)
			return
		}
	}
}

func (p *Pool) Contains(obj Processable) bool {
	for _, o := range p.objects {
		if sameObject(o, obj) {
			return true
		}
	}
	return false
}

func (p *Pool) Len() int {
	return len(p.objects)
}

// ForEach calls fn for every object of type T.
func ForEach[T any](p *Pool, fn func(T)) {
	for _, o := range p.objects {
		if t, ok := o.(T); ok {
			fn(t)
		}
	}
}

// Process recalculates everything if the resolution changed since the last
// frame, then processes every object. Use it when input and drawing happen in
// the same loop; otherwise call HandleControls and Draw separately.
func (p *Pool) Process() {
	p.refreshOnResize()

	for _, o := range p.snapshot() {
		o.Process()
	}
}

// HandleControls lets every ControlHandler react to the current input frame.
func (p *Pool) HandleControls() {
	for _, o := range p.snapshot() {
		if c, ok := o.(ControlHandler); ok {
			c.HandleControls()
		}
	}
}

// Draw recalculates on a resolution change and draws every object without
// reading controls. Objects that cannot draw separately are processed.
func (p *Pool) Draw() {
	p.refreshOnResize()

	for _, o := range p.snapshot() {
		if d, ok := o.(interface{ Draw() }); ok {
			d.Draw()
		} else {
			o.Process()
		}
	}
}

func (p *Pool) refreshOnResize() {
	h := internal.GetHost()
	if h == nil {
		return
	}

	res := h.Resolution()
	if res == p.lastResolution {
		return
	}
	if p.lastResolution != (host.Size{}) {
		internal.GetInternalLogger().Debug("Resolution changed",
			"width", res.Width,
			"height", res.Height,
		)
	}
	p.lastResolution = res
	p.RefreshAll()
}

// snapshot copies the object list; processing may add or remove objects.
func (p *Pool) snapshot() []Processable {
	objects := make([]Processable, len(p.objects))
	copy(objects, p.objects)
	return objects
}

// RefreshAll recalculates every object that supports it.
func (p *Pool) RefreshAll() {
	ForEach(p, func(r Recalculator) {
		r.Recalculate()
	})
}

// HideAll hides every menu and scaleform. Menus whose close is canceled stay visible.
func (p *Pool) HideAll() {
	ForEach(p, func(v interface{ SetVisible(bool) }) {
		v.SetVisible(false)
	})
}

// AreAnyVisible reports whether any menu in the pool is visible.
func (p *Pool) AreAnyVisible() bool {
	visible := false
	ForEach(p, func(m *Menu) {
		if m.Visible() {
			visible = true
		}
	})
	return visible
}

// Dispose releases every object that holds host resources and empties the pool.
func (p *Pool) Dispose() {
	ForEach(p, func(d Disposer) {
		d.Dispose()
	})
	p.objects = nil
}
