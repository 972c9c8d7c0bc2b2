package gelato

import (
	"image/color"

	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/elements"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
)

// Item is a selectable row of a Menu.
type Item interface {
	Title() string
	Enabled() bool
	// Recalculate places the item. pos and size are in the reference space.
	Recalculate(pos host.Point, size host.Size, selected bool)
	Draw()
}

// Activator is implemented by items that react to being selected.
type Activator interface {
	Activate()
}

// MenuItem is a plain text row.
type MenuItem struct {
	enabled    bool
	selected   bool
	background *elements.ScaledRectangle
	text       *elements.ScaledText

	backgroundColor   color.RGBA
	selectedColor     color.RGBA
	textColor         color.RGBA
	selectedTextColor color.RGBA
	disabledTextColor color.RGBA
	textOffset        host.Point

	// Activated fires when the item is selected while enabled.
	Activated Event[EventArgs]
}

// NewMenuItem creates an enabled item styled by the active layout.
func NewMenuItem(title string) *MenuItem {
	l := internal.GetLayout().Items
	font, _ := constants.ParseFont(l.Font)

	background := internal.HexToColor(l.BackgroundColor)
	background.A = l.BackgroundAlpha

	item := &MenuItem{
		enabled:           true,
		background:        elements.NewScaledRectangle(host.Point{}, host.Size{Width: l.Width, Height: l.Height}),
		text:              elements.NewScaledText(host.Point{}, title, l.TextScale, font),
		backgroundColor:   background,
		selectedColor:     internal.HexToColor(l.SelectedColor),
		textColor:         internal.HexToColor(l.TextColor),
		selectedTextColor: internal.HexToColor(l.SelectedTextColor),
		disabledTextColor: internal.HexToColor(l.DisabledTextColor),
		textOffset:        host.Point{X: l.TextOffsetX, Y: l.TextOffsetY},
	}
	item.applyColors()
	return item
}

func (i *MenuItem) Title() string {
	return i.text.Text
}

func (i *MenuItem) SetTitle(title string) {
	i.text.Text = title
}

func (i *MenuItem) Enabled() bool {
	return i.enabled
}

func (i *MenuItem) SetEnabled(enabled bool) {
	i.enabled = enabled
	i.applyColors()
}

func (i *MenuItem) applyColors() {
	switch {
	case !i.enabled:
		i.text.Color = i.disabledTextColor
	case i.selected:
		i.text.Color = i.selectedTextColor
	default:
		i.text.Color = i.textColor
	}

	if i.selected {
		i.background.Color = i.selectedColor
	} else {
		i.background.Color = i.backgroundColor
	}
}

func (i *MenuItem) Recalculate(pos host.Point, size host.Size, selected bool) {
	i.selected = selected
	i.background.Position = pos
	i.background.Size = size
	i.text.Position = host.Point{X: pos.X + i.textOffset.X, Y: pos.Y + i.textOffset.Y}
	i.applyColors()
	i.background.Recalculate()
	i.text.Recalculate()
}

func (i *MenuItem) Draw() {
	i.background.Draw()
	i.text.Draw()
}

// Activate fires Activated unless the item is disabled.
func (i *MenuItem) Activate() {
	if !i.enabled {
		return
	}
	i.Activated.Invoke(i, EventArgs{})
}

// SubMenuItem opens another menu when selected.
type SubMenuItem struct {
	*MenuItem
	Menu *Menu
}

func NewSubMenuItem(title string, menu *Menu) *SubMenuItem {
	return &SubMenuItem{MenuItem: NewMenuItem(title), Menu: menu}
}
