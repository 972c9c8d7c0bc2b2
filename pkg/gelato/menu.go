package gelato

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato/constants"
	"github.com/BrandonKowalski/gelato/pkg/gelato/elements"
	"github.com/BrandonKowalski/gelato/pkg/gelato/host"
	"github.com/BrandonKowalski/gelato/pkg/gelato/i18n"
	"github.com/BrandonKowalski/gelato/pkg/gelato/internal"
)

// handlingControls is above zero while a menu reacts to input. Menus shown
// in that window wait for the next input frame before reading controls.
var handlingControls int

var noItemsMessage = &i18n.Message{
	ID:    "MenuNoItems",
	Other: "There are no items available",
}

// Menu is a list menu with a banner, a subtitle band and selectable items.
//
// A menu is either hidden or visible. Showing it emits Shown. Hiding it runs
// the close protocol: Closing and then Closed are emitted with the same
// CancelEventArgs before anything changes, and the menu stays visible if any
// handler set Cancel.
type Menu struct {
	visible bool
	index   int
	items   []Item
	parent  *Menu

	bannerImage   Drawable
	bannerText    *elements.ScaledText
	subtitleImage Drawable
	subtitleText  *elements.ScaledText
	noItemsText   *elements.ScaledText

	itemLayout  internal.ItemLayout
	directional internal.DirectionalInput

	// Set when another menu's input showed this one; the press that did it
	// must not be read again by this menu.
	deferControls bool
	shownFrame    uint64

	// NoItemsText is shown in place of the items when the menu is empty.
	NoItemsText string
	// DisableControls stops the menu from reading host controls in Process.
	DisableControls bool

	Shown        Event[EventArgs]
	Closing      Event[*CancelEventArgs]
	Closed       Event[*CancelEventArgs]
	Selected     Event[ItemEventArgs]
	ItemChanged  Event[ItemEventArgs]
	IndexChanged Event[IndexChangedEventArgs]
}

// NewMenu creates a menu with the default framed banner texture.
func NewMenu(title, subtitle string) *Menu {
	l := internal.GetLayout().Banner
	banner := elements.NewScaledTexture(
		host.Point{X: l.X, Y: l.Y},
		host.Size{Width: l.Width, Height: l.Height},
		l.Dictionary,
		l.Texture,
	)
	return NewMenuWithBanner(title, banner, subtitle)
}

// NewMenuWithBanner creates a menu that uses banner as its header image.
// banner may be nil for a menu without a header image.
func NewMenuWithBanner(title string, banner Drawable, subtitle string) *Menu {
	layout := internal.GetLayout()

	m := &Menu{
		index:        -1,
		bannerImage:  banner,
		bannerText:   newLayoutText(layout.Title, title),
		subtitleText: newLayoutText(layout.Subtitle, subtitle),
		itemLayout:   layout.Items,
		directional:  internal.NewDirectionalInput(),
		NoItemsText:  i18n.Localize(noItemsMessage, nil),
	}

	band := elements.NewScaledRectangle(
		host.Point{X: layout.SubtitleBand.X, Y: layout.SubtitleBand.Y},
		host.Size{Width: layout.SubtitleBand.Width, Height: layout.SubtitleBand.Height},
	)
	band.Color = internal.HexToColor(layout.SubtitleBand.Color)
	m.subtitleImage = band

	itemFont, _ := constants.ParseFont(layout.Items.Font)
	m.noItemsText = elements.NewScaledText(
		host.Point{X: layout.Items.TextOffsetX, Y: layout.Items.Y + layout.Items.TextOffsetY},
		m.NoItemsText,
		layout.Items.TextScale,
		itemFont,
	)
	m.noItemsText.Color = internal.HexToColor(layout.Items.TextColor)

	return m
}

func newLayoutText(l internal.TextLayout, text string) *elements.ScaledText {
	font, _ := constants.ParseFont(l.Font)
	align, _ := constants.ParseTextAlign(l.Alignment)

	t := elements.NewScaledText(host.Point{X: l.X, Y: l.Y}, text, l.Scale, font)
	t.Color = internal.HexToColor(l.Color)
	t.Alignment = align
	return t
}

// Visible reports whether the menu is on screen.
func (m *Menu) Visible() bool {
	return m.visible
}

// SetVisible shows or hides the menu. Showing always emits Shown, even if the
// menu was already visible. Hiding a visible menu runs Close, which may be
// canceled; hiding a hidden menu does nothing.
func (m *Menu) SetVisible(visible bool) {
	if visible {
		m.visible = true
		m.directional.Reset()
		if handlingControls > 0 {
			m.deferControls = true
			m.shownFrame = inputFrame(internal.GetHost())
		}
		m.Shown.Invoke(m, EventArgs{})
		return
	}

	if m.visible {
		m.Close()
	}
}

// Title returns the banner text. It fails with ErrMissingState if the banner
// text element was removed.
func (m *Menu) Title() (string, error) {
	if m.bannerText == nil {
		return "", missingBannerText()
	}
	return m.bannerText.Text, nil
}

func (m *Menu) SetTitle(title string) error {
	if m.bannerText == nil {
		return missingBannerText()
	}
	m.bannerText.Text = title
	return nil
}

func missingBannerText() error {
	internal.GetInternalLogger().Error("Menu has no banner text element")
	return ErrMissingState
}

// Subtitle returns the subtitle text. The subtitle text element always exists.
func (m *Menu) Subtitle() string {
	return m.subtitleText.Text
}

func (m *Menu) SetSubtitle(subtitle string) {
	m.subtitleText.Text = subtitle
}

// Banner returns the header image, or nil.
func (m *Menu) Banner() Drawable {
	return m.bannerImage
}

func (m *Menu) SetBanner(banner Drawable) {
	m.bannerImage = banner
}

// TitleText returns the text element drawn over the banner.
func (m *Menu) TitleText() *elements.ScaledText {
	return m.bannerText
}

func (m *Menu) SetTitleText(text *elements.ScaledText) {
	m.bannerText = text
}

// SubtitleBackground returns the band drawn behind the subtitle, or nil.
func (m *Menu) SubtitleBackground() Drawable {
	return m.subtitleImage
}

func (m *Menu) SetSubtitleBackground(background Drawable) {
	m.subtitleImage = background
}

// Items returns a copy of the items in navigation order.
func (m *Menu) Items() []Item {
	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Index returns the selected index, or -1 when the menu has no items.
func (m *Menu) Index() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.index
}

// SetIndex selects the item at index. It fails with ErrInvalidOperation if the
// menu is empty or index is outside [0, Len()-1].
func (m *Menu) SetIndex(index int) error {
	if len(m.items) == 0 {
		return invalidOperation("there are no items in this menu")
	}
	if index < 0 || index >= len(m.items) {
		return invalidOperation("index %d is outside [0, %d]", index, len(m.items)-1)
	}
	if index == m.index {
		return nil
	}

	old := m.index
	m.index = index
	m.recalculateItems()

	m.IndexChanged.Invoke(m, IndexChangedEventArgs{OldIndex: old, NewIndex: index})
	m.ItemChanged.Invoke(m, ItemEventArgs{Item: m.items[index], Index: index})
	return nil
}

// SelectedItem returns the item at Index, or nil when the menu is empty.
func (m *Menu) SelectedItem() Item {
	if len(m.items) == 0 {
		return nil
	}
	return m.items[m.index]
}

// Add appends an item. The first item becomes the selection.
func (m *Menu) Add(item Item) {
	m.items = append(m.items, item)
	if len(m.items) == 1 {
		m.index = 0
	}
	m.recalculateItems()
}

// Remove removes every occurrence of item and keeps the selection in range.
// Items are matched by identity; an item whose value cannot be compared,
// such as a struct holding a slice, never matches and must be removed with
// RemoveAt.
func (m *Menu) Remove(item Item) {
	kept := m.items[:0]
	for i, it := range m.items {
		if sameObject(it, item) {
			if i < m.index {
				m.index--
			}
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(m.items); i++ {
		m.items[i] = nil
	}
	m.items = kept
	m.afterRemove()
}

// RemoveAt removes the item at index.
func (m *Menu) RemoveAt(index int) error {
	if index < 0 || index >= len(m.items) {
		return invalidOperation("index %d is out of range for %d items", index, len(m.items))
	}

	m.items = append(m.items[:index], m.items[index+1:]...)
	if index < m.index {
		m.index--
	}
	m.afterRemove()
	return nil
}

func (m *Menu) afterRemove() {
	if len(m.items) == 0 {
		m.index = -1
	} else {
		m.index = internal.Clamp(m.index, 0, len(m.items)-1)
	}
	m.recalculateItems()
}

// Clear removes all items.
func (m *Menu) Clear() {
	m.items = nil
	m.index = -1
}

// Next moves the selection down, wrapping to the first item.
func (m *Menu) Next() {
	if len(m.items) == 0 {
		return
	}
	_ = m.SetIndex((m.index + 1) % len(m.items))
}

// Previous moves the selection up, wrapping to the last item.
func (m *Menu) Previous() {
	if len(m.items) == 0 {
		return
	}
	_ = m.SetIndex((m.index - 1 + len(m.items)) % len(m.items))
}

// Select activates the current item. Disabled items are ignored. Selecting a
// SubMenuItem closes this menu and shows the submenu.
func (m *Menu) Select() {
	item := m.SelectedItem()
	if item == nil || !item.Enabled() {
		return
	}

	m.Selected.Invoke(m, ItemEventArgs{Item: item, Index: m.index})

	if activator, ok := item.(Activator); ok {
		activator.Activate()
	}

	if sub, ok := item.(*SubMenuItem); ok && sub.Menu != nil {
		m.openSubMenu(sub.Menu)
	}
}

func (m *Menu) openSubMenu(child *Menu) {
	if !m.close(false) {
		return
	}
	child.parent = m
	child.SetVisible(true)
}

// Back closes the menu and returns to its parent, if it was opened as a submenu.
func (m *Menu) Back() {
	m.close(true)
}

// Close runs the close protocol. Closing and Closed fire before the menu is
// hidden; if a handler cancels, the menu stays as it is.
func (m *Menu) Close() {
	m.close(true)
}

func (m *Menu) close(returnToParent bool) bool {
	args := &CancelEventArgs{}

	m.Closing.Invoke(m, args)
	if !args.Cancel {
		m.Closed.Invoke(m, args)
	}

	if args.Cancel {
		internal.GetInternalLogger().Debug("Menu close canceled", "subtitle", m.subtitleText.Text)
		return false
	}

	m.visible = false

	parent := m.parent
	m.parent = nil
	if returnToParent && parent != nil {
		parent.SetVisible(true)
	}
	return true
}

// Process handles the controls of the menu and then draws it. It does
// nothing while hidden.
func (m *Menu) Process() {
	m.HandleControls()
	m.Draw()
}

// Draw draws the header, the items or the no-items text. It does not read
// controls, so it may run any number of times per input frame.
func (m *Menu) Draw() {
	if !m.visible {
		return
	}

	if m.bannerImage != nil {
		m.bannerImage.Process()
	}
	if m.bannerText != nil {
		m.bannerText.Process()
	}
	if m.subtitleImage != nil {
		m.subtitleImage.Process()
	}
	if m.subtitleText != nil {
		m.subtitleText.Process()
	}

	if len(m.items) == 0 {
		m.noItemsText.Text = m.NoItemsText
		m.noItemsText.Process()
		return
	}

	for _, item := range m.items {
		item.Draw()
	}
}

// HandleControls reacts to the host controls: Up and Down move the selection
// (repeating while held), Accept selects and Back goes back. Call it once per
// input frame. It does nothing while the menu is hidden, when DisableControls
// is set, or during the input frame in which another menu's input showed it.
func (m *Menu) HandleControls() {
	if !m.visible || m.DisableControls {
		return
	}

	h := internal.GetHost()
	if h == nil || !m.controlsReady(h) {
		return
	}

	handlingControls++
	defer func() { handlingControls-- }()

	m.directional.SetHeld(constants.ControlUp, h.IsControlPressed(constants.ControlUp))
	m.directional.SetHeld(constants.ControlDown, h.IsControlPressed(constants.ControlDown))

	switch {
	case h.IsControlJustPressed(constants.ControlUp):
		m.Previous()
	case h.IsControlJustPressed(constants.ControlDown):
		m.Next()
	default:
		switch m.directional.Update() {
		case internal.DirectionUp:
			m.Previous()
		case internal.DirectionDown:
			m.Next()
		}
	}

	if h.IsControlJustPressed(constants.ControlAccept) {
		m.Select()
	} else if h.IsControlJustPressed(constants.ControlBack) {
		m.Back()
	}
}

// controlsReady reports whether the menu may read controls now. Hosts that
// count input frames release a deferred menu on the next frame; for other
// hosts the deferred menu skips exactly one call.
func (m *Menu) controlsReady(h host.Host) bool {
	if !m.deferControls {
		return true
	}

	counter, ok := h.(host.FrameCounter)
	if ok && counter.Frame() != m.shownFrame {
		m.deferControls = false
		return true
	}
	if !ok {
		m.deferControls = false
	}
	return false
}

func inputFrame(h host.Host) uint64 {
	if counter, ok := h.(host.FrameCounter); ok {
		return counter.Frame()
	}
	return 0
}

// Recalculate recomputes the position and size of every element, visible or not.
func (m *Menu) Recalculate() {
	if m.bannerImage != nil {
		m.bannerImage.Recalculate()
	}
	if m.bannerText != nil {
		m.bannerText.Recalculate()
	}
	if m.subtitleImage != nil {
		m.subtitleImage.Recalculate()
	}
	if m.subtitleText != nil {
		m.subtitleText.Recalculate()
	}
	m.noItemsText.Recalculate()
	m.recalculateItems()
}

func (m *Menu) recalculateItems() {
	l := m.itemLayout
	for i, item := range m.items {
		pos := host.Point{X: 0, Y: l.Y + l.Height*float32(i)}
		item.Recalculate(pos, host.Size{Width: l.Width, Height: l.Height}, i == m.index)
	}
}
