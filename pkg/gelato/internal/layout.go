package internal

// Rect is a reference-space rectangle.
type Rect struct {
	X      float32 `toml:"x" yaml:"x" json:"x"`
	Y      float32 `toml:"y" yaml:"y" json:"y"`
	Width  float32 `toml:"width" yaml:"width" json:"width"`
	Height float32 `toml:"height" yaml:"height" json:"height"`
}

// BannerLayout places the banner image.
type BannerLayout struct {
	Rect       `toml:"rect" yaml:"rect" json:"rect"`
	Dictionary string `toml:"dictionary" yaml:"dictionary" json:"dictionary"`
	Texture    string `toml:"texture" yaml:"texture" json:"texture"`
}

// BandLayout is a solid colored rectangle.
type BandLayout struct {
	Rect  `toml:"rect" yaml:"rect" json:"rect"`
	Color uint32 `toml:"color" yaml:"color" json:"color"`
}

// TextLayout places a text label.
type TextLayout struct {
	X         float32 `toml:"x" yaml:"x" json:"x"`
	Y         float32 `toml:"y" yaml:"y" json:"y"`
	Scale     float32 `toml:"scale" yaml:"scale" json:"scale"`
	Font      string  `toml:"font" yaml:"font" json:"font"`
	Color     uint32  `toml:"color" yaml:"color" json:"color"`
	Alignment string  `toml:"alignment" yaml:"alignment" json:"alignment"`
}

// ItemLayout describes the rows below the subtitle.
type ItemLayout struct {
	Y                 float32 `toml:"y" yaml:"y" json:"y"`
	Width             float32 `toml:"width" yaml:"width" json:"width"`
	Height            float32 `toml:"height" yaml:"height" json:"height"`
	TextOffsetX       float32 `toml:"text_offset_x" yaml:"text_offset_x" json:"text_offset_x"`
	TextOffsetY       float32 `toml:"text_offset_y" yaml:"text_offset_y" json:"text_offset_y"`
	TextScale         float32 `toml:"text_scale" yaml:"text_scale" json:"text_scale"`
	Font              string  `toml:"font" yaml:"font" json:"font"`
	BackgroundColor   uint32  `toml:"background_color" yaml:"background_color" json:"background_color"`
	BackgroundAlpha   uint8   `toml:"background_alpha" yaml:"background_alpha" json:"background_alpha"`
	SelectedColor     uint32  `toml:"selected_color" yaml:"selected_color" json:"selected_color"`
	TextColor         uint32  `toml:"text_color" yaml:"text_color" json:"text_color"`
	SelectedTextColor uint32  `toml:"selected_text_color" yaml:"selected_text_color" json:"selected_text_color"`
	DisabledTextColor uint32  `toml:"disabled_text_color" yaml:"disabled_text_color" json:"disabled_text_color"`
}

// Layout holds the geometry and colors used when a menu is constructed.
// Values are in the 1080-pixel-high reference space.
type Layout struct {
	Banner       BannerLayout `toml:"banner" yaml:"banner" json:"banner"`
	Title        TextLayout   `toml:"title" yaml:"title" json:"title"`
	SubtitleBand BandLayout   `toml:"subtitle_band" yaml:"subtitle_band" json:"subtitle_band"`
	Subtitle     TextLayout   `toml:"subtitle" yaml:"subtitle" json:"subtitle"`
	Items        ItemLayout   `toml:"items" yaml:"items" json:"items"`
}

// DefaultLayout reproduces the stock framed-banner menu.
func DefaultLayout() Layout {
	return Layout{
		Banner: BannerLayout{
			Rect:       Rect{X: 0, Y: 0, Width: 863, Height: 215},
			Dictionary: "commonmenu",
			Texture:    "interaction_bgd",
		},
		Title: TextLayout{
			X: 209, Y: 22, Scale: 1.02, Font: "HouseScript", Color: 0xFFFFFF, Alignment: "center",
		},
		SubtitleBand: BandLayout{
			Rect:  Rect{X: 0, Y: 126, Width: 863, Height: 38},
			Color: 0x000000,
		},
		Subtitle: TextLayout{
			X: 6, Y: 111, Scale: 0.35, Font: "ChaletLondon", Color: 0xFFFFFF, Alignment: "left",
		},
		Items: ItemLayout{
			Y:                 164,
			Width:             863,
			Height:            38,
			TextOffsetX:       8,
			TextOffsetY:       3,
			TextScale:         0.35,
			Font:              "ChaletLondon",
			BackgroundColor:   0x000000,
			BackgroundAlpha:   160,
			SelectedColor:     0xF0F0F0,
			TextColor:         0xFFFFFF,
			SelectedTextColor: 0x000000,
			DisabledTextColor: 0x9B9B9B,
		},
	}
}

var currentLayout = DefaultLayout()

// SetLayout sets the layout used by menus created afterwards.
func SetLayout(layout Layout) {
	currentLayout = layout
}

// GetLayout returns the active layout.
func GetLayout() Layout {
	return currentLayout
}
