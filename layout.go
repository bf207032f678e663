package banner

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout is wrapped by every error returned from Layout.Validate.
var ErrInvalidLayout = errors.New("invalid layout")

// Text styles understood by FontSet.Face.
const (
	StyleLarge  = "large"
	StyleMedium = "medium"
	StyleSmall  = "small"
)

// DefaultFontPath is the preferred system font. When it cannot be loaded the
// embedded Go Regular font is used instead.
const DefaultFontPath = "/System/Library/Fonts/Helvetica.ttc"

// Color is an opaque RGB colour. In YAML it is written as "#RRGGBB".
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// NRGBA returns the colour as a fully opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String formats the colour as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" (case-insensitive).
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MarshalYAML writes the colour in hex form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML reads a hex colour string.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Layout holds every placement, size and colour used to compose the banner.
// The zero value is not usable; start from DefaultLayout.
type Layout struct {
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	Background   Color      `yaml:"background"`
	Accent       Color      `yaml:"accent"`
	AccentHeight int        `yaml:"accent_height"`
	Icon         IconLayout `yaml:"icon"`
	Text         TextLayout `yaml:"text"`
	Fonts        FontLayout `yaml:"fonts"`
	Screenshot   ShotLayout `yaml:"screenshot"`
}

// IconLayout places the app icon. It is vertically centred on the canvas.
type IconLayout struct {
	Size int `yaml:"size"`
	X    int `yaml:"x"`
}

// TextLayout places the tagline block to the right of the icon.
type TextLayout struct {
	// Gap is the horizontal distance between the icon's right edge and the text.
	Gap   int        `yaml:"gap"`
	Lines []TextLine `yaml:"lines"`
}

// TextLine is one line of text. OffsetY is measured from the vertical centre
// of the canvas to the top of the line.
type TextLine struct {
	Text    string `yaml:"text"`
	Style   string `yaml:"style"`
	Color   Color  `yaml:"color"`
	OffsetY int    `yaml:"offset_y"`
}

// FontLayout names the preferred font file and the point size of each style.
type FontLayout struct {
	Path   string  `yaml:"path"`
	Large  float64 `yaml:"large"`
	Medium float64 `yaml:"medium"`
	Small  float64 `yaml:"small"`
}

// ShotLayout places the screenshot on the right side of the canvas.
type ShotLayout struct {
	HeightRatio  float64     `yaml:"height_ratio"`
	RightMargin  int         `yaml:"right_margin"`
	CornerRadius float64     `yaml:"corner_radius"`
	Shadow       ShadowStyle `yaml:"shadow"`
}

// ShadowStyle describes the blurred drop shadow behind the screenshot.
type ShadowStyle struct {
	Offset  int     `yaml:"offset"`
	Padding int     `yaml:"padding"`
	Sigma   float64 `yaml:"sigma"`
	Opacity uint8   `yaml:"opacity"`
}

var (
	brandCream  = Color{R: 0xFF, G: 0xF5, B: 0xED}
	brandOrange = Color{R: 0xFF, G: 0x6B, B: 0x00}
	brandBrown  = Color{R: 101, G: 67, B: 33}
	brandMuted  = Color{R: 150, G: 120, B: 100}
)

// DefaultLayout returns the 2500x1000 (5:2) LockedIn banner layout.
func DefaultLayout() Layout {
	return Layout{
		Width:        2500,
		Height:       1000,
		Background:   brandCream,
		Accent:       brandOrange,
		AccentHeight: 6,
		Icon:         IconLayout{Size: 420, X: 120},
		Text: TextLayout{
			Gap: 80,
			Lines: []TextLine{
				{Text: "Build Better Morning", Style: StyleLarge, Color: brandBrown, OffsetY: -160},
				{Text: "and Night Routines", Style: StyleLarge, Color: brandBrown, OffsetY: -70},
				{Text: "One Habit at a Time", Style: StyleMedium, Color: brandOrange, OffsetY: 40},
				{Text: "Free on iOS", Style: StyleSmall, Color: brandMuted, OffsetY: 110},
			},
		},
		Fonts: FontLayout{Path: DefaultFontPath, Large: 72, Medium: 38, Small: 30},
		Screenshot: ShotLayout{
			HeightRatio:  0.85,
			RightMargin:  100,
			CornerRadius: 30,
			Shadow:       ShadowStyle{Offset: 8, Padding: 20, Sigma: 15, Opacity: 50},
		},
	}
}

// Validate reports the first problem that would make composing impossible.
func (l Layout) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidLayout, l.Width, l.Height)
	case l.AccentHeight < 0 || l.AccentHeight > l.Height:
		return fmt.Errorf("%w: accent height %d outside [0, %d]", ErrInvalidLayout, l.AccentHeight, l.Height)
	case l.Icon.Size <= 0:
		return fmt.Errorf("%w: icon size %d", ErrInvalidLayout, l.Icon.Size)
	case l.Screenshot.HeightRatio <= 0 || l.Screenshot.HeightRatio > 1:
		return fmt.Errorf("%w: screenshot height ratio %v outside (0, 1]", ErrInvalidLayout, l.Screenshot.HeightRatio)
	case l.Screenshot.CornerRadius < 0:
		return fmt.Errorf("%w: negative corner radius", ErrInvalidLayout)
	case l.Screenshot.Shadow.Padding < 0 || l.Screenshot.Shadow.Offset < 0 || l.Screenshot.Shadow.Sigma < 0:
		return fmt.Errorf("%w: negative shadow geometry", ErrInvalidLayout)
	case l.Fonts.Large <= 0 || l.Fonts.Medium <= 0 || l.Fonts.Small <= 0:
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidLayout)
	}

	for i, line := range l.Text.Lines {
		switch line.Style {
		case StyleLarge, StyleMedium, StyleSmall:
		default:
			return fmt.Errorf("%w: text line %d has unknown style %q", ErrInvalidLayout, i, line.Style)
		}
	}
	return nil
}

// IconOrigin returns the top-left corner of the icon on the canvas.
func (l Layout) IconOrigin() (x, y int) {
	return l.Icon.X, (l.Height - l.Icon.Size) / 2
}

// TextX returns the left edge of the text block.
func (l Layout) TextX() int {
	return l.Icon.X + l.Icon.Size + l.Text.Gap
}

// ScreenshotSize returns the scaled size of a screenshot whose source
// dimensions are srcW x srcH, preserving its aspect ratio.
func (l Layout) ScreenshotSize(srcW, srcH int) (w, h int) {
	h = int(float64(l.Height) * l.Screenshot.HeightRatio)
	w = int(float64(h) * (float64(srcW) / float64(srcH)))
	return w, h
}

// ScreenshotOrigin returns the top-left corner of a screenshot of the given
// scaled size.
func (l Layout) ScreenshotOrigin(w, h int) (x, y int) {
	return l.Width - w - l.Screenshot.RightMargin, (l.Height - h) / 2
}
