package banner

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Composer lays out the icon, tagline and screenshot on the banner canvas.
// Fonts are loaded on first use and cached for the Composer's lifetime.
type Composer struct {
	layout Layout
	logger *zap.Logger

	fontOnce  sync.Once
	fonts     *FontSet
	fontErr   error
	ownsFonts bool
}

// Option configures a Composer.
type Option func(*Composer)

// WithLayout replaces the default layout.
func WithLayout(l Layout) Option {
	return func(c *Composer) { c.layout = l }
}

// WithLogger sets the logger used for progress and font fallback warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFonts supplies preloaded faces, skipping LoadFonts. The caller keeps
// ownership of fs.
func WithFonts(fs *FontSet) Option {
	return func(c *Composer) {
		c.fontOnce.Do(func() { c.fonts = fs })
	}
}

// NewComposer constructs a Composer using DefaultLayout unless overridden.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		layout: DefaultLayout(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout returns the layout the Composer draws with.
func (c *Composer) Layout() Layout {
	return c.layout
}

var defaultComposer struct {
	once sync.Once
	c    *Composer
}

// Compose builds the banner with the default composer.
func Compose(icon, screenshot image.Image) (*image.NRGBA, error) {
	defaultComposer.once.Do(func() {
		defaultComposer.c = NewComposer()
	})

	return defaultComposer.c.Compose(icon, screenshot)
}

// Compose draws the banner and returns the finished canvas. The inputs are
// not modified.
func (c *Composer) Compose(icon, screenshot image.Image) (*image.NRGBA, error) {
	if icon == nil || screenshot == nil {
		return nil, fmt.Errorf("nil image provided")
	}

	l := c.layout
	if err := l.Validate(); err != nil {
		return nil, err
	}

	sb := screenshot.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		return nil, fmt.Errorf("invalid screenshot dimensions %dx%d", sb.Dx(), sb.Dy())
	}
	if ib := icon.Bounds(); ib.Dx() <= 0 || ib.Dy() <= 0 {
		return nil, fmt.Errorf("invalid icon dimensions %dx%d", ib.Dx(), ib.Dy())
	}

	fonts, err := c.loadFonts()
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(l.Width, l.Height, l.Background.NRGBA())

	ix, iy := l.IconOrigin()
	resizedIcon := imaging.Resize(icon, l.Icon.Size, l.Icon.Size, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, resizedIcon, image.Pt(ix, iy), 1.0)
	c.logger.Debug("placed icon", zap.Int("x", ix), zap.Int("y", iy), zap.Int("size", l.Icon.Size))

	tx, cy := l.TextX(), l.Height/2
	for _, line := range l.Text.Lines {
		DrawText(canvas, fonts.Face(line.Style), tx, cy+line.OffsetY, line.Text, line.Color)
	}
	c.logger.Debug("drew text", zap.Int("lines", len(l.Text.Lines)), zap.Int("x", tx))

	w, h := l.ScreenshotSize(sb.Dx(), sb.Dy())
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("screenshot scales to %dx%d", w, h)
	}
	scaled := imaging.Resize(screenshot, w, h, imaging.Lanczos)

	radius := l.Screenshot.CornerRadius
	rounded := ApplyMask(scaled, RoundedMask(w, h, radius))
	shadow := DropShadow(w, h, radius, l.Screenshot.Shadow)

	sx, sy := l.ScreenshotOrigin(w, h)
	pad := l.Screenshot.Shadow.Padding

	// The shadow is flattened onto a background patch first, then pasted
	// opaque, clearing anything underneath its padded area.
	patch := imaging.New(shadow.Bounds().Dx(), shadow.Bounds().Dy(), l.Background.NRGBA())
	patch = imaging.Overlay(patch, shadow, image.Pt(0, 0), 1.0)
	canvas = imaging.Paste(canvas, patch, image.Pt(sx-pad, sy-pad))
	canvas = imaging.Overlay(canvas, rounded, image.Pt(sx, sy), 1.0)
	c.logger.Debug("placed screenshot",
		zap.Int("x", sx), zap.Int("y", sy),
		zap.Int("width", w), zap.Int("height", h))

	fillRect(canvas, image.Rect(0, 0, l.Width, l.AccentHeight), l.Accent)

	return canvas, nil
}

// loadFonts loads and caches the configured faces, logging when the fallback
// font is substituted.
func (c *Composer) loadFonts() (*FontSet, error) {
	c.fontOnce.Do(func() {
		c.fonts, c.fontErr = LoadFonts(c.layout.Fonts)
		if c.fontErr != nil {
			return
		}
		c.ownsFonts = true
		if c.fonts.Fallback {
			c.logger.Warn("preferred font unavailable, using embedded fallback",
				zap.String("path", c.layout.Fonts.Path),
				zap.Error(c.fonts.Cause))
		}
	})

	if c.fontErr != nil {
		return nil, fmt.Errorf("load fonts: %w", c.fontErr)
	}
	if c.fonts == nil {
		return nil, fmt.Errorf("no fonts available")
	}
	return c.fonts, nil
}

// Close releases fonts loaded by the Composer. Fonts passed in through
// WithFonts are left open.
func (c *Composer) Close() error {
	if c.fonts == nil || !c.ownsFonts {
		return nil
	}
	return c.fonts.Close()
}
