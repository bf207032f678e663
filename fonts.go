package banner

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontSet holds one face per text style.
type FontSet struct {
	Large  font.Face
	Medium font.Face
	Small  font.Face

	// Fallback is true when the preferred font could not be loaded and the
	// embedded Go Regular font was substituted.
	Fallback bool
	// Cause explains why the fallback was taken. It is nil otherwise.
	Cause error
}

// Face returns the face for a text style, or nil for an unknown style.
func (fs *FontSet) Face(style string) font.Face {
	switch style {
	case StyleLarge:
		return fs.Large
	case StyleMedium:
		return fs.Medium
	case StyleSmall:
		return fs.Small
	}
	return nil
}

// Close releases all faces.
func (fs *FontSet) Close() error {
	var errs []error
	for _, f := range []font.Face{fs.Large, fs.Medium, fs.Small} {
		if f != nil {
			errs = append(errs, f.Close())
		}
	}
	return errors.Join(errs...)
}

// LoadFonts loads the preferred font at cfg.Path in the three configured
// sizes. Font collections (.ttc/.otc) use their first font. If the preferred
// font is missing or unreadable the embedded fallback is used instead; an
// error is returned only if the fallback itself fails.
func LoadFonts(cfg FontLayout) (*FontSet, error) {
	f, cause := parseFontFile(cfg.Path)
	if cause == nil {
		fs, err := newFontSet(f, cfg)
		if err == nil {
			return fs, nil
		}
		cause = err
	}

	fb, err := fallbackFace()
	if err != nil {
		return nil, err
	}
	fs, err := newFontSet(fb, cfg)
	if err != nil {
		return nil, fmt.Errorf("fallback font: %w", err)
	}
	fs.Fallback = true
	fs.Cause = cause
	return fs, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	if path == "" {
		return nil, fmt.Errorf("no font path configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	// ParseCollection also accepts a single TTF/OTF as a collection of one.
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("font %s: empty collection", path)
	}

	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return f, nil
}

func newFontSet(f *opentype.Font, cfg FontLayout) (*FontSet, error) {
	fs := &FontSet{}
	sizes := []struct {
		dst  *font.Face
		size float64
	}{
		{&fs.Large, cfg.Large},
		{&fs.Medium, cfg.Medium},
		{&fs.Small, cfg.Small},
	}

	for _, s := range sizes {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    s.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("create font face: %w", err)
		}
		*s.dst = face
	}
	return fs, nil
}
