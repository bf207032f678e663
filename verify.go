package banner

import (
	"fmt"
	"image"
	"image/color"
)

// Report describes how a composed banner compares with its layout.
type Report struct {
	Width  int
	Height int

	// SizeOK is true when the image matches the layout's canvas size.
	SizeOK bool
	// AccentOK is true when every pixel of the accent bar has the accent colour.
	AccentOK bool
	// Mismatch is the first accent-bar pixel that differs, if any.
	Mismatch      image.Point
	MismatchColor color.NRGBA
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return r.SizeOK && r.AccentOK
}

func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%dx%d, accent bar intact", r.Width, r.Height)
	}
	if !r.SizeOK {
		return fmt.Sprintf("unexpected size %dx%d", r.Width, r.Height)
	}
	return fmt.Sprintf("accent bar pixel %v is %v", r.Mismatch, r.MismatchColor)
}

// Verify checks a composed image against the layout: the canvas size and the
// accent bar colour across the top AccentHeight rows.
func Verify(img image.Image, l Layout) (Report, error) {
	if img == nil {
		return Report{}, fmt.Errorf("nil image provided")
	}

	b := img.Bounds()
	r := Report{
		Width:    b.Dx(),
		Height:   b.Dy(),
		SizeOK:   b.Dx() == l.Width && b.Dy() == l.Height,
		AccentOK: true,
	}

	want := l.Accent.NRGBA()
	bar := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+l.AccentHeight).Intersect(b)
	for y := bar.Min.Y; y < bar.Max.Y; y++ {
		for x := bar.Min.X; x < bar.Max.X; x++ {
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if got != want {
				r.AccentOK = false
				r.Mismatch = image.Pt(x, y)
				r.MismatchColor = got
				return r, nil
			}
		}
	}

	return r, nil
}
