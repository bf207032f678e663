package banner

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText renders s with its line box anchored at the top-left point (x, y).
// The baseline sits one ascent below y.
func DrawText(dst draw.Image, face font.Face, x, y int, s string, c Color) {
	ascent := face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	d.DrawString(s)
}

// TextBounds returns the pixel rectangle DrawText would cover for the same
// arguments.
func TextBounds(face font.Face, x, y int, s string) image.Rectangle {
	ascent := face.Metrics().Ascent.Ceil()
	b, _ := font.BoundString(face, s)
	return image.Rect(
		x+b.Min.X.Floor(), y+ascent+b.Min.Y.Floor(),
		x+b.Max.X.Ceil(), y+ascent+b.Max.Y.Ceil(),
	)
}
