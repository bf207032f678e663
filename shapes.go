package banner

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// RoundedMask returns a w x h alpha mask that is opaque inside a rounded
// rectangle covering the whole area and transparent outside the corners.
func RoundedMask(w, h int, radius float64) *image.Alpha {
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.SetColor(color.White)
	dc.Fill()
	return dc.AsMask()
}

// ApplyMask copies src onto a transparent canvas through mask, so each output
// pixel keeps src's colour with its alpha scaled by the mask.
func ApplyMask(src image.Image, mask *image.Alpha) *image.NRGBA {
	mb := mask.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, mb.Dx(), mb.Dy()))
	xdraw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, mb.Min, xdraw.Over)
	return dst
}

// DropShadow renders the blurred shadow for a w x h rounded rectangle. The
// result is padded by style.Padding on every side, and the rectangle inside it
// is shifted down and right by style.Offset.
func DropShadow(w, h int, radius float64, style ShadowStyle) *image.NRGBA {
	pad := style.Padding
	dc := gg.NewContext(w+2*pad, h+2*pad)

	origin := float64(pad + style.Offset)
	dc.DrawRoundedRectangle(origin, origin, float64(w), float64(h), radius)
	dc.SetRGBA255(0, 0, 0, int(style.Opacity))
	dc.Fill()

	if style.Sigma <= 0 {
		return imaging.Clone(dc.Image())
	}
	return imaging.Blur(dc.Image(), style.Sigma)
}

// fillRect paints r on dst with an opaque colour.
func fillRect(dst xdraw.Image, r image.Rectangle, c Color) {
	xdraw.Draw(dst, r, image.NewUniform(c.NRGBA()), image.Point{}, xdraw.Src)
}
