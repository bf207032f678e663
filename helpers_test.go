package banner

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

var (
	iconRed  = color.NRGBA{R: 220, G: 20, B: 20, A: 255}
	shotBlue = color.NRGBA{R: 10, G: 40, B: 230, A: 255}
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, SavePNG(path, img))
	return path
}

// fallbackComposer returns a composer that is guaranteed to use the embedded
// font, independent of the fonts installed on the test machine.
func fallbackComposer(t *testing.T, opts ...Option) *Composer {
	t.Helper()
	layout := DefaultLayout()
	layout.Fonts.Path = filepath.Join(t.TempDir(), "missing.ttc")
	c := NewComposer(append([]Option{WithLayout(layout)}, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func assertNear(t *testing.T, want, got color.NRGBA, tol int) {
	t.Helper()
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(want.R, got.R) > tol || diff(want.G, got.G) > tol || diff(want.B, got.B) > tol || diff(want.A, got.A) > tol {
		t.Fatalf("colour mismatch: want %v, got %v (tolerance %d)", want, got, tol)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
