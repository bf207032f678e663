package banner

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accentCanvas(l Layout) *image.NRGBA {
	canvas := solidImage(l.Width, l.Height, l.Background.NRGBA())
	fillRect(canvas, image.Rect(0, 0, l.Width, l.AccentHeight), l.Accent)
	return canvas
}

func TestVerifyAcceptsIntactBanner(t *testing.T) {
	l := DefaultLayout()
	r, err := Verify(accentCanvas(l), l)
	require.NoError(t, err)

	assert.True(t, r.OK())
	assert.Equal(t, "2500x1000, accent bar intact", r.String())
}

func TestVerifyReportsAccentMismatch(t *testing.T) {
	l := DefaultLayout()
	canvas := accentCanvas(l)
	canvas.SetNRGBA(700, 5, color.NRGBA{A: 255})

	r, err := Verify(canvas, l)
	require.NoError(t, err)

	assert.True(t, r.SizeOK)
	assert.False(t, r.AccentOK)
	assert.Equal(t, image.Pt(700, 5), r.Mismatch)
	assert.Equal(t, color.NRGBA{A: 255}, r.MismatchColor)
}

func TestVerifyReportsWrongSize(t *testing.T) {
	l := DefaultLayout()
	small := l
	small.Width, small.Height = 1500, 500

	r, err := Verify(accentCanvas(small), l)
	require.NoError(t, err)

	assert.False(t, r.SizeOK)
	assert.True(t, r.AccentOK)
	assert.Contains(t, r.String(), "1500x500")
}

func TestVerifyNilImage(t *testing.T) {
	_, err := Verify(nil, DefaultLayout())
	assert.Error(t, err)
}
