package banner

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundedMask(t *testing.T) {
	mask := RoundedMask(100, 60, 20)

	assert.Equal(t, image.Rect(0, 0, 100, 60), mask.Bounds())
	assert.Equal(t, uint8(255), mask.AlphaAt(50, 30).A)
	assert.GreaterOrEqual(t, mask.AlphaAt(50, 0).A, uint8(250), "top edge is straight away from the corners")
	assert.Equal(t, uint8(0), mask.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(99, 59).A)
}

func TestApplyMaskKeepsColourAndScalesAlpha(t *testing.T) {
	src := solidImage(100, 60, shotBlue)
	out := ApplyMask(src, RoundedMask(100, 60, 20))

	assertNear(t, shotBlue, out.NRGBAAt(50, 30), 1)
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), src.NRGBAAt(0, 0).A, "source is not modified")
}

func TestDropShadow(t *testing.T) {
	style := ShadowStyle{Offset: 8, Padding: 20, Sigma: 15, Opacity: 50}
	shadow := DropShadow(100, 100, 30, style)

	assert.Equal(t, image.Rect(0, 0, 140, 140), shadow.Bounds())

	centre := shadow.NRGBAAt(28+50, 28+50)
	assert.InDelta(t, 50, int(centre.A), 3)
	assert.Less(t, int(centre.R), 5)
	assert.Less(t, int(shadow.NRGBAAt(0, 0).A), 3)

	// Offset moves the shadow toward the bottom-right corner.
	assert.Greater(t, shadow.NRGBAAt(130, 130).A, shadow.NRGBAAt(10, 10).A)
}

func TestDropShadowWithoutBlur(t *testing.T) {
	shadow := DropShadow(40, 40, 0, ShadowStyle{Padding: 5, Opacity: 80})

	assert.Equal(t, uint8(80), shadow.NRGBAAt(25, 25).A)
	assert.Equal(t, uint8(0), shadow.NRGBAAt(2, 2).A)
}
