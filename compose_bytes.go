package banner

import (
	"bytes"
	"fmt"
)

// ComposeBytes composes a banner from raw icon and screenshot bytes and
// returns the PNG-encoded result.
func (c *Composer) ComposeBytes(icon, screenshot []byte) ([]byte, error) {
	iconImg, _, err := DecodeImageBytes(icon)
	if err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}
	shotImg, _, err := DecodeImageBytes(screenshot)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}

	out, err := c.Compose(iconImg, shotImg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
