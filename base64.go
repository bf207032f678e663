package banner

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL) into
// an image.Image. It returns the decoded image and the detected format string.
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ComposeBase64 composes a banner from two base64 images (optionally data
// URLs) with the default composer and returns the PNG as base64.
func ComposeBase64(icon, screenshot string) (string, error) {
	iconImg, _, err := DecodeBase64Image(icon)
	if err != nil {
		return "", fmt.Errorf("icon: %w", err)
	}
	shotImg, _, err := DecodeBase64Image(screenshot)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	out, err := Compose(iconImg, shotImg)
	if err != nil {
		return "", err
	}
	return EncodePNGToBase64(out)
}

func isDataURL(input string) bool {
	return strings.HasPrefix(strings.ToLower(input), "data:")
}

func stripDataPrefix(input string) string {
	if isDataURL(input) {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
