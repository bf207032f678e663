package banner

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImageFromDataURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, solidImage(3, 2, iconRed)))
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	img, err := LoadImage(url)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, iconRed, nrgbaAt(img, 1, 1))
}

func TestLoadImageJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, solidImage(20, 40, shotBlue), nil))
	require.NoError(t, f.Close())

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 40), img.Bounds())
}

func TestLoadImageErrors(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "icon.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
	_, err = LoadImage(path)
	assert.Error(t, err)

	_, err = LoadImage("data:image/png;base64,@@@")
	assert.Error(t, err)

	_, _, err = DecodeImageBytes(nil)
	assert.Error(t, err)
}

func TestSavePNGCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")
	require.NoError(t, SavePNG(path, solidImage(4, 4, iconRed)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestComposeBase64(t *testing.T) {
	icon, err := EncodePNGToBase64(solidImage(8, 8, iconRed))
	require.NoError(t, err)
	shot, err := EncodePNGToBase64(solidImage(9, 16, shotBlue))
	require.NoError(t, err)

	out, err := ComposeBase64("data:image/png;base64,"+icon, shot)
	require.NoError(t, err)

	img, format, err := DecodeBase64Image(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 2500, 1000), img.Bounds())
}

func TestStripDataPrefix(t *testing.T) {
	assert.Equal(t, "QUJD", stripDataPrefix("data:image/png;base64,QUJD"))
	assert.Equal(t, "QUJD", stripDataPrefix("DATA:image/png;base64,QUJD"))
	assert.Equal(t, "QUJD", stripDataPrefix("QUJD"))
}
