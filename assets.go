package banner

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var fallbackFont struct {
	once sync.Once
	font *opentype.Font
	err  error
}

// fallbackFace parses the embedded Go Regular font once and reuses it
// for every fallback FontSet.
func fallbackFace() (*opentype.Font, error) {
	fallbackFont.once.Do(func() {
		fallbackFont.font, fallbackFont.err = opentype.Parse(goregular.TTF)
		if fallbackFont.err != nil {
			fallbackFont.err = fmt.Errorf("parse embedded font: %w", fallbackFont.err)
		}
	})
	return fallbackFont.font, fallbackFont.err
}
