package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the typefaces used by the scenes.
type Fonts struct {
	Regular *text.GoTextFaceSource
	Italic  *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

func LoadFonts() (*Fonts, error) {
	load := func(name string, ttf []byte) (*text.GoTextFaceSource, error) {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("load %s font: %w", name, err)
		}
		return s, nil
	}
	regular, err := load("regular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	italic, err := load("italic", goitalic.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := load("bold", gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Fonts{Regular: regular, Italic: italic, Bold: bold}, nil
}

func face(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: src, Size: size}
}
