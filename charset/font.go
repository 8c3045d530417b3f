package charset

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Coverage returns every codepoint the character map of the TrueType or
// OpenType font ttf maps to a glyph.
func Coverage(ttf []byte) (Set, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return Set{}, fmt.Errorf("charset: parse font: %w", err)
	}
	var rs []rune
	for it := face.Cmap.Iter(); it.Next(); {
		r, gid := it.Char()
		if gid != 0 {
			rs = append(rs, r)
		}
	}
	return New(rs...), nil
}

// Supported returns the codepoints of want that ttf has a glyph for.
// Codepoints outside the font would render as raylib's fallback box.
func Supported(ttf []byte, want Set) (Set, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return Set{}, fmt.Errorf("charset: parse font: %w", err)
	}
	var buf sfnt.Buffer
	var lookupErr error
	out := want.Filter(func(r rune) bool {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil && lookupErr == nil {
			lookupErr = err
		}
		return idx != 0
	})
	if lookupErr != nil {
		return Set{}, fmt.Errorf("charset: glyph lookup: %w", lookupErr)
	}
	return out, nil
}

// FamilyName returns the family name recorded in the font's name table.
func FamilyName(ttf []byte) (string, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return "", fmt.Errorf("charset: parse font: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("charset: family name: %w", err)
	}
	return name, nil
}
