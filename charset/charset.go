// Package charset builds the codepoint lists raylib's font loaders take.
//
// LoadFontEx and LoadFontFromMemory rasterize only the codepoints they are
// given. A Set collects them from strings, Unicode tables or a font's own
// character map, and Int32s hands them to the loader:
//
//	set := charset.ASCII().Union(charset.FromString("ÄÖÜäöüß€"))
//	font := rl.LoadFontEx("font.ttf", 32, set.Int32s())
package charset

import (
	"slices"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// Set is an immutable, sorted set of codepoints. The zero Set is empty.
type Set struct {
	runes []rune
	mask  runeMask
}

// New returns the set of the given codepoints.
func New(runes ...rune) Set {
	rs := slices.Clone(runes)
	slices.Sort(rs)
	return newSorted(slices.Compact(rs))
}

func newSorted(rs []rune) Set {
	if len(rs) == 0 {
		return Set{}
	}
	return Set{runes: rs, mask: buildMask(rs)}
}

// FromString returns the codepoints of s after NFC normalization, so a
// decomposed "e" + U+0301 asks for the precomposed "é" glyph. Control
// characters are dropped.
func FromString(s string) Set {
	var rs []rune
	for _, r := range norm.NFC.String(s) {
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			continue
		}
		rs = append(rs, r)
	}
	return New(rs...)
}

// FromTables returns every codepoint in the merged tables.
func FromTables(tables ...*unicode.RangeTable) Set {
	if len(tables) == 0 {
		return Set{}
	}
	var rs []rune
	rangetable.Visit(rangetable.Merge(tables...), func(r rune) {
		rs = append(rs, r)
	})
	return New(rs...)
}

// ASCII returns the printable ASCII range raylib loads by default
// (32..126).
func ASCII() Set { return span(32, 126) }

// Latin1 returns printable ASCII plus the printable Latin-1 supplement
// (160..255).
func Latin1() Set { return ASCII().Union(span(160, 255)) }

func span(lo, hi rune) Set {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return newSorted(rs)
}

// Len returns the number of codepoints.
func (s Set) Len() int { return len(s.runes) }

// Runes returns the codepoints in ascending order.
func (s Set) Runes() []rune { return slices.Clone(s.runes) }

// Int32s returns the codepoints as the int32 slice LoadFontEx takes. An
// empty set returns nil, which makes raylib fall back to ASCII.
func (s Set) Int32s() []int32 {
	if len(s.runes) == 0 {
		return nil
	}
	out := make([]int32, len(s.runes))
	copy(out, s.runes)
	return out
}

// Contains reports whether r is in the set.
func (s Set) Contains(r rune) bool { return s.mask.has(r) }

// Union returns the codepoints in s or t.
func (s Set) Union(t Set) Set {
	out := make([]rune, 0, len(s.runes)+len(t.runes))
	i, j := 0, 0
	for i < len(s.runes) && j < len(t.runes) {
		switch a, b := s.runes[i], t.runes[j]; {
		case a < b:
			out = append(out, a)
			i++
		case b < a:
			out = append(out, b)
			j++
		default:
			out = append(out, a)
			i++
			j++
		}
	}
	out = append(out, s.runes[i:]...)
	out = append(out, t.runes[j:]...)
	return newSorted(out)
}

// Intersect returns the codepoints in both s and t.
func (s Set) Intersect(t Set) Set {
	small, big := s, t
	if big.Len() < small.Len() {
		small, big = big, small
	}
	var out []rune
	for _, r := range small.runes {
		if big.mask.has(r) {
			out = append(out, r)
		}
	}
	return newSorted(out)
}

// Filter returns the codepoints of s for which keep returns true.
func (s Set) Filter(keep func(rune) bool) Set {
	var out []rune
	for _, r := range s.runes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return newSorted(out)
}
