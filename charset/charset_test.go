package charset

import (
	"slices"
	"strings"
	"testing"
	"unicode"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNew(t *testing.T) {
	s := New('c', 'a', 'b', 'a')
	if got := s.Runes(); !slices.Equal(got, []rune{'a', 'b', 'c'}) {
		t.Errorf("Runes() = %q", got)
	}
	if !s.Contains('b') || s.Contains('d') || s.Contains(-1) {
		t.Errorf("Contains is wrong for %q", s.Runes())
	}
	if got := s.Int32s(); !slices.Equal(got, []int32{97, 98, 99}) {
		t.Errorf("Int32s() = %v", got)
	}

	var empty Set
	if empty.Len() != 0 || empty.Contains('a') || empty.Int32s() != nil {
		t.Errorf("zero Set is not empty")
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []rune
	}{
		{"dedupe", "abca", []rune{'a', 'b', 'c'}},
		{"decomposed accent", "e\u0301", []rune{'\u00e9'}},
		{"controls dropped", "a\nb\t", []rune{'a', 'b'}},
		{"astral", "😀x", []rune{'x', '😀'}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.in).Runes()
			if !slices.Equal(got, tt.want) {
				t.Errorf("FromString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromTables(t *testing.T) {
	s := FromTables(unicode.Greek, unicode.Digit)
	if !s.Contains('α') || !s.Contains('7') || s.Contains('a') {
		t.Errorf("FromTables(Greek, Digit) membership wrong")
	}
	if FromTables().Len() != 0 {
		t.Errorf("FromTables() is not empty")
	}
}

func TestRanges(t *testing.T) {
	a := ASCII()
	if a.Len() != 95 || a.Runes()[0] != ' ' || a.Runes()[94] != '~' {
		t.Errorf("ASCII() = %d runes", a.Len())
	}
	l := Latin1()
	if l.Len() != 191 || !l.Contains('ÿ') || l.Contains(0x9F) {
		t.Errorf("Latin1() = %d runes", l.Len())
	}
}

func TestSetAlgebra(t *testing.T) {
	s := New('a', 'b', 'c', 0x4E00)
	u := New('b', 'c', 'd', 0x1F600)

	if got := s.Union(u).Runes(); !slices.Equal(got, []rune{'a', 'b', 'c', 'd', 0x4E00, 0x1F600}) {
		t.Errorf("Union = %q", got)
	}
	if got := s.Intersect(u).Runes(); !slices.Equal(got, []rune{'b', 'c'}) {
		t.Errorf("Intersect = %q", got)
	}
	if got := s.Intersect(Set{}); got.Len() != 0 {
		t.Errorf("Intersect(empty) = %q", got.Runes())
	}
	if !s.Union(u).Contains(0x1F600) {
		t.Errorf("union lost an astral codepoint")
	}
}

func TestCoverage(t *testing.T) {
	cov, err := Coverage(goregular.TTF)
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	for _, r := range "AZaz09€é" {
		if !cov.Contains(r) {
			t.Errorf("Go Regular coverage lacks %q", r)
		}
	}
	if cov.Contains(0x4E00) {
		t.Errorf("Go Regular coverage includes a CJK ideograph")
	}
	if got := ASCII().Intersect(cov).Len(); got != 95 {
		t.Errorf("ASCII coverage = %d, want 95", got)
	}

	if _, err := Coverage([]byte("not a font")); err == nil {
		t.Errorf("Coverage of garbage succeeded")
	}
}

func TestSupported(t *testing.T) {
	got, err := Supported(goregular.TTF, FromString("Aé中"))
	if err != nil {
		t.Fatalf("Supported: %v", err)
	}
	if !slices.Equal(got.Runes(), []rune{'A', 'é'}) {
		t.Errorf("Supported = %q", got.Runes())
	}
	if _, err := Supported(nil, ASCII()); err == nil {
		t.Errorf("Supported(nil) succeeded")
	}
}

func TestFamilyName(t *testing.T) {
	name, err := FamilyName(goregular.TTF)
	if err != nil {
		t.Fatalf("FamilyName: %v", err)
	}
	if !strings.HasPrefix(name, "Go") {
		t.Errorf("FamilyName = %q", name)
	}
}
