package match

import (
	"regexp"
	"strings"
)

var (
	reTaxPct    = regexp.MustCompile(`\b\d+(\.\d+)?\s*%`)     // "5%", "12.5 %"
	reHSNCode   = regexp.MustCompile(`\b([a-z]{2,3}[ .]?)?\d{4,8}\b`) // "62041990", "hsn 62041990"
	reAlnumCode = regexp.MustCompile(`\b[a-z]{4,}\d+\b`)      // OCR-garbled codes like "isstegz00"
	reSpaces    = regexp.MustCompile(`\s+`)
)

// NormalizedName is the comparison-ready form of a raw item name.
// Canonical is lower-case, code/tax noise stripped, single-spaced;
// Tokens is Canonical split on spaces. Derived deterministically,
// never persisted.
type NormalizedName struct {
	Canonical string
	Tokens    []string
}

// Normalize canonicalizes a raw name for matching. It is total (any input,
// including empty or pure noise, yields a valid result) and idempotent.
// Stage order matters: noise removal runs on the lower-cased string before
// punctuation collapse so that tagged codes are still word-bounded.
func Normalize(raw string) NormalizedName {
	s := strings.ToLower(raw)
	s = reTaxPct.ReplaceAllString(s, " ")
	s = reHSNCode.ReplaceAllString(s, " ")
	s = reAlnumCode.ReplaceAllString(s, " ")
	s = stripPunct(s)
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	if s == "" {
		return NormalizedName{}
	}
	tokens := strings.Split(s, " ")
	return NormalizedName{
		Canonical: s,
		Tokens:    tokens,
	}
}

// stripPunct maps separator punctuation (hyphens, pipes, colons and the like)
// to spaces. Periods survive only between digits, so decimal numbers stay
// intact while trailing dots and abbreviation dots go. Rune loop instead of a
// regexp because RE2 has no lookaround for the digit-adjacency rule.
func stripPunct(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		case r == '.' && i > 0 && i < len(runes)-1 && isDigit(runes[i-1]) && isDigit(runes[i+1]):
			b.WriteRune(r)
		case r > 127 && !isSymbolRune(r):
			// non-ASCII letters (accented names) pass through
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbolRune(r rune) bool {
	// currency signs and typographic dashes show up in OCR text
	switch r {
	case '₹', '£', '€', '–', '—', '…', '•', '“', '”', '‘', '’':
		return true
	}
	return false
}
