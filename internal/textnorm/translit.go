package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// mojibakeReplacer undoes the most common UTF-8-read-as-cp1252 damage seen in
// the tweet dumps before transliteration runs.
var mojibakeReplacer = strings.NewReplacer(
	"â", "'",
	"â", "'",
	"â", "\"",
	"â", "\"",
	"â", "-",
	"â", "-",
	"â¦", "...",
	"Ã©", "é",
	"Ã¨", "è",
	"Ã³", "ó",
	"Ã­", "í",
	"Ã±", "ñ",
	"Ã¼", "ü",
)

var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func repairMojibake(s string) string {
	return mojibakeReplacer.Replace(s)
}

// foldASCII strips diacritics, maps curly punctuation to plain equivalents,
// and replaces any remaining non-ASCII rune with a space.
func foldASCII(s string) string {
	folded, _, err := transform.String(deaccent, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch r {
		case '‘', '’':
			b.WriteByte('\'')
			continue
		case '“', '”':
			b.WriteByte('"')
			continue
		case '–', '—':
			b.WriteByte('-')
			continue
		}
		if r < 128 {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}
