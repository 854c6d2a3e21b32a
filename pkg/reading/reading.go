// Package reading supplies kana readings for kanji entries that have no
// CC-CEDICT reading, via morphological analysis.
package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Analyzer wraps a kagome tokenizer over the IPA dictionary.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer creates a new tokenizer instance.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Reading returns the hiragana reading of a single character, or empty when
// the dictionary has none. Multi-token analyses mean the input was not a
// single lexical unit; the first token's reading is still the best guess.
func (a *Analyzer) Reading(char string) string {
	char = strings.TrimSpace(char)
	if char == "" {
		return ""
	}
	tokens := a.t.Tokenize(char)
	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		// IPA feature 7 is the katakana reading.
		if len(features) > 7 && features[7] != "*" {
			return ToHiragana(features[7])
		}
	}
	return ""
}

// ToHiragana converts katakana runes to hiragana, leaving everything else
// untouched.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
