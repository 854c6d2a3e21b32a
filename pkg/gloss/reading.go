package gloss

import (
	"fmt"
	"strings"
)

const (
	maxReadings = 4
	maxMeanings = 4
)

// FormatReading renders the CC-CEDICT readings for a character as
// "pinyin: m1, m2 | pinyin2: ...". Readings keep corpus order; meanings are
// capped per reading and surname-only readings are dropped when the
// character has others.
func FormatReading(cedict map[string]*CedictEntry, char string) string {
	entry, ok := cedict[char]
	if !ok {
		return ""
	}
	var parts []string
	for _, g := range entry.Readings {
		if len(entry.Readings) > 1 && len(g.Meanings) <= 2 && allNameLike(g.Meanings) {
			continue
		}
		shown := g.Meanings
		if len(shown) > maxMeanings {
			shown = shown[:maxMeanings]
		}
		if len(shown) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", g.Pinyin, strings.Join(shown, ", ")))
		if len(parts) >= maxReadings {
			break
		}
	}
	return strings.Join(parts, " | ")
}

func allNameLike(meanings []string) bool {
	for _, m := range meanings {
		lower := strings.ToLower(m)
		if !strings.Contains(lower, "surname") && !strings.Contains(lower, "name") {
			return false
		}
	}
	return true
}
