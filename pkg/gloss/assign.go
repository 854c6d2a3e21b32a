package gloss

import (
	"fmt"
	"strings"
)

// Provenance values recorded with each assignment.
const (
	SourceCedict   = "cedict"
	SourceUnihan   = "unihan"
	SourceNumbered = "numbered"
)

// Assignment is the outcome of a successful keyword assignment.
type Assignment struct {
	Keyword string
	Reading string
	Source  string
}

// Assigner hands out unique keywords from the gloss corpora. The used set is
// shared across a batch so no two characters normalize to the same keyword.
type Assigner struct {
	Cedict map[string]*CedictEntry
	Unihan map[string][]string
	used   map[string]bool
}

// NewAssigner creates an assigner seeded with the already-reserved keywords
// (normalized internally).
func NewAssigner(cedict map[string]*CedictEntry, unihan map[string][]string, reserved []string) *Assigner {
	a := &Assigner{
		Cedict: cedict,
		Unihan: unihan,
		used:   make(map[string]bool, len(reserved)),
	}
	for _, kw := range reserved {
		a.used[Normalize(kw)] = true
	}
	return a
}

// Reserve marks a keyword as taken.
func (a *Assigner) Reserve(kw string) {
	a.used[Normalize(kw)] = true
}

// Assign picks a unique keyword for char: CC-CEDICT senses in order, then
// Unihan, then the first available sense with an incrementing disambiguation
// suffix. Fails only when neither source has any gloss for the character.
func (a *Assigner) Assign(char string) (Assignment, error) {
	reading := ""
	if ce, ok := a.Cedict[char]; ok {
		reading = ce.Pinyin
		for _, d := range ce.Defs {
			if a.take(d) {
				return Assignment{Keyword: d, Reading: reading, Source: SourceCedict}, nil
			}
		}
	}
	if defs, ok := a.Unihan[char]; ok {
		for _, d := range defs {
			if a.take(d) {
				return Assignment{Keyword: d, Reading: reading, Source: SourceUnihan}, nil
			}
		}
	}

	// All candidates collide: fall back to a numbered suffix on the first
	// sense from whichever source has one.
	base := ""
	if ce, ok := a.Cedict[char]; ok && len(ce.Defs) > 0 {
		base = ce.Defs[0]
	} else if defs, ok := a.Unihan[char]; ok && len(defs) > 0 {
		base = defs[0]
	}
	if base == "" {
		return Assignment{}, fmt.Errorf("no gloss available for %q", char)
	}
	for i := 2; i < 100; i++ {
		candidate := fmt.Sprintf("%s (%d)", base, i)
		if a.take(candidate) {
			return Assignment{Keyword: candidate, Reading: reading, Source: SourceNumbered}, nil
		}
	}
	return Assignment{}, fmt.Errorf("could not disambiguate keyword for %q", char)
}

// take reserves kw if its normalized form is free.
func (a *Assigner) take(kw string) bool {
	norm := Normalize(kw)
	if a.used[norm] {
		return false
	}
	a.used[norm] = true
	return true
}

// Normalize folds a keyword for uniqueness checking: lowercased, trimmed,
// with naive pluralization stripped.
func Normalize(kw string) string {
	kw = strings.ToLower(strings.TrimSpace(kw))
	switch {
	case strings.HasSuffix(kw, "ies"):
		kw = kw[:len(kw)-3] + "y"
	case strings.HasSuffix(kw, "es"):
		kw = kw[:len(kw)-2]
	case strings.HasSuffix(kw, "s") && !strings.HasSuffix(kw, "ss"):
		kw = kw[:len(kw)-1]
	}
	return kw
}
