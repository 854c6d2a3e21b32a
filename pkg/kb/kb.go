// Package kb loads the primitive/character definition corpus and maintains
// the lookup indices the decomposer runs against.
package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry kinds.
const (
	KindCharacter      = "character"
	KindPrimitive      = "primitive"
	KindRadicalVariant = "radical_variant"
	KindScriptVariant  = "script_variant"
)

// Sentinel marks synthetic characters for primitives with no Unicode form.
const Sentinel = "囧"

// Entry is a named unit of meaning: a book character, a primitive, or a
// synthesized variant pointing back at a canonical entry.
type Entry struct {
	Character  string   `json:"character"`
	Keyword    string   `json:"keyword"`
	Kind       string   `json:"type"`
	Number     int      `json:"number"`
	Aliases    []string `json:"primitive_aliases"`
	Components []string `json:"components"`
	VariantOf  string   `json:"variant_of,omitempty"`
}

// Name returns the name under which this entry is referenced as a component
// of other characters: the first alias when present, else the keyword.
func (e *Entry) Name() string {
	if len(e.Aliases) > 0 {
		return e.Aliases[0]
	}
	return e.Keyword
}

// IsVariant reports whether the entry was synthesized from a variant table
// rather than curated directly.
func (e *Entry) IsVariant() bool {
	return e.Kind == KindRadicalVariant || e.Kind == KindScriptVariant
}

// Synthetic reports whether the entry's character is a sentinel-encoded
// placeholder rather than a real glyph.
func (e *Entry) Synthetic() bool {
	return strings.Contains(e.Character, Sentinel)
}

// Corpus matches the definition corpus file layout.
type Corpus struct {
	Characters []Entry `json:"characters"`
	Primitives []Entry `json:"primitives"`
}

// Index is the static knowledge base: character→entry plus
// keyword-or-alias→character. Built once per run and never mutated after
// normalization completes.
type Index struct {
	ByChar map[string]*Entry
	ByName map[string]string
}

// Load reads the definition corpus and builds the base index.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var corpus Corpus
	if err := json.NewDecoder(f).Decode(&corpus); err != nil {
		return nil, fmt.Errorf("failed to parse definition corpus: %w", err)
	}
	return NewIndex(&corpus), nil
}

// NewIndex builds an index from an in-memory corpus. The name index is built
// in two passes, keywords first, so that a primitive alias wins over a
// colliding keyword.
func NewIndex(corpus *Corpus) *Index {
	idx := &Index{
		ByChar: make(map[string]*Entry),
		ByName: make(map[string]string),
	}
	all := make([]*Entry, 0, len(corpus.Characters)+len(corpus.Primitives))
	for i := range corpus.Characters {
		all = append(all, &corpus.Characters[i])
	}
	for i := range corpus.Primitives {
		all = append(all, &corpus.Primitives[i])
	}
	for _, e := range all {
		idx.ByChar[e.Character] = e
		idx.ByName[e.Keyword] = e.Character
	}
	for _, e := range all {
		for _, a := range e.Aliases {
			idx.ByName[a] = e.Character
		}
	}
	return idx
}

// Lookup returns the entry for char, or nil.
func (idx *Index) Lookup(char string) *Entry {
	return idx.ByChar[char]
}

// NameOf returns the component-name for char: the first alias of its entry
// when present, else its keyword. Empty when the character is unknown.
func (idx *Index) NameOf(char string) string {
	if e := idx.ByChar[char]; e != nil {
		return e.Name()
	}
	return ""
}

// CharFor resolves a keyword or alias back to its character.
func (idx *Index) CharFor(name string) (string, bool) {
	c, ok := idx.ByName[name]
	return c, ok
}
