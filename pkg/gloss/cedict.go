// Package gloss parses the bilingual/monolingual gloss corpora and assigns
// unique keywords to characters the knowledge base does not name.
package gloss

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// CedictEntry holds the readings and ordered definitions for a single
// character headword. Pinyin and Defs merge every line for the character
// (keyword assignment wants one flat candidate list); Readings keeps the
// per-pinyin grouping for display formatting.
type CedictEntry struct {
	Pinyin   string
	Defs     []string
	Readings []ReadingGroup
}

// ReadingGroup is one pinyin reading with its merged meanings.
type ReadingGroup struct {
	Pinyin   string
	Meanings []string
}

var (
	cedictLineRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]+)\]\s+/(.+)/`)
	// Pure cross-reference senses carry no usable gloss.
	crossRefRe = regexp.MustCompile(`(?i)^(variant of|see |also written|abbr\. for|same as)`)
	parenRe    = regexp.MustCompile(`^\([^)]+\)\s*`)
)

// LoadCedict parses a CC-CEDICT file into a character→entry map. Only
// single-character headwords are kept, indexed under both the traditional
// and simplified form; multi-sense lines are split on / and ;, and pure
// cross-reference senses are discarded.
func LoadCedict(path string) (map[string]*CedictEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cedict := make(map[string]*CedictEntry)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := cedictLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		trad, simp, pinyin, defsStr := m[1], m[2], m[3], m[4]

		var defs []string
		for _, d := range strings.Split(defsStr, "/") {
			d = strings.TrimSpace(d)
			if d == "" || crossRefRe.MatchString(d) {
				continue
			}
			d = parenRe.ReplaceAllString(d, "")
			if d == "" {
				continue
			}
			for _, sub := range strings.Split(d, ";") {
				if sub = strings.TrimSpace(sub); sub != "" {
					defs = append(defs, sub)
				}
			}
		}

		for _, char := range []string{trad, simp} {
			if len([]rune(char)) != 1 {
				continue
			}
			entry, ok := cedict[char]
			if !ok {
				entry = &CedictEntry{Pinyin: pinyin}
				cedict[char] = entry
			}
			for _, d := range defs {
				if !contains(entry.Defs, d) {
					entry.Defs = append(entry.Defs, d)
				}
			}
			group := -1
			for i := range entry.Readings {
				if entry.Readings[i].Pinyin == pinyin {
					group = i
					break
				}
			}
			if group < 0 {
				entry.Readings = append(entry.Readings, ReadingGroup{Pinyin: pinyin})
				group = len(entry.Readings) - 1
			}
			for _, d := range defs {
				if !contains(entry.Readings[group].Meanings, d) {
					entry.Readings[group].Meanings = append(entry.Readings[group].Meanings, d)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cedict, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
