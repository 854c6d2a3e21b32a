package ids

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// NumberedDef describes a {N} placeholder component: a human description and
// an optional IDS expansion (empty when the form has no decomposable
// structure).
type NumberedDef struct {
	Description string
	Expansion   string
}

// Table holds the raw IDS sequences per character plus the numbered
// placeholder definitions, loaded once per run and treated as read-only.
type Table struct {
	Sequences map[string][]string
	Numbered  map[int]NumberedDef
}

var numberedDefRe = regexp.MustCompile(`^#\s+\{(\d+)\}\s+(.+)`)

// LoadTable reads an IDS text table. Data lines are tab-separated
// (codepoint, character, one or more IDS strings); comment lines of the
// form "# {N} description [\t ... \t expansion]" define numbered
// placeholders, where an expansion of ？ means none is known.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &Table{
		Sequences: make(map[string][]string),
		Numbered:  make(map[int]NumberedDef),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if m := numberedDefRe.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			parts := strings.Split(m[2], "\t")
			def := NumberedDef{Description: strings.TrimSpace(parts[0])}
			if len(parts) > 1 {
				exp := strings.TrimSpace(parts[len(parts)-1])
				if exp != "？" {
					def.Expansion = exp
				}
			}
			t.Numbered[n] = def
			continue
		}
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) >= 3 {
			t.Sequences[parts[1]] = parts[2:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// First returns the first raw IDS sequence for char. When a character has
// several regional sequences only the first is ever consumed.
func (t *Table) First(char string) (string, bool) {
	seqs, ok := t.Sequences[char]
	if !ok || len(seqs) == 0 {
		return "", false
	}
	return seqs[0], true
}

// CleanFirst returns the first sequence for char with region tags stripped,
// or empty when the character has none.
func (t *Table) CleanFirst(char string) string {
	raw, ok := t.First(char)
	if !ok {
		return ""
	}
	return Clean(raw)
}
