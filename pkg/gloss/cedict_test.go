package gloss

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCedict(t *testing.T) {
	path := writeCorpus(t, "cedict.txt", `# CC-CEDICT
# header line
貓 猫 [mao1] /cat/
狗 狗 [gou3] /dog/canine; hound/
學習 学习 [xue2 xi2] /to study/
`)
	cedict, err := LoadCedict(path)
	if err != nil {
		t.Fatalf("load cedict: %v", err)
	}
	// Indexed under both scripts.
	if _, ok := cedict["貓"]; !ok {
		t.Fatal("expected traditional headword indexed")
	}
	if _, ok := cedict["猫"]; !ok {
		t.Fatal("expected simplified headword indexed")
	}
	// Multi-character headwords are dropped.
	if _, ok := cedict["學習"]; ok {
		t.Fatal("expected multi-char headword skipped")
	}
	dog := cedict["狗"]
	if dog.Pinyin != "gou3" {
		t.Fatalf("unexpected pinyin: %q", dog.Pinyin)
	}
	// Senses split on / and ;.
	want := []string{"dog", "canine", "hound"}
	if len(dog.Defs) != len(want) {
		t.Fatalf("expected %v, got %v", want, dog.Defs)
	}
	for i, w := range want {
		if dog.Defs[i] != w {
			t.Fatalf("def %d: expected %q, got %q", i, w, dog.Defs[i])
		}
	}
}

func TestLoadCedictSkipsCrossReferences(t *testing.T) {
	path := writeCorpus(t, "cedict.txt", `貓 猫 [mao1] /variant of 貓|猫[mao1]/cat/see 貓[mao1]/
`)
	cedict, err := LoadCedict(path)
	if err != nil {
		t.Fatalf("load cedict: %v", err)
	}
	entry := cedict["猫"]
	if len(entry.Defs) != 1 || entry.Defs[0] != "cat" {
		t.Fatalf("expected cross-references dropped, got %v", entry.Defs)
	}
}

func TestLoadCedictStripsLeadingParenthetical(t *testing.T) {
	path := writeCorpus(t, "cedict.txt", `和 和 [he2] /(bound form) harmonious/
`)
	cedict, err := LoadCedict(path)
	if err != nil {
		t.Fatalf("load cedict: %v", err)
	}
	if got := cedict["和"].Defs[0]; got != "harmonious" {
		t.Fatalf("expected parenthetical stripped, got %q", got)
	}
}

func TestLoadCedictReadingGroups(t *testing.T) {
	path := writeCorpus(t, "cedict.txt", `好 好 [hao3] /good/well/
好 好 [hao4] /to be fond of/
`)
	cedict, err := LoadCedict(path)
	if err != nil {
		t.Fatalf("load cedict: %v", err)
	}
	entry := cedict["好"]
	if len(entry.Readings) != 2 {
		t.Fatalf("expected 2 reading groups, got %d", len(entry.Readings))
	}
	if entry.Readings[0].Pinyin != "hao3" || len(entry.Readings[0].Meanings) != 2 {
		t.Fatalf("unexpected first group: %+v", entry.Readings[0])
	}
	if entry.Readings[1].Pinyin != "hao4" {
		t.Fatalf("unexpected second group: %+v", entry.Readings[1])
	}
	// The flat Defs list merges both lines in order.
	if len(entry.Defs) != 3 {
		t.Fatalf("expected 3 merged defs, got %v", entry.Defs)
	}
	// First line's pinyin wins the entry-level reading.
	if entry.Pinyin != "hao3" {
		t.Fatalf("expected hao3, got %q", entry.Pinyin)
	}
}
