package kb

import "testing"

func variantIndex() *Index {
	return NewIndex(&Corpus{
		Characters: []Entry{
			{Character: "言", Keyword: "say", Kind: KindCharacter},
			{Character: "月", Keyword: "moon", Kind: KindCharacter, Aliases: []string{"flesh", "part of the body"}},
			{Character: "人", Keyword: "person", Kind: KindCharacter},
			{Character: "学", Keyword: "study", Kind: KindCharacter},
		},
	})
}

func TestAddRadicalVariants(t *testing.T) {
	idx := variantIndex()
	added := idx.AddRadicalVariants()
	if added == 0 {
		t.Fatal("expected radical variants to be synthesized")
	}
	e := idx.Lookup("訁")
	if e == nil {
		t.Fatal("expected 訁 to be synthesized from 言")
	}
	if e.Kind != KindRadicalVariant || e.VariantOf != "言" || e.Keyword != "say" {
		t.Fatalf("unexpected variant entry: %+v", e)
	}
	if !e.IsVariant() {
		t.Fatal("expected IsVariant")
	}
}

func TestManualTableOverridesDecomposition(t *testing.T) {
	idx := variantIndex()
	idx.AddRadicalVariants()
	// Unicode decomposes ⺼ to 肉, but the curated table maps it to 月.
	e := idx.Lookup("⺼")
	if e == nil {
		t.Fatal("expected ⺼ to be synthesized")
	}
	if e.VariantOf != "月" {
		t.Fatalf("expected ⺼ mapped to 月, got %q", e.VariantOf)
	}
	if e.Keyword != "moon" || len(e.Aliases) != 2 {
		t.Fatalf("expected inherited keyword and aliases, got %+v", e)
	}
}

func TestKangxiRadicalDecomposition(t *testing.T) {
	idx := variantIndex()
	idx.AddRadicalVariants()
	// Kangxi radical ⼈ (U+2F08) folds to 人 via compatibility decomposition.
	e := idx.Lookup("⼈")
	if e == nil {
		t.Fatal("expected Kangxi radical person to be synthesized")
	}
	if e.VariantOf != "人" || e.Keyword != "person" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestVariantSkipsNamedAndUnnamed(t *testing.T) {
	idx := NewIndex(&Corpus{
		Characters: []Entry{
			{Character: "訁", Keyword: "words on the side", Kind: KindPrimitive},
		},
	})
	idx.AddRadicalVariants()
	// 訁 is already named and 言 is absent, so neither direction synthesizes.
	e := idx.Lookup("訁")
	if e.Keyword != "words on the side" {
		t.Fatalf("expected existing entry untouched, got %+v", e)
	}
	if e.IsVariant() {
		t.Fatal("expected existing entry to keep its kind")
	}
	if idx.Lookup("言") != nil {
		t.Fatal("expected no reverse synthesis")
	}
}

func TestAddScriptVariants(t *testing.T) {
	idx := variantIndex()
	rows := []VariantRow{
		{Traditional: "學", Simplified: "学", Kanji: "学"},
		{Traditional: "來", Simplified: "来", Kanji: "来"}, // 来 unnamed: skipped
		{Traditional: "人", Simplified: "人", Kanji: "人"}, // identical forms: skipped
	}
	added := idx.AddScriptVariants(rows)
	if added != 1 {
		t.Fatalf("expected 1 script variant, got %d", added)
	}
	e := idx.Lookup("學")
	if e == nil || e.Kind != KindScriptVariant || e.VariantOf != "学" || e.Keyword != "study" {
		t.Fatalf("unexpected entry for 學: %+v", e)
	}
	if idx.Lookup("來") != nil {
		t.Fatal("expected 來 not synthesized when 来 is unnamed")
	}
}

func TestLoadVariantRows(t *testing.T) {
	path := writeTempFile(t, "variants.tsv", "# trad\tsimp\tkanji\n學\t学\t学\n來\t来\t\n")
	rows, err := LoadVariantRows(path)
	if err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Traditional != "學" || rows[0].Simplified != "学" || rows[0].Kanji != "学" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Kanji != "" {
		t.Fatalf("expected empty kanji form, got %q", rows[1].Kanji)
	}
}
