// Command heisigdb builds the character→decomposition lookup database from
// the corpus files: the definition corpus, the IDS table, the script-variant
// correspondence table and the gloss dictionaries.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/japaniel/heisigdb/pkg/build"
	"github.com/japaniel/heisigdb/pkg/db"
	"github.com/japaniel/heisigdb/pkg/decompose"
	"github.com/japaniel/heisigdb/pkg/gloss"
	"github.com/japaniel/heisigdb/pkg/ids"
	"github.com/japaniel/heisigdb/pkg/kb"
	"github.com/japaniel/heisigdb/pkg/reading"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	kbFlag := flag.String("kb", "", "Path to the character/primitive definition corpus (JSON)")
	idsFlag := flag.String("ids", "", "Path to the IDS table (tab-separated)")
	variantsFlag := flag.String("variants", "", "Path to the trad/simp/kanji correspondence table (optional)")
	cedictFlag := flag.String("cedict", "", "Path to CC-CEDICT (optional)")
	unihanFlag := flag.String("unihan", "", "Path to Unihan_Readings.txt (optional)")
	charsFlag := flag.String("chars", "", "Path to an extra character list, one char per line (optional)")
	dbFlag := flag.String("db", "heisigdb.db", "Path to the SQLite output database")
	jsonFlag := flag.String("json", "", "Path for a JSON export of the built records (optional)")
	workersFlag := flag.Int("workers", 4, "Concurrent record builders")
	maxDepthFlag := flag.Int("max-depth", decompose.DefaultMaxDepth, "Recursion bound for IDS decomposition")
	kanaFlag := flag.Bool("kana", false, "Fill missing readings from the Japanese IPA dictionary")
	flag.Parse()

	if *kbFlag == "" || *idsFlag == "" {
		log.Fatal("Please provide -kb and -ids corpus paths")
	}

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Knowledge base + variant normalization. Radical variants must be in
	// place before the script-variant pass asks "is this character named".
	index, err := kb.Load(*kbFlag)
	if err != nil {
		log.Fatalf("Failed to load definition corpus: %v", err)
	}
	radicals := index.AddRadicalVariants()
	scripts := 0
	if *variantsFlag != "" {
		rows, err := kb.LoadVariantRows(*variantsFlag)
		if err != nil {
			log.Fatalf("Failed to load variant table: %v", err)
		}
		scripts = index.AddScriptVariants(rows)
	}
	fmt.Printf("Knowledge base: %d entries (%d radical variants, %d script variants synthesized)\n",
		len(index.ByChar), radicals, scripts)

	table, err := ids.LoadTable(*idsFlag)
	if err != nil {
		log.Fatalf("Failed to load IDS table: %v", err)
	}
	fmt.Printf("IDS table: %d sequences, %d numbered components\n",
		len(table.Sequences), len(table.Numbered))

	// Gloss corpora
	var cedict map[string]*gloss.CedictEntry
	if *cedictFlag != "" {
		cedict, err = gloss.LoadCedict(*cedictFlag)
		if err != nil {
			log.Fatalf("Failed to load CC-CEDICT: %v", err)
		}
		fmt.Printf("CC-CEDICT: %d characters\n", len(cedict))
	}
	var unihan map[string][]string
	if *unihanFlag != "" {
		unihan, err = gloss.LoadUnihan(*unihanFlag)
		if err != nil {
			log.Fatalf("Failed to load Unihan readings: %v", err)
		}
		fmt.Printf("Unihan: %d characters\n", len(unihan))
	}

	// Initialize DB
	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()
	if err := db.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	fmt.Printf("Database initialized at %s\n", *dbFlag)

	dec := decompose.New(index, table)
	dec.MaxDepth = *maxDepthFlag

	builder := build.NewBuilder(dec, conn)
	builder.Workers = *workersFlag
	builder.Cedict = cedict
	builder.Logger = log.New(os.Stderr, "", log.LstdFlags)

	if cedict != nil || unihan != nil {
		// Seed the assigner with every keyword the knowledge base already
		// claims so generated keywords never collide with curated ones.
		var reserved []string
		for _, e := range index.ByChar {
			if !e.IsVariant() && e.Keyword != "" {
				reserved = append(reserved, e.Keyword)
			}
		}
		builder.Assigner = gloss.NewAssigner(cedict, unihan, reserved)
	}

	if *kanaFlag {
		analyzer, err := reading.NewAnalyzer()
		if err != nil {
			log.Fatalf("Failed to create reading analyzer: %v", err)
		}
		builder.Readings = analyzer
	}

	// Character set: every non-variant knowledge base entry with a real
	// glyph, plus the extra list.
	var specs []build.CharSpec
	for char, e := range index.ByChar {
		if e.IsVariant() || e.Synthetic() || char == "" {
			continue
		}
		specs = append(specs, build.CharSpec{Char: char})
	}
	if *charsFlag != "" {
		extra, err := build.LoadCharList(*charsFlag)
		if err != nil {
			log.Fatalf("Failed to load character list: %v", err)
		}
		specs = append(specs, extra...)
	}

	stats, err := builder.Build(ctx, specs)
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	fmt.Printf("Stored %d records (%d fully resolved, %d partial, %d unresolved, %d skipped)\n",
		stats.Stored, stats.FullyResolved, stats.Partial, stats.Unresolved, len(stats.Failed))
	printTopGaps(stats.UnresolvedLeaves, 20)

	if *jsonFlag != "" {
		n, err := build.ExportJSON(conn, *jsonFlag)
		if err != nil {
			log.Fatalf("Failed to export JSON: %v", err)
		}
		fmt.Printf("Exported %d records to %s\n", n, *jsonFlag)
	}
}

// printTopGaps lists the most frequent unresolved leaf components so the
// maintainer knows which primitives are worth naming next.
func printTopGaps(freq map[string]int, limit int) {
	if len(freq) == 0 {
		return
	}
	type gap struct {
		char  string
		count int
	}
	gaps := make([]gap, 0, len(freq))
	for c, n := range freq {
		gaps = append(gaps, gap{c, n})
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].count != gaps[j].count {
			return gaps[i].count > gaps[j].count
		}
		return gaps[i].char < gaps[j].char
	})
	if len(gaps) > limit {
		gaps = gaps[:limit]
	}
	fmt.Printf("Top unresolved components:\n")
	for _, g := range gaps {
		fmt.Printf("  %s appears in %d characters\n", g.char, g.count)
	}
}
