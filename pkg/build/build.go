// Package build orchestrates the batch run: it walks the character set,
// produces one lookup record per character from the decomposition engine and
// gloss corpora, and persists the result.
package build

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/japaniel/heisigdb/pkg/db"
	"github.com/japaniel/heisigdb/pkg/decompose"
	"github.com/japaniel/heisigdb/pkg/gloss"
	"github.com/japaniel/heisigdb/pkg/kb"
)

// ReadingSource supplies a fallback kana reading for characters CC-CEDICT
// does not cover.
type ReadingSource interface {
	Reading(char string) string
}

// CharSpec names one character to build, with optional pre-set tags
// (e.g. frequency-level tags from a character list).
type CharSpec struct {
	Char string
	Tags string
}

// Stats summarizes a build run.
type Stats struct {
	Total            int
	FullyResolved    int
	Partial          int
	Unresolved       int
	Stored           int
	Failed           []string
	UnresolvedLeaves map[string]int
}

// Builder holds the immutable context a run needs. All fields are built once
// at startup and treated as read-only; per-character work shares nothing
// mutable beyond the batch writer.
type Builder struct {
	Decomposer *decompose.Decomposer
	Cedict     map[string]*gloss.CedictEntry
	Assigner   *gloss.Assigner
	Readings   ReadingSource
	DB         *sql.DB
	Workers    int
	BatchSize  int
	Logger     *log.Logger
}

// NewBuilder creates a builder with default worker and batch sizing.
func NewBuilder(dec *decompose.Decomposer, conn *sql.DB) *Builder {
	return &Builder{
		Decomposer: dec,
		DB:         conn,
		Workers:    4,
		BatchSize:  50,
	}
}

type result struct {
	index      int
	record     *db.Record
	resolved   int
	unresolved int
	gaps       []string
}

// Build processes the character set and upserts one record per character.
// Keyword assignment runs first, sequentially in sorted character order, so
// collision handling is deterministic; decomposition and record assembly are
// pure per character and run on the worker pool.
func (b *Builder) Build(ctx context.Context, specs []CharSpec) (*Stats, error) {
	specs = dedupe(specs)
	stats := &Stats{
		Total:            len(specs),
		UnresolvedLeaves: make(map[string]int),
	}

	// Phase 1: backfill keywords for characters the knowledge base does not
	// name. Shared used-set, so this stays on one goroutine.
	assigned := make(map[string]gloss.Assignment, len(specs))
	var targets []CharSpec
	for _, spec := range specs {
		if b.index().Lookup(spec.Char) != nil {
			targets = append(targets, spec)
			continue
		}
		if b.Assigner == nil {
			targets = append(targets, spec)
			continue
		}
		a, err := b.Assigner.Assign(spec.Char)
		if err != nil {
			stats.Failed = append(stats.Failed, spec.Char)
			b.logf("skipping %s: %v", spec.Char, err)
			continue
		}
		assigned[spec.Char] = a
		targets = append(targets, spec)
	}

	// Phase 2: decompose and assemble records concurrently, commit batches
	// in order.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := b.Workers
	if workers <= 0 {
		workers = 1
	}
	pool := NewWorkerPool(workers, workers*2)
	pool.Start(ctx)
	defer pool.Close()

	resultCh := make(chan result, workers*2)
	doneCh := make(chan error, 1)
	bw := NewBatchWriter(b.DB, b.BatchSize)

	go func() {
		defer close(doneCh)
		buffer := make(map[int]result)
		next := 0
		for res := range resultCh {
			buffer[res.index] = res
			for {
				r, ok := buffer[next]
				if !ok {
					break
				}
				delete(buffer, next)
				next++

				switch {
				case r.unresolved == 0:
					stats.FullyResolved++
				case r.resolved > 0:
					stats.Partial++
				default:
					stats.Unresolved++
				}
				for _, gap := range r.gaps {
					stats.UnresolvedLeaves[gap]++
				}

				rec := r.record
				err := bw.Submit(func(tx *sql.Tx) error {
					if _, err := db.UpsertRecord(tx, rec); err != nil {
						return fmt.Errorf("failed to persist record %s: %w", rec.Character, err)
					}
					return nil
				})
				if err != nil {
					cancel()
					doneCh <- err
					return
				}
				stats.Stored++
			}
		}
	}()

	var submitErr error
	for i, spec := range targets {
		idx, s := i, spec
		job := func(ctx context.Context) {
			res := b.buildRecord(s, assigned[s.Char])
			res.index = idx
			select {
			case resultCh <- res:
			case <-ctx.Done():
			}
		}
		if err := pool.Submit(ctx, job); err != nil {
			if err == ctx.Err() || err == ErrPoolClosed {
				break
			}
			submitErr = err
			break
		}
	}

	pool.Close()
	close(resultCh)

	consumerErr := <-doneCh
	if err := bw.Close(); err != nil && consumerErr == nil {
		consumerErr = err
	}
	if submitErr != nil {
		return stats, submitErr
	}
	return stats, consumerErr
}

// buildRecord assembles the output record for one character. Pure: reads
// only the immutable indices plus the pre-computed assignment.
func (b *Builder) buildRecord(spec CharSpec, a gloss.Assignment) result {
	char := spec.Char
	rec := &db.Record{Character: char}
	entry := b.index().Lookup(char)

	tags := splitTags(spec.Tags)
	switch {
	case entry != nil:
		rec.Keyword = entry.Keyword
		if entry.Kind == kb.KindPrimitive && len(entry.Aliases) > 0 {
			rec.Keyword = fmt.Sprintf("%s (also: %s)", entry.Keyword, strings.Join(entry.Aliases, ", "))
		}
		if entry.Kind == kb.KindPrimitive || len(entry.Aliases) > 0 {
			tags = append(tags, "primitive")
		}
	default:
		rec.Keyword = a.Keyword
		rec.Reading = a.Reading
	}

	if rec.Reading == "" {
		rec.Reading = gloss.FormatReading(b.Cedict, char)
	}
	if rec.Reading == "" && b.Readings != nil {
		rec.Reading = b.Readings.Reading(char)
	}

	tree := b.Decomposer.Decompose(char)
	parts := decompose.FlattenNamed(tree)
	if !tree.IsLeaf() {
		rec.Decomposition = joinParts(parts)
		rec.ComponentsDetail = b.componentsDetail(parts)
	}

	rec.Spatial = b.Decomposer.TopLevelLayout(char)
	rec.IDS = b.Decomposer.Table.CleanFirst(char)
	rec.Tags = joinTags(tags)

	resolved, unresolved := decompose.CountLeaves(tree)
	var gaps []string
	for _, p := range parts {
		if p.Name == "" {
			gaps = append(gaps, p.Char)
		}
	}
	return result{record: rec, resolved: resolved, unresolved: unresolved, gaps: gaps}
}

// componentsDetail renders "char = keyword" pairs for the named components,
// annotating aliases when the decomposition referenced one. Synthetic
// sentinel characters and unresolvable placeholders are skipped.
func (b *Builder) componentsDetail(parts []decompose.Part) string {
	var details []string
	seen := make(map[string]bool)
	for _, p := range parts {
		if p.Name == "" || p.Char == "?" || strings.Contains(p.Char, kb.Sentinel) || seen[p.Char] {
			continue
		}
		seen[p.Char] = true

		keyword := p.Name
		var aliases []string
		if e := b.index().Lookup(p.Char); e != nil {
			if e.Keyword != "" {
				keyword = e.Keyword
			}
			aliases = e.Aliases
		}
		detail := fmt.Sprintf("%s = %s", p.Char, keyword)
		if !strings.EqualFold(p.Name, keyword) && containsFold(aliases, p.Name) {
			detail += fmt.Sprintf(" (alias: %s)", p.Name)
		} else if others := otherAliases(aliases, keyword); len(others) > 0 {
			detail += fmt.Sprintf(" (alias: %s)", strings.Join(others, ", "))
		}
		details = append(details, detail)
	}
	return strings.Join(details, ", ")
}

func (b *Builder) index() *kb.Index { return b.Decomposer.Index }

func (b *Builder) logf(format string, args ...interface{}) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}

// joinParts renders the flattened components as "name + name + ...", using
// the raw character for unresolved gaps the way the source decks did.
func joinParts(parts []decompose.Part) string {
	var names []string
	for _, p := range parts {
		if p.Name != "" {
			names = append(names, p.Name)
		} else {
			names = append(names, p.Char)
		}
	}
	return strings.Join(names, " + ")
}

func splitTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return nil
	}
	return strings.Fields(tags)
}

func joinTags(tags []string) string {
	uniq := make(map[string]bool)
	var out []string
	for _, t := range tags {
		if !uniq[t] {
			uniq[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}

func containsFold(ss []string, s string) bool {
	for _, v := range ss {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func otherAliases(aliases []string, keyword string) []string {
	var out []string
	for _, a := range aliases {
		if !strings.EqualFold(a, keyword) {
			out = append(out, a)
		}
	}
	return out
}

func dedupe(specs []CharSpec) []CharSpec {
	seen := make(map[string]bool, len(specs))
	var out []CharSpec
	for _, s := range specs {
		s.Char = strings.TrimSpace(s.Char)
		if s.Char == "" || seen[s.Char] {
			continue
		}
		seen[s.Char] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}
