package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Ensure single connection to avoid separate in-memory DBs per connection.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUpsertRecord(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	r := &Record{Character: "語", Keyword: "word", Reading: "yu3", Decomposition: "say + five + mouth"}
	id1, err := UpsertRecord(db, r)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Second upsert for the same character keeps the row and overwrites fields.
	r.Keyword = "language"
	id2, err := UpsertRecord(db, r)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected same id, got %d and %d", id1, id2)
	}
	got, err := GetRecord(db, "語")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Keyword != "language" || got.Decomposition != "say + five + mouth" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestUpsertRejectsEmptyCharacter(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	if _, err := UpsertRecord(db, &Record{Character: "  "}); err == nil {
		t.Fatal("expected error for empty character")
	}
}

func TestGetRecordMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	if _, err := GetRecord(db, "犬"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestListRecordsOrdered(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	for _, char := range []string{"語", "口", "言"} {
		if _, err := UpsertRecord(db, &Record{Character: char, Keyword: char}); err != nil {
			t.Fatalf("insert %s: %v", char, err)
		}
	}
	records, err := ListRecords(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Character >= records[i].Character {
			t.Fatalf("expected ordering by character, got %v before %v",
				records[i-1].Character, records[i].Character)
		}
	}
	n, err := CountRecords(db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected count 3, got %d", n)
	}
}

func TestUpsertInTransaction(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := UpsertRecord(tx, &Record{Character: "犬", Keyword: "dog"}); err != nil {
		t.Fatalf("upsert in tx: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := GetRecord(db, "犬"); err != nil {
		t.Fatalf("get after commit: %v", err)
	}
}
