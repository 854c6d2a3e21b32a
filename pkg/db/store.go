package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// UpsertRecord inserts or replaces the record for its character and returns
// the row id. Rebuilding over an existing table overwrites every field, so a
// second run over the same corpus yields the identical table.
func UpsertRecord(db DBExecutor, r *Record) (int64, error) {
	char := strings.TrimSpace(r.Character)
	if char == "" {
		return 0, fmt.Errorf("record character must be non-empty")
	}

	var id int64
	query := `INSERT INTO records (character, keyword, reading, decomposition, components_detail, spatial, ids, tags)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT(character)
			  DO UPDATE SET
			    keyword = excluded.keyword,
				reading = excluded.reading,
				decomposition = excluded.decomposition,
				components_detail = excluded.components_detail,
				spatial = excluded.spatial,
				ids = excluded.ids,
				tags = excluded.tags
			  RETURNING id`

	err := db.QueryRow(query, char, r.Keyword, r.Reading, r.Decomposition,
		r.ComponentsDetail, r.Spatial, r.IDS, r.Tags).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert record: %w", err)
	}
	return id, nil
}

// GetRecord returns the record for a character, or sql.ErrNoRows.
func GetRecord(db DBExecutor, character string) (*Record, error) {
	r := &Record{}
	err := db.QueryRow(`SELECT id, character, keyword, reading, decomposition, components_detail, spatial, ids, tags
		FROM records WHERE character = ?`, character).
		Scan(&r.ID, &r.Character, &r.Keyword, &r.Reading, &r.Decomposition,
			&r.ComponentsDetail, &r.Spatial, &r.IDS, &r.Tags)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRecords returns all records ordered by character, so exports derived
// from the table are deterministic.
func ListRecords(db DBExecutor) ([]Record, error) {
	rows, err := db.Query(`SELECT id, character, keyword, reading, decomposition, components_detail, spatial, ids, tags
		FROM records ORDER BY character`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Character, &r.Keyword, &r.Reading, &r.Decomposition,
			&r.ComponentsDetail, &r.Spatial, &r.IDS, &r.Tags); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountRecords returns the number of stored records.
func CountRecords(db DBExecutor) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}
