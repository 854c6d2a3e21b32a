package build

import (
	"database/sql"
	"encoding/json"
	"os"

	"github.com/japaniel/heisigdb/pkg/db"
)

// ExportJSON writes the stored records as a character-keyed JSON object, the
// shape the addon consumer reads. Map keys marshal sorted, so the export is
// byte-identical across runs over the same corpus.
func ExportJSON(conn *sql.DB, path string) (int, error) {
	records, err := db.ListRecords(conn)
	if err != nil {
		return 0, err
	}
	out := make(map[string]db.Record, len(records))
	for _, r := range records {
		out[r.Character] = r
	}
	data, err := json.MarshalIndent(out, "", " ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(records), nil
}
