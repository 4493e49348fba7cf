// Package importer reads and writes the JSON backup format for saved
// activities.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SchemaVersion is written by Export and the only version Validate accepts.
const SchemaVersion = 1

// ImportSchema is the top-level JSON structure of a backup file.
type ImportSchema struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exported_at,omitempty"`
	Activities []ActivityImport `json:"activities"`
}

// ActivityImport is one saved session in a backup file. ID may be empty,
// in which case a fresh one is assigned on import.
type ActivityImport struct {
	ID              string `json:"id,omitempty"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	Note            string `json:"note,omitempty"`
	EvidenceURL     string `json:"evidence_url,omitempty"`
	FocusLevel      *int   `json:"focus_level,omitempty"`
	Visibility      string `json:"visibility,omitempty"`
	ShareCount      int    `json:"share_count,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// LoadImportSchema reads and parses a backup file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadImportSchema(f)
}

// ReadImportSchema parses a backup from r.
func ReadImportSchema(r io.Reader) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// WriteImportSchema writes schema to w as indented JSON.
func WriteImportSchema(w io.Writer, schema *ImportSchema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
