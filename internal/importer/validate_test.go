package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int { return &i }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Version: SchemaVersion,
		Activities: []ActivityImport{
			{Category: "Deep Work", DurationMinutes: 25, CreatedAt: "2026-05-01T09:00:00Z"},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_Empty(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(&ImportSchema{Version: SchemaVersion}))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Version:    SchemaVersion,
		ExportedAt: "2026-05-02T00:00:00Z",
		Activities: []ActivityImport{
			{
				ID: "a1", Category: "Coding", DurationMinutes: 90, Note: "parser",
				EvidenceURL: "https://example.com/pr/1", FocusLevel: ptrInt(9),
				Visibility: "private", ShareCount: 2, CreatedAt: "2026-05-01T09:00:00.123456789+02:00",
			},
			{ID: "a2", Category: "Meditation", DurationMinutes: 1, Visibility: "public", CreatedAt: "2026-05-01T10:00:00Z"},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Version: 2,
		Activities: []ActivityImport{
			{ID: "dup", Category: " ", DurationMinutes: 0, FocusLevel: ptrInt(11), Visibility: "friends", ShareCount: -1},
			{ID: "dup", Category: "Coding", DurationMinutes: 5, CreatedAt: "yesterday"},
		},
	}

	errs := ValidateImportSchema(schema)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")

	assert.Len(t, errs, 9)
	for _, want := range []string{
		"version: unsupported value 2",
		"activities[0].category is required",
		"activities[0].duration_minutes must be at least 1",
		"activities[0].focus_level must be between 1 and 10",
		`activities[0].visibility: invalid value "friends"`,
		"activities[0].share_count must not be negative",
		"activities[0].created_at is required",
		`activities[1].id: duplicate id "dup"`,
		`activities[1].created_at: invalid timestamp "yesterday"`,
	} {
		assert.Contains(t, joined, want)
	}
}
