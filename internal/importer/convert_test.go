package importer

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Defaults(t *testing.T) {
	acts, err := Convert(validMinimalSchema())
	require.NoError(t, err)
	require.Len(t, acts, 1)

	a := acts[0]
	assert.NotEmpty(t, a.ID, "missing id gets a fresh uuid")
	assert.Equal(t, "Deep Work", a.Category)
	assert.Equal(t, 25, a.DurationMinutes)
	assert.Equal(t, domain.VisibilityPublic, a.Visibility)
	assert.Nil(t, a.FocusLevel)
	assert.Equal(t, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), a.CreatedAt)
	assert.NoError(t, a.Validate())
}

func TestConvert_KeepsIDAndNormalizesTimezone(t *testing.T) {
	schema := &ImportSchema{
		Version: SchemaVersion,
		Activities: []ActivityImport{{
			ID: "keep-me", Category: "  Reading ", DurationMinutes: 40, FocusLevel: ptrInt(3),
			Visibility: "private", ShareCount: 4, CreatedAt: "2026-05-01T11:30:00+02:00",
		}},
	}

	acts, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, acts, 1)

	a := acts[0]
	assert.Equal(t, "keep-me", a.ID)
	assert.Equal(t, "Reading", a.Category)
	require.NotNil(t, a.FocusLevel)
	assert.Equal(t, 3, *a.FocusLevel)
	assert.Equal(t, domain.VisibilityPrivate, a.Visibility)
	assert.Equal(t, 4, a.ShareCount)
	assert.Equal(t, time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC), a.CreatedAt)
}

func TestFromActivities_ReadsBack(t *testing.T) {
	created := time.Date(2026, 5, 1, 9, 0, 0, 500, time.UTC)
	original := []*domain.Activity{{
		ID: "a1", Category: "Coding", DurationMinutes: 30, Note: "tests",
		FocusLevel: domain.IntPtr(8), Visibility: domain.VisibilityPrivate, ShareCount: 1, CreatedAt: created,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteImportSchema(&buf, FromActivities(original, created.Add(time.Hour))))
	assert.Contains(t, buf.String(), `"version": 1`)

	schema, err := ReadImportSchema(&buf)
	require.NoError(t, err)
	require.Empty(t, ValidateImportSchema(schema))

	acts, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, original[0], acts[0], "sub-second timestamps survive the backup")
}

func TestReadImportSchema_Malformed(t *testing.T) {
	_, err := ReadImportSchema(bytes.NewBufferString(`{"version": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}
