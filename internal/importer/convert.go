package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated schema into activities ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, 0, len(schema.Activities))
	for i, in := range schema.Activities {
		createdAt, err := time.Parse(time.RFC3339, in.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("activities[%d].created_at: %w", i, err)
		}

		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		visibility := domain.Visibility(in.Visibility)
		if visibility == "" {
			visibility = domain.VisibilityPublic
		}

		a := &domain.Activity{
			ID:              id,
			Category:        strings.TrimSpace(in.Category),
			DurationMinutes: in.DurationMinutes,
			Note:            in.Note,
			EvidenceURL:     in.EvidenceURL,
			Visibility:      visibility,
			ShareCount:      in.ShareCount,
			CreatedAt:       createdAt.UTC(),
		}
		if in.FocusLevel != nil {
			a.FocusLevel = domain.IntPtr(*in.FocusLevel)
		}
		out = append(out, a)
	}
	return out, nil
}

// FromActivities builds a backup of activities stamped with exportedAt.
func FromActivities(activities []*domain.Activity, exportedAt time.Time) *ImportSchema {
	schema := &ImportSchema{
		Version:    SchemaVersion,
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Activities: make([]ActivityImport, 0, len(activities)),
	}
	for _, a := range activities {
		ai := ActivityImport{
			ID:              a.ID,
			Category:        a.Category,
			DurationMinutes: a.DurationMinutes,
			Note:            a.Note,
			EvidenceURL:     a.EvidenceURL,
			Visibility:      string(a.Visibility),
			ShareCount:      a.ShareCount,
			CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if a.FocusLevel != nil {
			ai.FocusLevel = domain.IntPtr(*a.FocusLevel)
		}
		schema.Activities = append(schema.Activities, ai)
	}
	return schema
}
