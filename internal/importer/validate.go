package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// ValidateImportSchema checks the schema before conversion and returns
// every problem found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", schema.Version, SchemaVersion))
	}

	ids := make(map[string]bool)
	for i, a := range schema.Activities {
		errs = append(errs, validateActivity(fmt.Sprintf("activities[%d]", i), &a, ids)...)
	}

	return errs
}

func validateActivity(prefix string, a *ActivityImport, ids map[string]bool) []error {
	var errs []error

	if a.ID != "" {
		if ids[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, a.ID))
		}
		ids[a.ID] = true
	}
	if strings.TrimSpace(a.Category) == "" {
		errs = append(errs, fmt.Errorf("%s.category is required", prefix))
	}
	if a.DurationMinutes < 1 {
		errs = append(errs, fmt.Errorf("%s.duration_minutes must be at least 1, got %d", prefix, a.DurationMinutes))
	}
	if a.FocusLevel != nil && (*a.FocusLevel < domain.MinFocusLevel || *a.FocusLevel > domain.MaxFocusLevel) {
		errs = append(errs, fmt.Errorf("%s.focus_level must be between %d and %d, got %d",
			prefix, domain.MinFocusLevel, domain.MaxFocusLevel, *a.FocusLevel))
	}
	if a.Visibility != "" && !domain.Visibility(a.Visibility).Valid() {
		errs = append(errs, fmt.Errorf("%s.visibility: invalid value %q", prefix, a.Visibility))
	}
	if a.ShareCount < 0 {
		errs = append(errs, fmt.Errorf("%s.share_count must not be negative", prefix))
	}
	if a.CreatedAt == "" {
		errs = append(errs, fmt.Errorf("%s.created_at is required", prefix))
	} else if _, err := time.Parse(time.RFC3339, a.CreatedAt); err != nil {
		errs = append(errs, fmt.Errorf("%s.created_at: invalid timestamp %q (expected RFC 3339)", prefix, a.CreatedAt))
	}

	return errs
}
