package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActivity() *Activity {
	return &Activity{
		ID:              "a1",
		Category:        "Coding",
		DurationMinutes: 40,
		FocusLevel:      IntPtr(7),
		Visibility:      VisibilityPublic,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestActivity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Activity)
		wantErr bool
	}{
		{"valid", func(*Activity) {}, false},
		{"no focus level", func(a *Activity) { a.FocusLevel = nil }, false},
		{"private", func(a *Activity) { a.Visibility = VisibilityPrivate }, false},
		{"unknown category accepted", func(a *Activity) { a.Category = "Gardening" }, false},
		{"blank category", func(a *Activity) { a.Category = "  " }, true},
		{"zero minutes", func(a *Activity) { a.DurationMinutes = 0 }, true},
		{"focus too low", func(a *Activity) { a.FocusLevel = IntPtr(0) }, true},
		{"focus too high", func(a *Activity) { a.FocusLevel = IntPtr(11) }, true},
		{"bad visibility", func(a *Activity) { a.Visibility = "friends" }, true},
		{"empty visibility", func(a *Activity) { a.Visibility = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validActivity()
			tt.mutate(a)
			err := a.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidActivity)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestActivityUpdate_Apply(t *testing.T) {
	a := validActivity()
	note := "refactored the parser"
	vis := VisibilityPrivate

	ActivityUpdate{Note: &note, Visibility: &vis, FocusLevel: IntPtr(9)}.Apply(a)

	assert.Equal(t, "Coding", a.Category, "unset fields are untouched")
	assert.Equal(t, 40, a.DurationMinutes)
	assert.Equal(t, note, a.Note)
	assert.Equal(t, VisibilityPrivate, a.Visibility)
	require.NotNil(t, a.FocusLevel)
	assert.Equal(t, 9, *a.FocusLevel)
	assert.False(t, a.IsPublic())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "Reading", CoalesceStr("   ", " Reading "))
	assert.Equal(t, "", CoalesceStr("", "\t"))
}

func TestFocusOrDefault(t *testing.T) {
	assert.Equal(t, DefaultFocusLevel, *FocusOrDefault())
	assert.Equal(t, 3, *FocusOrDefault(nil, IntPtr(3)))

	src := IntPtr(9)
	got := FocusOrDefault(src)
	*got = 1
	assert.Equal(t, 9, *src, "result must not alias the input")
}

func TestVisibilityOrDefault(t *testing.T) {
	assert.Equal(t, VisibilityPublic, VisibilityOrDefault(""))
	assert.Equal(t, VisibilityPrivate, VisibilityOrDefault(VisibilityPrivate))
}

func TestStartCategoriesAreKnown(t *testing.T) {
	for _, c := range StartCategories {
		assert.True(t, KnownCategories[c], c)
	}
}
