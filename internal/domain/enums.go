package domain

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is a known visibility value.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// StartCategories is the list offered when starting a session, in
// display order.
var StartCategories = []string{
	"Deep Work",
	"Coding",
	"Reading",
	"Writing",
	"Design",
	"Learning",
	"Exercise",
	"Other",
}

// KnownCategories is every category the app ships with. The timer and the
// store accept any non-empty label; this set only drives display hints.
var KnownCategories = map[string]bool{
	"Deep Work": true, "Coding": true, "Reading": true, "Writing": true,
	"Design": true, "Learning": true, "Exercise": true, "Meditation": true,
	"Creative": true, "Planning": true, "Meeting": true, "Other": true,
}

// Focus levels are rated 1..10 on save.
const (
	MinFocusLevel     = 1
	MaxFocusLevel     = 10
	DefaultFocusLevel = 7
)
