package domain

import "strings"

// CoalesceStr returns the first value that is not blank, with surrounding
// whitespace removed. It returns "" when every value is blank.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// FocusOrDefault returns a copy of the first non-nil focus level, or
// DefaultFocusLevel when none was given.
func FocusOrDefault(levels ...*int) *int {
	for _, p := range levels {
		if p != nil {
			return IntPtr(*p)
		}
	}
	return IntPtr(DefaultFocusLevel)
}

// VisibilityOrDefault maps the zero value to public.
func VisibilityOrDefault(v Visibility) Visibility {
	if v == "" {
		return VisibilityPublic
	}
	return v
}

func IntPtr(v int) *int {
	return &v
}
