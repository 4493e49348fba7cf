package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidComment is wrapped by every Comment validation failure.
var ErrInvalidComment = errors.New("invalid comment")

// MaxCommentLength caps a comment body, in characters.
const MaxCommentLength = 500

// Comment is a note attached to a saved activity after the fact.
type Comment struct {
	ID         string
	ActivityID string
	Body       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Edited reports whether the body changed after it was posted.
func (c *Comment) Edited() bool {
	return c.UpdatedAt.After(c.CreatedAt)
}

// NormalizeCommentBody trims body and checks it is non-empty and within
// MaxCommentLength.
func NormalizeCommentBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", fmt.Errorf("%w: body is required", ErrInvalidComment)
	}
	if n := utf8.RuneCountInString(body); n > MaxCommentLength {
		return "", fmt.Errorf("%w: body is %d characters, max %d", ErrInvalidComment, n, MaxCommentLength)
	}
	return body, nil
}
