package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCommentBody(t *testing.T) {
	got, err := NormalizeCommentBody("  great session \n")
	require.NoError(t, err)
	assert.Equal(t, "great session", got)

	for name, body := range map[string]string{
		"empty":    "",
		"blank":    " \t\n",
		"too long": strings.Repeat("é", MaxCommentLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeCommentBody(body)
			assert.ErrorIs(t, err, ErrInvalidComment)
		})
	}

	_, err = NormalizeCommentBody(strings.Repeat("é", MaxCommentLength))
	assert.NoError(t, err, "the limit counts characters, not bytes")
}

func TestComment_Edited(t *testing.T) {
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	c := Comment{CreatedAt: at, UpdatedAt: at}
	assert.False(t, c.Edited())

	c.UpdatedAt = at.Add(time.Minute)
	assert.True(t, c.Edited())
}

func TestActivity_Liked(t *testing.T) {
	a := validActivity()
	assert.False(t, a.Liked())
	a.LikeCount = 1
	assert.True(t, a.Liked())
}
