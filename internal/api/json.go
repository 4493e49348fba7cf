package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/timer"
)

type timerStateJSON struct {
	Phase              string     `json:"phase"`
	Running            bool       `json:"running"`
	Paused             bool       `json:"paused"`
	Category           string     `json:"category,omitempty"`
	ElapsedSeconds     int        `json:"elapsed_seconds"`
	AccumulatedSeconds int        `json:"accumulated_seconds"`
	StartTime          *time.Time `json:"start_time,omitempty"`
	Display            string     `json:"display"`
}

func toTimerJSON(s timer.State) timerStateJSON {
	return timerStateJSON{
		Phase:              s.Phase().String(),
		Running:            s.Running,
		Paused:             s.Paused,
		Category:           s.Category,
		ElapsedSeconds:     s.ElapsedSeconds,
		AccumulatedSeconds: int(s.Accumulated / time.Second),
		StartTime:          s.StartTime,
		Display:            formatter.LiveClock(s.ElapsedSeconds),
	}
}

type resultJSON struct {
	DurationSeconds int    `json:"duration_seconds"`
	Minutes         int    `json:"minutes"`
	Category        string `json:"category"`
	Summary         string `json:"summary"`
}

func toResultJSON(r timer.Result) resultJSON {
	return resultJSON{
		DurationSeconds: r.Duration,
		Minutes:         r.Minutes(),
		Category:        r.Category,
		Summary:         formatter.SessionDuration(r.Duration),
	}
}

type activityJSON struct {
	ID              string    `json:"id"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes"`
	Note            string    `json:"note,omitempty"`
	EvidenceURL     string    `json:"evidence_url,omitempty"`
	FocusLevel      *int      `json:"focus_level,omitempty"`
	Visibility      string    `json:"visibility"`
	ShareCount      int       `json:"share_count"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	IsLiked         bool      `json:"is_liked"`
	CreatedAt       time.Time `json:"created_at"`
}

func toActivityJSON(a *domain.Activity) activityJSON {
	return activityJSON{
		ID:              a.ID,
		Category:        a.Category,
		DurationMinutes: a.DurationMinutes,
		Note:            a.Note,
		EvidenceURL:     a.EvidenceURL,
		FocusLevel:      a.FocusLevel,
		Visibility:      string(a.Visibility),
		ShareCount:      a.ShareCount,
		LikeCount:       a.LikeCount,
		CommentCount:    a.CommentCount,
		IsLiked:         a.Liked(),
		CreatedAt:       a.CreatedAt,
	}
}

type commentJSON struct {
	ID         string    `json:"id"`
	ActivityID string    `json:"activity_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toCommentJSON(c *domain.Comment) commentJSON {
	return commentJSON{
		ID:         c.ID,
		ActivityID: c.ActivityID,
		Text:       c.Body,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type commentRequest struct {
	Text string `json:"text"`
}

type statsJSON struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
	TotalHours    int `json:"total_hours"`
	CurrentStreak int `json:"current_streak"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorJSON{Error: msg})
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidActivity), errors.Is(err, domain.ErrInvalidComment):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
