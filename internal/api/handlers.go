package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/gorilla/mux"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTimerState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toTimerJSON(s.timer.State()))
}

type startRequest struct {
	Category string `json:"category"`
}

func (s *Server) handleTimerStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	s.timer.Start(category)
	writeJSON(w, http.StatusOK, toTimerJSON(s.timer.State()))
}

// timerAction wraps the phase-gated operations. Calls in the wrong phase
// are no-ops on the timer, so they answer 200 with the unchanged state.
func (s *Server) timerAction(op func()) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		op()
		writeJSON(w, http.StatusOK, toTimerJSON(s.timer.State()))
	}
}

func (s *Server) handleTimerStop(w http.ResponseWriter, _ *http.Request) {
	res, ok := s.timer.Stop()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toResultJSON(res))
}

type saveRequest struct {
	DurationSeconds *int   `json:"duration_seconds"`
	DurationMinutes *int   `json:"duration_minutes"`
	Category        string `json:"category"`
	Note            string `json:"note"`
	EvidenceURL     string `json:"evidence_url"`
	FocusLevel      *int   `json:"focus_level"`
	Visibility      string `json:"visibility"`
}

// handleSaveActivity records a session. duration_seconds is a stopped
// timer's result; duration_minutes logs an untimed session.
func (s *Server) handleSaveActivity(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	in := service.SaveInput{
		Category:    req.Category,
		Note:        req.Note,
		EvidenceURL: req.EvidenceURL,
		FocusLevel:  req.FocusLevel,
		Visibility:  domain.Visibility(req.Visibility),
	}

	var (
		a   *domain.Activity
		err error
	)
	switch {
	case req.DurationSeconds != nil && req.DurationMinutes != nil:
		writeError(w, http.StatusBadRequest, "set duration_seconds or duration_minutes, not both")
		return
	case req.DurationSeconds != nil:
		a, err = s.activities.SaveSession(r.Context(), timer.Result{Duration: *req.DurationSeconds, Category: req.Category}, in)
	case req.DurationMinutes != nil:
		a, err = s.activities.LogManual(r.Context(), *req.DurationMinutes, in)
	default:
		writeError(w, http.StatusBadRequest, "duration_seconds or duration_minutes is required")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityJSON(a))
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q.Get("limit"), s.pageSize)
	if err != nil || limit < 1 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil || offset < 0 {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	list, err := s.activities.ListFeed(r.Context(), service.FeedQuery{
		Category:       q.Get("category"),
		IncludePrivate: q.Get("include_private") == "true",
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]activityJSON, 0, len(list))
	for _, a := range list {
		out = append(out, toActivityJSON(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	a, err := s.activities.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityJSON(a))
}

type updateRequest struct {
	Category        *string `json:"category"`
	DurationMinutes *int    `json:"duration_minutes"`
	Note            *string `json:"note"`
	EvidenceURL     *string `json:"evidence_url"`
	FocusLevel      *int    `json:"focus_level"`
	Visibility      *string `json:"visibility"`
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	u := domain.ActivityUpdate{
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Note:            req.Note,
		EvidenceURL:     req.EvidenceURL,
		FocusLevel:      req.FocusLevel,
	}
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		u.Visibility = &v
	}

	a, err := s.activities.Update(r.Context(), mux.Vars(r)["id"], u)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityJSON(a))
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.activities.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleShareActivity(w http.ResponseWriter, r *http.Request) {
	a, err := s.activities.Share(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityJSON(a))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.stats.ProfileStats(r.Context(), s.clock.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statsJSON{
		TotalSessions: st.TotalSessions,
		TotalMinutes:  st.TotalMinutes,
		TotalHours:    st.TotalHours(),
		CurrentStreak: st.CurrentStreak,
	})
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
