package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	a, err := s.activities.ToggleLike(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityJSON(a))
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q.Get("limit"), 0)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil || offset < 0 {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	list, err := s.activities.ListComments(r.Context(), mux.Vars(r)["id"], limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]commentJSON, 0, len(list))
	for _, c := range list {
		out = append(out, toCommentJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePostComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	c, err := s.activities.Comment(r.Context(), mux.Vars(r)["id"], req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentJSON(c))
}

func (s *Server) handleEditComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	c, err := s.activities.EditComment(r.Context(), mux.Vars(r)["id"], req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentJSON(c))
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.activities.DeleteComment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
