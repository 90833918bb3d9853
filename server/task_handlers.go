package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jdelaney/go-task-server/internal/errors"
	"github.com/jdelaney/go-task-server/tasks"
)

// Write acknowledgements in the shape the frontend already consumes.
type insertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type updateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type deleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// IndexHandler reports liveness.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeText)
		_, _ = w.Write([]byte("Task management app server is running"))
	}
}

// ListTasksHandler returns the owner's tasks, newest write first.
func (s *Server) ListTasksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.requireOwner(w, r) {
			return
		}

		owned, err := s.tasks.ListByOwner(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			log.Err(err).Msg("Failed to list tasks")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, owned)
	}
}

// GetTaskHandler fetches a single task by id. An unknown id answers a JSON
// null body, not an error status.
func (s *Server) GetTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.tasks.GetByID(r.Context(), r.PathValue("id"))
		if errors.Is(err, errors.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		if err != nil {
			log.Err(err).Msg("Failed to get task")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// AddTaskHandler inserts a task for the authenticated owner. The write time
// is stamped by the store, never taken from the body.
func (s *Server) AddTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.requireOwner(w, r) {
			return
		}

		var t tasks.Task
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := s.tasks.Insert(r.Context(), t)
		if err != nil {
			log.Err(err).Msg("Failed to insert task")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, insertResult{Acknowledged: true, InsertedID: id})
	}
}

// UpdateTaskHandler overwrites every editable field of a task wholesale,
// resetting its status to to-do and restamping the write time.
func (s *Server) UpdateTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.requireOwner(w, r) {
			return
		}

		var t tasks.Task
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		s.applyUpdate(w, r, tasks.FullUpdate(t, time.Now()))
	}
}

// MarkOngoingHandler moves a task to ongoing.
func (s *Server) MarkOngoingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.applyUpdate(w, r, tasks.MarkOngoing(time.Now()))
	}
}

// MarkCompletedHandler moves a task to completed.
func (s *Server) MarkCompletedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.applyUpdate(w, r, tasks.MarkCompleted(time.Now()))
	}
}

// DeleteTaskHandler removes a task by id. Deleting an unknown id reports a
// zero count rather than failing.
func (s *Server) DeleteTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.requireOwner(w, r) {
			return
		}

		deleted, err := s.tasks.DeleteByID(r.Context(), r.PathValue("id"))
		if err != nil {
			log.Err(err).Msg("Failed to delete task")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, deleteResult{Acknowledged: true, DeletedCount: deleted})
	}
}

func (s *Server) applyUpdate(w http.ResponseWriter, r *http.Request, fields tasks.Fields) {
	modified, err := s.tasks.UpdateFields(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		log.Err(err).Msg("Failed to update task")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, updateResult{Acknowledged: true, ModifiedCount: modified})
}
