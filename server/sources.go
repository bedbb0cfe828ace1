package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/repository"
)

// sourceRequest is the payload for source creation
type sourceRequest struct {
	URL             string     `json:"url"`
	Category        string     `json:"category"`
	Active          *bool      `json:"active,omitempty"`
	IntervalMinutes int        `json:"interval_minutes,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

// listSourcesHandler returns all registered sources
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.sources.GetSources(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, sources)
}

// createSourceHandler registers a new source and starts monitoring it when
// active. A duplicate URL is a conflict.
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("source URL is required"), http.StatusBadRequest)
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	src := &domain.Source{
		URL:       req.URL,
		Category:  req.Category,
		Active:    active,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.sources.CreateSource(ctx, src); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			renderError(w, r, fmt.Errorf("source already exists"), http.StatusConflict)
			return
		}
		lgr.Printf("[ERROR] failed to create source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// monitoring outlives the request, detach from the request context
	if src.Active {
		interval := time.Duration(req.IntervalMinutes) * time.Minute
		if err := s.monitor.Start(context.WithoutCancel(ctx), src.ID, interval); err != nil {
			lgr.Printf("[WARN] source %d created but monitoring failed to start: %v", src.ID, err)
		}
	}

	renderJSON(w, r, http.StatusCreated, src)
}

// getSourceHandler returns one source by id
func (s *Server) getSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	src, err := s.sources.GetSource(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get source %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, src)
}

// deleteSourceHandler stops monitoring and removes the source. Collected
// articles stay.
func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	s.monitor.Stop(id)

	if err := s.sources.DeleteSource(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to delete source %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// patchSourceHandler toggles the paused state of a source, pausing stops
// the timer and resuming re-arms it with an immediate run
func (s *Server) patchSourceHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Paused *bool `json:"paused"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Paused == nil {
		renderError(w, r, fmt.Errorf("paused field is required"), http.StatusBadRequest)
		return
	}

	if *req.Paused {
		err = s.monitor.Pause(ctx, id)
	} else {
		err = s.monitor.Resume(context.WithoutCancel(ctx), id)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to update source %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	src, err := s.sources.GetSource(ctx, id)
	if err != nil {
		lgr.Printf("[ERROR] failed to reload source %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, src)
}

// refreshSourceHandler triggers an immediate collection run, detached from
// the request context so a client disconnect does not abort the run
func (s *Server) refreshSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.monitor.Collect(context.WithoutCancel(r.Context()), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to refresh source %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "refreshed"})
}

// monitorStatusHandler reports the live state of every source
func (s *Server) monitorStatusHandler(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.monitor.Status(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get monitor status: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// overlay scheduler state, Active in the store says the source wants
	// monitoring, the manager says a timer is actually armed
	type liveStatus struct {
		domain.SourceStatus
		Monitoring bool `json:"monitoring"`
	}
	result := make([]liveStatus, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, liveStatus{SourceStatus: st, Monitoring: s.monitor.Active(st.ID)})
	}
	renderJSON(w, r, http.StatusOK, result)
}

// parseID extracts the numeric id path value
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}
