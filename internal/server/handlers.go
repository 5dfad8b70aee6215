package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// maxActionBytes bounds a JSON action body.
const maxActionBytes = 64 << 10

// handleEditor renders the editor page for the caller's session
func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	page, err := renderEditor(sess.Store.Snapshot(), sess.TakeFlash())
	if err != nil {
		log.Printf("[SERVER] Failed to render editor: %v", err)
		http.Error(w, "failed to render editor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page)
}

// handleEditorSubmit applies an editor page form submission and redirects back
func (s *Server) handleEditorSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	if err := r.ParseForm(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}

	actions, err := formActions(r.PostForm)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	for _, a := range actions {
		if _, err := sess.Store.Dispatch(a); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		observability.RecordAction(string(a.Type))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAction applies one JSON action and returns the new state
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := s.actionSchema.Validate(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), strings.TrimSpace(err.Error()))
		return
	}

	var a types.Action
	if err := json.Unmarshal(body, &a); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := a.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid action: "+err.Error())
		return
	}

	state, err := sess.Store.Dispatch(a)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	observability.RecordAction(string(a.Type))

	s.jsonResponse(w, http.StatusOK, state)
}

// handleState returns the current snapshot
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	body, err := json.Marshal(sess.Store.Snapshot())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode state")
		return
	}
	// Reject snapshots outside the published schema.
	if err := s.stateSchema.Validate(body); err != nil {
		log.Printf("[SERVER] Session %s state failed schema check: %v", sess.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "state does not match its schema")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}

// handleSections returns the wizard section list
func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, wizard.Sections())
}

// handlePreview returns the standalone preview document
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	html, err := rendering.RenderHTML(sess.Store.Snapshot())
	if err != nil {
		log.Printf("[SERVER] Failed to render preview: %v", err)
		http.Error(w, "failed to render preview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

// handleExport rasterizes the session's preview and sends it as a download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Resolve(w, r)

	mode, err := export.ParseMode(r.PathValue("mode"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	artifact, err := s.exporter.Export(r.Context(), sess.Store.Snapshot(), mode)
	if err != nil {
		s.exportFailed(w, r, sess, mode, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

// exportFailed reports a failed export. Browser navigations are sent back to
// the editor with a flash message; API clients get a JSON error.
func (s *Server) exportFailed(w http.ResponseWriter, r *http.Request, sess *Session, mode export.Mode, err error) {
	message := fmt.Sprintf("Export to %s failed", strings.ToUpper(string(mode)))
	if errors.Is(err, export.ErrNoPreviewSurface) {
		message += ": the preview could not be found"
	}

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		sess.SetFlash(message + ". Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.errorResponse(w, HTTPStatus(err), message+": "+err.Error())
}
