package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/db"
	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/server/middleware"
)

const zipContentType = "application/zip"

// exportResult is the payload of the final SSE event
type exportResult struct {
	ExportID    string `json:"export_id"`
	FileName    string `json:"file_name"`
	Size        int    `json:"size"`
	TemplateID  string `json:"template_id"`
	FellBack    bool   `json:"fell_back"`
	DownloadURL string `json:"download_url"`
}

// handleExportZip packages the session and streams the zip
func (s *Server) handleExportZip(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	st, _ := sess.Store.Snapshot()
	archive, res, err := s.engine.Export(r.Context(), &st, nil)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	setResolutionHeaders(w, res)
	writeAttachment(w, archive.Name, archive.Data)
}

// handleCreateExport packages the session while streaming progress as SSE,
// stores the archive and finishes with a download id
func (s *Server) handleCreateExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sse, err := NewSSEWriter(w)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	st, _ := sess.Store.Snapshot()
	archive, res, err := s.engine.Export(r.Context(), &st, func(p export.Progress) {
		if werr := sse.WriteEvent(eventProgress, p); werr != nil {
			s.logger.Debug("progress event dropped", zap.Error(werr))
		}
	})
	if err != nil {
		s.logger.Warn("export failed", zap.String("session_id", sess.ID), zap.Error(err))
		sse.WriteError(err.Error())
		return
	}

	id := uuid.New()
	key := fmt.Sprintf("exports/%s/%s/%s", sess.ID, id, archive.Name)
	if err := s.storage.Put(r.Context(), key, archive.Data, zipContentType); err != nil {
		s.logger.Error("failed to store export", zap.String("key", key), zap.Error(err))
		sse.WriteError("failed to store export")
		return
	}

	rec := db.Export{
		ID:         id,
		SessionID:  sess.ID,
		OwnerID:    ownerOf(r),
		TemplateID: res.Used,
		FileName:   archive.Name,
		ObjectKey:  key,
		SizeBytes:  int64(archive.Size),
		CreatedAt:  archive.CreatedAt,
	}
	if _, err := s.exports.CreateExport(r.Context(), rec); err != nil {
		s.logger.Error("failed to record export", zap.String("key", key), zap.Error(err))
		if derr := s.storage.Delete(context.WithoutCancel(r.Context()), key); derr != nil {
			s.logger.Warn("failed to remove unrecorded export", zap.String("key", key), zap.Error(derr))
		}
		sse.WriteError("failed to record export")
		return
	}

	sse.WriteEvent(eventComplete, exportResult{ //nolint:errcheck
		ExportID:    id.String(),
		FileName:    archive.Name,
		Size:        archive.Size,
		TemplateID:  res.Used,
		FellBack:    res.FellBack,
		DownloadURL: "/exports/" + id.String(),
	})
}

// handleListExports lists the stored exports of a session
func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	list, err := s.exports.ListExports(r.Context(), sess.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if list == nil {
		list = []db.Export{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"exports": list})
}

// handleDownloadExport redirects to a presigned URL when the store offers one
// and streams the archive otherwise
func (s *Server) handleDownloadExport(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("exportID")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.fail(w, r, &ErrExportNotFound{ID: raw})
		return
	}
	rec, err := s.exports.GetExport(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if rec == nil {
		s.fail(w, r, &ErrExportNotFound{ID: raw})
		return
	}
	if rec.OwnerID != "" {
		userID, err := middleware.GetUserID(r)
		if err != nil || userID.String() != rec.OwnerID {
			s.fail(w, r, &ErrForbidden{})
			return
		}
	}

	url, err := s.storage.URL(r.Context(), rec.ObjectKey, rec.FileName, s.presignTTL)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if url != "" {
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	data, err := s.storage.Get(r.Context(), rec.ObjectKey)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeAttachment(w, rec.FileName, data)
}

func writeAttachment(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", zipContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
