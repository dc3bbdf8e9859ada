package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// HistoryHandler handles HTTP requests for the password history.
type HistoryHandler struct {
	history *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HandleList handles GET /api/v1/history requests. A q parameter filters by password.
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		writeJSON(w, http.StatusOK, h.history.Search(q))
		return
	}
	writeJSON(w, http.StatusOK, h.history.Entries())
}

// HandleUpdateNotes handles PUT /api/v1/history/{id}/notes requests.
func (h *HistoryHandler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.NotesRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	entry, err := h.history.UpdateNotes(r.Context(), id, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	slog.Info("history notes updated", "id", id, "subject", middleware.SubjectFromContext(r.Context()))
	writeJSON(w, http.StatusOK, entry)
}

// HandleDelete handles DELETE /api/v1/history/{id} requests. Unknown ids still answer 204.
func (h *HistoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.history.Delete(r.Context(), id)
	slog.Info("history entry deleted", "id", id, "subject", middleware.SubjectFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear handles DELETE /api/v1/history requests.
func (h *HistoryHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.history.Clear(r.Context())
	slog.Warn("history cleared", "subject", middleware.SubjectFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport handles GET /api/v1/history/export requests and answers with
// an attachment in the requested format.
func (h *HistoryHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	format, err := model.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	content, err := service.Export(h.history.Entries(), format)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	slog.Info("history exported", "format", format, "subject", middleware.SubjectFromContext(r.Context()))
	w.Header().Set("Content-Type", format.MIMEType()+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
