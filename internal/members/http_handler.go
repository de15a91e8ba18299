package members

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"membership-portal/internal/domain"
)

// Handler exposes the member register as an HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHTTPHandler wraps the service with GET endpoints.
func NewHTTPHandler(service *Service) http.Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	variant := strings.TrimSpace(r.URL.Query().Get("variant"))
	if variant == "" {
		http.Error(w, "variant is required", http.StatusBadRequest)
		return
	}

	if rawID := r.URL.Query().Get("id"); rawID != "" {
		h.handleGet(w, r, variant, rawID)
		return
	}
	h.handleList(w, r, variant)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request, variant, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}

	member, err := h.service.Get(r.Context(), variant, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, member)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request, variant string) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	page, err := h.service.List(r.Context(), variant, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, page)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedVariant):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "failed to load members", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
