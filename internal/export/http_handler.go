package export

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"membership-portal/internal/domain"
)

// Handler exposes xlsx downloads as HTTP endpoints.
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

	switch {
	case strings.HasSuffix(r.URL.Path, "/members"):
		h.handleMembers(w, r)
	case strings.HasSuffix(r.URL.Path, "/relocations"):
		h.handleRelocations(w, r)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (h *Handler) handleMembers(w http.ResponseWriter, r *http.Request) {
	variant := strings.TrimSpace(r.URL.Query().Get("variant"))
	if variant == "" {
		http.Error(w, "variant is required", http.StatusBadRequest)
		return
	}

	payload, filename, err := h.service.MemberRegister(r.Context(), variant)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedVariant) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, filename, payload)
}

func (h *Handler) handleRelocations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	payload, filename, err := h.service.RelocationLog(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, filename, payload)
}

func writeWorkbook(w http.ResponseWriter, filename string, payload []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(payload)
}
