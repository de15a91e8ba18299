package relocation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"membership-portal/internal/auth"
	"membership-portal/internal/domain"
)

// Handler exposes relocation as an HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHTTPHandler wraps the service with a POST endpoint.
func NewHTTPHandler(service *Service) http.Handler {
	return &Handler{service: service}
}

type relocatePayload struct {
	SourceID      int64  `json:"sourceId"`
	SourceVariant string `json:"sourceVariant"`
	TargetVariant string `json:"targetVariant"`
}

type relocateResponse struct {
	Success    bool        `json:"success"`
	NewRootID  *int64      `json:"newRootId,omitempty"`
	NewVariant string      `json:"newVariant,omitempty"`
	Report     *CopyReport `json:"report,omitempty"`
	Message    string      `json:"message"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var payload relocatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, relocateResponse{Message: "invalid request body"})
		return
	}

	actorID, _ := auth.ActorIDFromContext(r.Context())

	result, err := h.service.Relocate(r.Context(), Request{
		SourceID:      payload.SourceID,
		SourceVariant: payload.SourceVariant,
		TargetVariant: payload.TargetVariant,
		ActorID:       actorID,
	})
	if err != nil {
		status, message := statusForError(err)
		writeJSON(w, status, relocateResponse{Message: message})
		return
	}

	writeJSON(w, http.StatusOK, relocateResponse{
		Success:    true,
		NewRootID:  &result.NewRootID,
		NewVariant: result.NewVariant,
		Report:     &result.Report,
		Message:    "member relocated",
	})
}

// statusForError maps the engine's error taxonomy to HTTP. Internal failures
// get a generic message; details stay in the server log.
func statusForError(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		log.Printf("[RELOCATE] internal error: %v", err)
		return http.StatusInternalServerError, "relocation failed"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
