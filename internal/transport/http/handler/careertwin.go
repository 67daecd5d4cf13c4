package handler

import (
	"encoding/json"
	"net/http"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/careertwin"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/validate"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// CareerTwinHandler handles the AI mentor endpoints.
type CareerTwinHandler struct {
	svc careertwin.Service
}

func NewCareerTwinHandler(svc careertwin.Service) *CareerTwinHandler {
	return &CareerTwinHandler{svc: svc}
}

func (h *CareerTwinHandler) Chat(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req careertwin.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Chat(r.Context(), claims.Subject, req))
}

func (h *CareerTwinHandler) Insights(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Insights(r.Context(), claims.Subject))
}
