package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/interview"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// InterviewQuestionsEnvelope wraps a generated question set.
type InterviewQuestionsEnvelope struct {
	Questions []string `json:"questions"`
	Type      string   `json:"type"`
}

// InterviewHandler handles mock interview endpoints.
type InterviewHandler struct {
	svc interview.Service
}

func NewInterviewHandler(svc interview.Service) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

func (h *InterviewHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req interview.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Evaluate(r.Context(), claims.Subject, req))
}

func (h *InterviewHandler) Questions(w http.ResponseWriter, r *http.Request) {
	interviewType := chi.URLParam(r, "interviewType")
	questions := h.svc.Questions(r.Context(), interviewType)
	writeJSON(w, http.StatusOK, InterviewQuestionsEnvelope{Questions: questions, Type: interviewType})
}
