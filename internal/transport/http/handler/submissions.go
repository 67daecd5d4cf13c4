package handler

import (
	"encoding/json"
	"net/http"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/submission"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/validate"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// SubmissionEnvelope wraps a single submission create response.
type SubmissionEnvelope struct {
	Message    string             `json:"message"`
	Submission *domain.Submission `json:"submission"`
}

// SubmissionListEnvelope wraps submission listings.
type SubmissionListEnvelope struct {
	Submissions []domain.Submission `json:"submissions"`
	Count       int                 `json:"count"`
}

// SubmissionHandler handles submission endpoints.
type SubmissionHandler struct {
	svc submission.Service
}

func NewSubmissionHandler(svc submission.Service) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := h.svc.Create(r.Context(), claims.Subject, req)
	msg := "Submission created successfully"
	if res.DemoMode {
		msg = "Submission created successfully (demo mode)"
	}
	writeJSON(w, http.StatusOK, SubmissionEnvelope{Message: msg, Submission: res.Submission})
}

func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	problemID := r.URL.Query().Get("problem_id")
	subs, _ := h.svc.List(r.Context(), claims.Subject, claims.Role, problemID)
	writeJSON(w, http.StatusOK, SubmissionListEnvelope{Submissions: subs, Count: len(subs)})
}
