package handler

import (
	"encoding/json"
	"net/http"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/problem"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/validate"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// ProblemEnvelope wraps a single problem upload response.
type ProblemEnvelope struct {
	Message string          `json:"message"`
	Problem *domain.Problem `json:"problem"`
}

// ProblemListEnvelope wraps problem listings.
type ProblemListEnvelope struct {
	Problems []domain.Problem `json:"problems"`
	Count    int              `json:"count"`
}

// ProblemHandler handles problem statement endpoints.
type ProblemHandler struct {
	svc problem.Service
}

func NewProblemHandler(svc problem.Service) *ProblemHandler { return &ProblemHandler{svc: svc} }

func (h *ProblemHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := h.svc.Create(r.Context(), claims.Subject, req)
	msg := "Problem uploaded successfully"
	if res.DemoMode {
		msg = "Problem uploaded successfully (demo mode)"
	}
	writeJSON(w, http.StatusOK, ProblemEnvelope{Message: msg, Problem: res.Problem})
}

func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	problems, _ := h.svc.List(r.Context(), q.Get("status"), q.Get("domain"), q.Get("difficulty"))
	writeJSON(w, http.StatusOK, ProblemListEnvelope{Problems: problems, Count: len(problems)})
}
