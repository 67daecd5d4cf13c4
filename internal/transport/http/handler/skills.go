package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/skills"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// SkillHandler handles Skill DNA analysis endpoints.
type SkillHandler struct {
	svc skills.Service
}

func NewSkillHandler(svc skills.Service) *SkillHandler { return &SkillHandler{svc: svc} }

type skillAnalysisRequest struct {
	StudentID string `json:"student_id"`
}

func (h *SkillHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req skillAnalysisRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	studentID := req.StudentID
	if studentID == "" {
		studentID = claims.Subject
	}
	profile, err := h.svc.Analyze(r.Context(), studentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *SkillHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
