package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/matching"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// RecruiterRecommendationsEnvelope wraps candidate recommendations.
type RecruiterRecommendationsEnvelope struct {
	Recommendations []matching.Candidate `json:"recommendations"`
}

// MatchesEnvelope wraps per-problem candidate matches.
type MatchesEnvelope struct {
	Matches   []matching.Match `json:"matches"`
	ProblemID string           `json:"problem_id"`
}

// RecommendationHandler handles talent matching endpoints.
type RecommendationHandler struct {
	svc matching.Service
}

func NewRecommendationHandler(svc matching.Service) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// Get serves role-appropriate recommendations: challenge and career guidance
// for students, ranked candidates for recruiters. An explicit role query
// parameter overrides the claim role for recruiters previewing either view.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	role := r.URL.Query().Get("role")
	if role == "" {
		role = claims.Role
	}
	switch role {
	case domain.RoleStudent:
		writeJSON(w, http.StatusOK, h.svc.StudentRecommendations(r.Context(), claims.Subject))
	case domain.RoleRecruiter:
		writeJSON(w, http.StatusOK, RecruiterRecommendationsEnvelope{
			Recommendations: h.svc.RecruiterRecommendations(r.Context(), claims.Subject),
		})
	default:
		writeJSON(w, http.StatusOK, RecruiterRecommendationsEnvelope{
			Recommendations: []matching.Candidate{},
		})
	}
}

func (h *RecommendationHandler) MatchProblem(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "problemID")
	writeJSON(w, http.StatusOK, MatchesEnvelope{
		Matches:   h.svc.MatchCandidates(r.Context(), problemID),
		ProblemID: problemID,
	})
}
