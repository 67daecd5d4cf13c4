package handler

import (
	"net/http"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/dashboard"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
)

// DashboardHandler handles analytics and per-role dashboard stats.
type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Analytics(r.Context()))
}

func (h *DashboardHandler) StudentStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.StudentStats(r.Context(), claims.Subject))
}

func (h *DashboardHandler) RecruiterStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.RecruiterStats(r.Context(), claims.Subject))
}
