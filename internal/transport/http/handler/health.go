package handler

import (
	"net/http"
)

// HealthHandler handles the root and health-check endpoints.
type HealthHandler struct {
	appName string
	version string
}

func NewHealthHandler(appName, version string) *HealthHandler {
	return &HealthHandler{appName: appName, version: version}
}

func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    h.appName,
		"version": h.version,
		"status":  "operational",
		"message": "SkillBridge AI API is running.",
	})
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.appName,
	})
}
