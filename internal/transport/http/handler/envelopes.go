package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthEnvelope wraps sign-in and verification responses. Status is set only
// on the pending branch of the Google flow.
type AuthEnvelope struct {
	Token  string       `json:"token,omitempty"`
	Status string       `json:"status,omitempty"`
	User   *domain.User `json:"user,omitempty"`
}

// OTPSentEnvelope wraps the send-otp response.
type OTPSentEnvelope struct {
	Message   string `json:"message"`
	ExpiresIn string `json:"expires_in"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeDomainError maps sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrMissingTwoFactor):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidOTP),
		errors.Is(err, domain.ErrAudienceMismatch),
		errors.Is(err, domain.ErrTokenVerificationFailed):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientPermissions),
		errors.Is(err, domain.ErrInvalidPasscode),
		errors.Is(err, domain.ErrInvalidAccessKey):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrTooManyAttempts):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrProviderUnreachable):
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}
