package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/auth"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/validate"
)

// AuthHandler handles the sign-in and verification endpoints.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req domain.GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.svc.GoogleSignIn(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if res.Pending {
		writeJSON(w, http.StatusOK, AuthEnvelope{Status: "pending_verification", User: res.User})
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Token: res.Token, User: res.User})
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	expiresIn, err := h.svc.SendOTP(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OTPSentEnvelope{
		Message:   fmt.Sprintf("OTP sent to %s", req.Email),
		ExpiresIn: expiresIn,
	})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.svc.VerifyOTP(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Token: res.Token, User: res.User})
}

func (h *AuthHandler) VerifyRole(w http.ResponseWriter, r *http.Request) {
	var req domain.RoleVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.svc.VerifyRole(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Token: res.Token, User: res.User})
}
