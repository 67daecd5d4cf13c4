package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/auth"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) GoogleSignIn(ctx context.Context, req domain.GoogleAuthRequest) (*auth.Result, error) {
	args := m.Called(ctx, req)
	if res, _ := args.Get(0).(*auth.Result); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) SendOTP(ctx context.Context, req domain.OTPRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAuthSvc) VerifyOTP(ctx context.Context, req domain.OTPVerifyRequest) (*auth.Result, error) {
	args := m.Called(ctx, req)
	if res, _ := args.Get(0).(*auth.Result); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) VerifyRole(ctx context.Context, req domain.RoleVerifyRequest) (*auth.Result, error) {
	args := m.Called(ctx, req)
	if res, _ := args.Get(0).(*auth.Result); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeAuth(t *testing.T, rr *httptest.ResponseRecorder) AuthEnvelope {
	t.Helper()
	var env AuthEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// --- tests ---

func TestGoogle_StudentGetsToken(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleSignIn", mock.Anything, mock.AnythingOfType("domain.GoogleAuthRequest")).
		Return(&auth.Result{
			Token: "signed-token",
			User:  &domain.User{UserID: "u1", Role: "student"},
		}, nil)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.Google, "/auth/google", domain.GoogleAuthRequest{
		Token: "g-token", Role: "student",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeAuth(t, rr)
	assert.Equal(t, "signed-token", env.Token)
	assert.Empty(t, env.Status)
	require.NotNil(t, env.User)
	assert.Equal(t, "u1", env.User.UserID)
}

func TestGoogle_RecruiterPendingVerification(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleSignIn", mock.Anything, mock.Anything).
		Return(&auth.Result{
			Pending: true,
			User:    &domain.User{UserID: "u2", Role: "recruiter"},
		}, nil)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.Google, "/auth/google", domain.GoogleAuthRequest{
		Token: "g-token", Role: "recruiter",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeAuth(t, rr)
	assert.Empty(t, env.Token)
	assert.Equal(t, "pending_verification", env.Status)
}

func TestGoogle_MissingRole_BadRequest(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{})

	rr := postJSON(t, h.Google, "/auth/google", map[string]string{"token": "g-token"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGoogle_ProviderUnreachable_503(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleSignIn", mock.Anything, mock.Anything).Return(nil, domain.ErrProviderUnreachable)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.Google, "/auth/google", domain.GoogleAuthRequest{
		Token: "g-token", Role: "student",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGoogle_AudienceMismatch_401(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleSignIn", mock.Anything, mock.Anything).Return(nil, domain.ErrAudienceMismatch)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.Google, "/auth/google", domain.GoogleAuthRequest{
		Token: "g-token", Role: "student",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSendOTP_ReturnsExpiry(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendOTP", mock.Anything, mock.AnythingOfType("domain.OTPRequest")).Return("10 minutes", nil)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.SendOTP, "/auth/send-otp", domain.OTPRequest{
		Email: "r@b.com", Role: "recruiter",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var env OTPSentEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "OTP sent to r@b.com", env.Message)
	assert.Equal(t, "10 minutes", env.ExpiresIn)
}

func TestSendOTP_InvalidAccessKey_403(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendOTP", mock.Anything, mock.Anything).Return("", domain.ErrInvalidAccessKey)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.SendOTP, "/auth/send-otp", domain.OTPRequest{
		Email: "r@b.com", Role: "recruiter", AccessKey: "WRONG",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, mock.AnythingOfType("domain.OTPVerifyRequest")).
		Return(&auth.Result{
			Token: "tok",
			User:  &domain.User{Email: "r@b.com", Role: "recruiter", Status: "verified"},
		}, nil)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifyOTP, "/auth/verify-otp", domain.OTPVerifyRequest{
		Email: "r@b.com", OTP: "123456", Role: "recruiter",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeAuth(t, rr)
	assert.Equal(t, "tok", env.Token)
	assert.Equal(t, "verified", env.User.Status)
}

func TestVerifyOTP_Invalid_401(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidOTP)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifyOTP, "/auth/verify-otp", domain.OTPVerifyRequest{
		Email: "r@b.com", OTP: "000000", Role: "recruiter",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyOTP_TooManyAttempts_429(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return(nil, domain.ErrTooManyAttempts)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifyOTP, "/auth/verify-otp", domain.OTPVerifyRequest{
		Email: "r@b.com", OTP: "000000", Role: "recruiter",
	})
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestVerifyRole_WrongPasscode_403(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyRole", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidPasscode)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifyRole, "/auth/verify-role", domain.RoleVerifyRequest{
		Role: "admin", Passcode: "WRONG", TwoFactorCode: "123456",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestVerifyRole_MissingTwoFactor_400(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyRole", mock.Anything, mock.Anything).Return(nil, domain.ErrMissingTwoFactor)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifyRole, "/auth/verify-role", domain.RoleVerifyRequest{
		Role: "admin", Passcode: "pass",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyRole_Success(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyRole", mock.Anything, mock.Anything).
		Return(&auth.Result{
			Token: "admin-tok",
			User:  &domain.User{Role: "admin", Status: "verified"},
		}, nil)
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifyRole, "/auth/verify-role", domain.RoleVerifyRequest{
		Role: "admin", Passcode: "pass", TwoFactorCode: "123456",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeAuth(t, rr)
	assert.Equal(t, "admin-tok", env.Token)
	assert.Equal(t, "admin", env.User.Role)
}
