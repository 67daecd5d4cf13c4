package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/keerthiramGR/skillbridge-ai/internal/application/otp"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/google"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/id"
)

// mockTokenSentinel skips Google verification entirely; used by the demo
// frontend and by tests.
const mockTokenSentinel = "mock-google-token"

// UserStore is the minimal identity-store interface the orchestrator needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// Mailer sends the OTP notification email.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// GoogleVerifier validates an externally-issued identity token.
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(sub, email, role, name string, verified bool, ttl time.Duration) (string, error)
}

// Result is the terminal state of a sign-in flow: either an issued token, or
// pending verification (recruiter/admin Google sign-in needs a second flow).
type Result struct {
	Token   string
	Pending bool
	User    *domain.User
}

type Service interface {
	GoogleSignIn(ctx context.Context, req domain.GoogleAuthRequest) (*Result, error)
	SendOTP(ctx context.Context, req domain.OTPRequest) (expiresIn string, err error)
	VerifyOTP(ctx context.Context, req domain.OTPVerifyRequest) (*Result, error)
	VerifyRole(ctx context.Context, req domain.RoleVerifyRequest) (*Result, error)
}

// ServiceDeps bundles the orchestrator's collaborators and configuration.
type ServiceDeps struct {
	Users  UserStore
	Ledger *otp.Ledger
	Mailer Mailer
	Google GoogleVerifier
	Tokens TokenIssuer

	RecruiterAccessKey string
	AdminPasscode      string
	// TrustClientIdentity allows falling back to caller-supplied identity
	// fields when Google verification fails. Off outside demo deployments.
	TrustClientIdentity bool
	OTPTTL              time.Duration
}

type service struct {
	deps ServiceDeps
}

func NewService(deps ServiceDeps) Service {
	return &service{deps: deps}
}

// GoogleSignIn authenticates via a Google ID token. Students get a session
// token immediately; recruiters and admins come back pending and must
// complete the OTP or passcode flow.
func (s *service) GoogleSignIn(ctx context.Context, req domain.GoogleAuthRequest) (*Result, error) {
	var ident *google.Payload
	if req.Token != "" && req.Token != mockTokenSentinel {
		p, err := s.deps.Google.Verify(ctx, req.Token)
		switch {
		case err == nil:
			ident = p
		case s.deps.TrustClientIdentity:
			slog.Warn("google verification failed, trusting client-supplied identity",
				"email", req.Email, "err", err)
		default:
			return nil, err
		}
	}
	if ident == nil {
		gid := req.GoogleID
		if gid == "" {
			gid = demoGoogleID(req.Email)
		}
		ident = &google.Payload{
			GoogleID: gid,
			Email:    req.Email,
			Name:     req.Name,
			Picture:  req.Picture,
		}
	}

	user := s.resolveUser(ctx, ident, req.Role)

	if req.Role == domain.RoleStudent {
		tok, err := s.deps.Tokens.Issue(user.UserID, ident.Email, req.Role, ident.Name, false, 0)
		if err != nil {
			return nil, err
		}
		return &Result{Token: tok, User: user}, nil
	}
	return &Result{Pending: true, User: user}, nil
}

// resolveUser finds or provisions the user record. Storage failures never
// fail the request: the flow substitutes an in-memory demo user, since token
// issuance does not depend on persistence.
func (s *service) resolveUser(ctx context.Context, ident *google.Payload, role string) *domain.User {
	u, err := s.deps.Users.GetByEmail(ctx, ident.Email)
	if err == nil {
		return u
	}
	if !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("user lookup failed, using demo user", "email", ident.Email, "err", err)
		return demoUser(ident, role)
	}

	status := domain.StatusPending
	if role == domain.RoleStudent {
		status = domain.StatusActive
	}
	now := time.Now().UTC()
	u = &domain.User{
		UserID:    id.New(),
		Email:     ident.Email,
		Name:      ident.Name,
		Picture:   ident.Picture,
		GoogleID:  ident.GoogleID,
		Role:      role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deps.Users.Put(ctx, u); err != nil {
		slog.Warn("user provisioning failed, using demo user", "email", ident.Email, "err", err)
		return demoUser(ident, role)
	}
	return u
}

// SendOTP starts the recruiter verification flow: check the access key,
// issue a fresh code, and dispatch it by email best-effort. The code is
// committed to the ledger before dispatch; a failed or cancelled email never
// rolls it back.
func (s *service) SendOTP(ctx context.Context, req domain.OTPRequest) (string, error) {
	if req.Role == domain.RoleRecruiter && req.AccessKey != "" {
		if subtle.ConstantTimeCompare([]byte(req.AccessKey), []byte(s.deps.RecruiterAccessKey)) != 1 {
			return "", domain.ErrInvalidAccessKey
		}
	}

	code, err := otp.Generate(otp.CodeLength)
	if err != nil {
		return "", err
	}
	s.deps.Ledger.Issue(req.Email, code, s.deps.OTPTTL)

	minutes := int(s.deps.OTPTTL.Minutes())
	body := fmt.Sprintf(
		"Your SkillBridge AI verification code is: %s\n\n"+
			"This code expires in %d minutes.\n\n"+
			"If you did not request this code, please ignore this email.",
		code, minutes)
	subject := fmt.Sprintf("SkillBridge AI — Verification Code: %s", code)
	if err := s.deps.Mailer.SendEmail(req.Email, subject, body); err != nil {
		slog.Warn("otp email dispatch failed", "email", req.Email, "err", err)
	}

	return fmt.Sprintf("%d minutes", minutes), nil
}

// VerifyOTP completes the recruiter flow: a matched code issues a verified
// session token. The stored user record is promoted to verified best-effort;
// like the rest of the flow, token issuance never waits on persistence.
func (s *service) VerifyOTP(ctx context.Context, req domain.OTPVerifyRequest) (*Result, error) {
	ok, err := s.deps.Ledger.Verify(req.Email, req.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidOTP
	}

	s.promoteVerified(ctx, req.Email)

	tok, err := s.deps.Tokens.Issue(req.Email, req.Email, req.Role, "", true, 0)
	if err != nil {
		return nil, err
	}
	return &Result{
		Token: tok,
		User:  &domain.User{Email: req.Email, Role: req.Role, Status: domain.StatusVerified},
	}, nil
}

func (s *service) promoteVerified(ctx context.Context, email string) {
	u, err := s.deps.Users.GetByEmail(ctx, email)
	if err != nil {
		slog.Warn("verified-status lookup failed", "email", email, "err", err)
		return
	}
	if err := s.deps.Users.Update(ctx, u.UserID, map[string]interface{}{"status": domain.StatusVerified}); err != nil {
		slog.Warn("verified-status update failed", "email", email, "err", err)
	}
}

// VerifyRole completes the admin flow: passcode plus a 6-character second
// factor. The second factor is a format check only, not a TOTP validation.
func (s *service) VerifyRole(ctx context.Context, req domain.RoleVerifyRequest) (*Result, error) {
	if req.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("invalid role for verification: %w", domain.ErrBadRequest)
	}
	if req.Passcode == "" {
		return nil, fmt.Errorf("admin passcode required: %w", domain.ErrBadRequest)
	}
	if subtle.ConstantTimeCompare([]byte(req.Passcode), []byte(s.deps.AdminPasscode)) != 1 {
		return nil, domain.ErrInvalidPasscode
	}
	if len(req.TwoFactorCode) != 6 {
		return nil, domain.ErrMissingTwoFactor
	}

	tok, err := s.deps.Tokens.Issue("admin", "", domain.RoleAdmin, "", true, 0)
	if err != nil {
		return nil, err
	}
	return &Result{
		Token: tok,
		User:  &domain.User{Role: domain.RoleAdmin, Status: domain.StatusVerified},
	}, nil
}

func demoGoogleID(email string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(email))
	return fmt.Sprintf("demo-%d", h.Sum64())
}

func demoUser(ident *google.Payload, role string) *domain.User {
	return &domain.User{
		UserID:  "demo-user-id",
		Email:   ident.Email,
		Name:    ident.Name,
		Picture: ident.Picture,
		Role:    role,
		Status:  domain.StatusActive,
	}
}
