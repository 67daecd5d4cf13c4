package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/keerthiramGR/skillbridge-ai/internal/config"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
)

// Claims holds the session payload embedded in a signed token.
type Claims struct {
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	Verified bool   `json:"verified,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 session tokens with a process-wide symmetric
// secret. It has no mutable state and is safe for concurrent use.
type Codec struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewCodec(cfg *config.Config) *Codec {
	return &Codec{
		secret:     []byte(cfg.JWTSecret),
		defaultTTL: time.Duration(cfg.JWTExpiryMinutes) * time.Minute,
	}
}

// Issue signs a token for the given claim fields. A ttl <= 0 uses the
// configured default. IssuedAt and ExpiresAt are always set here; callers
// never supply them.
func (c *Codec) Issue(sub, email, role, name string, verified bool, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := time.Now().UTC()
	claims := Claims{
		Email:    email,
		Role:     role,
		Name:     name,
		Verified: verified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Expiry is enforced here; callers must not re-validate it.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
