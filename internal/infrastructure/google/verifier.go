package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/keerthiramGR/skillbridge-ai/internal/config"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
)

const tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Payload holds the verified identity extracted from a Google ID token.
// It is produced and consumed within a single authentication request.
type Payload struct {
	GoogleID      string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// Verifier introspects Google ID tokens against the tokeninfo endpoint and
// checks the audience against this service's client ID.
type Verifier struct {
	clientID string
	endpoint string
	client   *http.Client
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{
		clientID: cfg.GoogleClientID,
		endpoint: tokeninfoURL,
		client:   &http.Client{Timeout: cfg.GoogleVerifyTimeout},
	}
}

// tokeninfo's email_verified field is the string "true"/"false".
type tokeninfoResponse struct {
	Aud           string `json:"aud"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	EmailVerified string `json:"email_verified"`
}

// Verify validates the Google ID token. Failures are typed:
// domain.ErrProviderUnreachable on network error, domain.ErrAudienceMismatch
// when the token was issued for a different client, and
// domain.ErrTokenVerificationFailed on any other non-success response.
func (v *Verifier) Verify(ctx context.Context, token string) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.endpoint+"?id_token="+url.QueryEscape(token), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo returned %d: %w", resp.StatusCode, domain.ErrTokenVerificationFailed)
	}

	var info tokeninfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode tokeninfo response: %w", domain.ErrTokenVerificationFailed)
	}
	if info.Aud != v.clientID {
		return nil, domain.ErrAudienceMismatch
	}

	return &Payload{
		GoogleID:      info.Sub,
		Email:         info.Email,
		Name:          info.Name,
		Picture:       info.Picture,
		EmailVerified: info.EmailVerified == "true",
	}, nil
}
