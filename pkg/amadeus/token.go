package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const tokenPath = "/v1/security/oauth2/token"

// Issuer performs a single client-credentials exchange. It holds no state;
// retry and backoff decisions belong to the caller.
type Issuer interface {
	Exchange(ctx context.Context) (token string, ttl time.Duration, err error)
}

type TokenIssuer struct {
	httpClient   *http.Client
	endpoint     string
	clientID     string
	clientSecret string
}

func NewTokenIssuer(httpClient *http.Client, baseURL, clientID, clientSecret string) *TokenIssuer {
	return &TokenIssuer{
		httpClient:   httpClient,
		endpoint:     baseURL + tokenPath,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (t *TokenIssuer) Exchange(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("amadeus: failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", 0, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, classifyTransport(err)
	}

	if resp.StatusCode >= 300 {
		return "", 0, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", 0, fmt.Errorf("%w: token payload: %v", ErrMalformedResponse, err)
	}
	if payload.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: token payload missing access_token", ErrMalformedResponse)
	}
	if payload.ExpiresIn <= 0 {
		return "", 0, fmt.Errorf("%w: token payload missing expires_in", ErrMalformedResponse)
	}

	return payload.AccessToken, time.Duration(payload.ExpiresIn) * time.Second, nil
}
