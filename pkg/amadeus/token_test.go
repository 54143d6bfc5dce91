package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_Exchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, tokenPath, r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		require.Equal(t, "client-id", r.PostForm.Get("client_id"))
		require.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","expires_in":1799}`))
	}))
	defer srv.Close()

	issuer := NewTokenIssuer(srv.Client(), srv.URL, "client-id", "client-secret")
	tok, ttl, err := issuer.Exchange(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
	require.Equal(t, 1799*time.Second, ttl)
}

func TestTokenIssuer_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	issuer := NewTokenIssuer(srv.Client(), srv.URL, "client-id", "bad-secret")
	_, _, err := issuer.Exchange(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, http.StatusUnauthorized, authErr.Status)
	require.Contains(t, authErr.Body, "invalid_client")
}

func TestTokenIssuer_MalformedPayload(t *testing.T) {
	cases := map[string]string{
		"not json":           `<html>oops</html>`,
		"missing token":      `{"expires_in":1799}`,
		"missing expires_in": `{"access_token":"tok-1"}`,
		"zero expires_in":    `{"access_token":"tok-1","expires_in":0}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			issuer := NewTokenIssuer(srv.Client(), srv.URL, "client-id", "client-secret")
			_, _, err := issuer.Exchange(context.Background())
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestTokenIssuer_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	issuer := NewTokenIssuer(&http.Client{Timeout: 20 * time.Millisecond}, srv.URL, "id", "secret")
	_, _, err := issuer.Exchange(context.Background())
	require.ErrorIs(t, err, ErrProviderTimeout)
}
