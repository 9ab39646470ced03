// Package authtest runs a throwaway identity provider for tests: an RSA
// signing key, a JWKS endpoint and a token minter.
package authtest

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"casting-agency/internal/config"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	Domain   = "casting-test.auth0.local"
	Audience = "casting-test-api"
)

type Provider struct {
	Server *httptest.Server

	mu      sync.RWMutex
	key     *rsa.PrivateKey
	keyID   string
	fetches atomic.Int64
}

func NewProvider(t testing.TB) *Provider {
	t.Helper()

	p := &Provider{}
	p.Rotate(t)
	p.Server = httptest.NewServer(http.HandlerFunc(p.serveKeySet))
	t.Cleanup(p.Server.Close)
	return p
}

func (p *Provider) KeySetURL() string {
	return p.Server.URL + "/.well-known/jwks.json"
}

func (p *Provider) Issuer() string {
	return "https://" + Domain + "/"
}

// Fetches counts JWKS requests served.
func (p *Provider) Fetches() int64 {
	return p.fetches.Load()
}

func (p *Provider) KeyID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.keyID
}

// Rotate replaces the signing key; subsequent JWKS responses carry only the new key.
func (p *Provider) Rotate(t testing.TB) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate RSA key: %v", err)
	}

	p.mu.Lock()
	p.key = key
	p.keyID = "test-" + uuid.NewString()[:8]
	p.mu.Unlock()
}

// Claims returns a valid claim set carrying the given permissions. With no
// permissions the claim is present and empty.
func (p *Provider) Claims(permissions ...string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":         p.Issuer(),
		"aud":         Audience,
		"sub":         "auth0|tester",
		"iat":         now.Unix(),
		"exp":         now.Add(time.Hour).Unix(),
		"permissions": append([]string{}, permissions...),
	}
}

func (p *Provider) Token(t testing.TB, permissions ...string) string {
	return p.Sign(t, p.Claims(permissions...))
}

func (p *Provider) Sign(t testing.TB, claims jwt.MapClaims) string {
	return p.SignWithKeyID(t, p.KeyID(), claims)
}

func (p *Provider) SignWithKeyID(t testing.TB, kid string, claims jwt.MapClaims) string {
	t.Helper()

	p.mu.RLock()
	key := p.key
	p.mu.RUnlock()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (p *Provider) serveKeySet(w http.ResponseWriter, r *http.Request) {
	p.fetches.Add(1)

	p.mu.RLock()
	set := jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
		Key:       &p.key.PublicKey,
		KeyID:     p.keyID,
		Algorithm: "RS256",
		Use:       "sig",
	}}}
	p.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(set)
}

// AuthConfig points the guard at this provider.
func (p *Provider) AuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Domain:          Domain,
		Audience:        Audience,
		JWKSURL:         p.KeySetURL(),
		JWKSTTL:         10 * time.Minute,
		JWKSHTTPTimeout: 2 * time.Second,
	}
}
