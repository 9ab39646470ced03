package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/sirupsen/logrus"
)

// ErrKeyNotFound is returned when no signing key matches a token's kid.
var ErrKeyNotFound = errors.New("no matching signing key")

// KeyProvider resolves a key id to a verification key.
type KeyProvider interface {
	Key(ctx context.Context, kid string) (interface{}, error)
}

type KeySetOptions struct {
	TTL        time.Duration
	MinRefresh time.Duration
	HTTPClient *http.Client
}

// KeySet is a JWKS fetched over HTTP and cached for TTL. A kid missing from
// the cache forces a refetch, but fetches are never closer than MinRefresh.
type KeySet struct {
	url        string
	ttl        time.Duration
	minRefresh time.Duration
	client     *http.Client
	logger     *logrus.Logger
	now        func() time.Time

	mu          sync.RWMutex
	keys        jose.JSONWebKeySet
	fetchedAt   time.Time
	lastAttempt time.Time
	lastErr     error
}

func NewKeySet(url string, opts KeySetOptions, logger *logrus.Logger) *KeySet {
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.MinRefresh < 0 {
		opts.MinRefresh = 0
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &KeySet{
		url:        url,
		ttl:        opts.TTL,
		minRefresh: opts.MinRefresh,
		client:     opts.HTTPClient,
		logger:     logger,
		now:        time.Now,
	}
}

// Warm fetches the key set eagerly.
func (k *KeySet) Warm(ctx context.Context) error {
	return k.refresh(ctx, k.now())
}

func (k *KeySet) Key(ctx context.Context, kid string) (interface{}, error) {
	now := k.now()

	k.mu.RLock()
	key, found := k.lookup(kid)
	fresh := !k.fetchedAt.IsZero() && now.Sub(k.fetchedAt) < k.ttl
	k.mu.RUnlock()

	if found && fresh {
		return key, nil
	}

	if err := k.refresh(ctx, now); err != nil {
		if found {
			k.logger.WithError(err).Warn("JWKS refresh failed, serving cached key")
			return key, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, err)
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	if key, ok := k.lookup(kid); ok {
		return key, nil
	}
	return nil, ErrKeyNotFound
}

// lookup must be called with mu held.
func (k *KeySet) lookup(kid string) (interface{}, bool) {
	matches := k.keys.Key(kid)
	if len(matches) == 0 {
		return nil, false
	}
	jwk := matches[0]
	if !jwk.IsPublic() {
		jwk = jwk.Public()
	}
	return jwk.Key, true
}

func (k *KeySet) refresh(ctx context.Context, now time.Time) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.lastAttempt.IsZero() && now.Sub(k.lastAttempt) < k.minRefresh {
		return k.lastErr
	}
	k.lastAttempt = now

	set, err := k.fetch(ctx)
	k.lastErr = err
	if err != nil {
		k.logger.WithError(err).WithField("url", k.url).Error("Failed to fetch JWKS")
		return err
	}

	k.keys = set
	k.fetchedAt = now
	k.logger.WithFields(logrus.Fields{
		"url":  k.url,
		"keys": len(set.Keys),
	}).Info("JWKS refreshed")
	return nil
}

func (k *KeySet) fetch(ctx context.Context) (jose.JSONWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		return jose.JSONWebKeySet{}, fmt.Errorf("failed to create JWKS request: %w", err)
	}

	resp, err := k.client.Do(req)
	if err != nil {
		return jose.JSONWebKeySet{}, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return jose.JSONWebKeySet{}, fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var set jose.JSONWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return jose.JSONWebKeySet{}, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	signing := set.Keys[:0]
	for _, key := range set.Keys {
		if key.Use != "" && key.Use != "sig" {
			continue
		}
		if !key.Valid() {
			continue
		}
		signing = append(signing, key)
	}
	if len(signing) == 0 {
		return jose.JSONWebKeySet{}, errors.New("JWKS has no usable signing keys")
	}
	return jose.JSONWebKeySet{Keys: signing}, nil
}
