package session

import (
	"context"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/repositories/metadata"
)

// tokenKey is the fixed metadata key under which the bearer credential is
// persisted, mirroring the web client's local-storage key.
const tokenKey = "token"

// TokenStore persists the bearer credential through the injected metadata
// capability. It satisfies api.TokenSource, so the gateway reads the same
// token the session manager writes.
type TokenStore struct {
	repo metadata.Repository
}

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Token returns the stored credential, or the empty string when none is
// stored.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	return s.repo.Get(ctx, tokenKey)
}

// Save persists a freshly issued credential.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	return s.repo.Set(ctx, tokenKey, token)
}

// Clear removes the stored credential.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, tokenKey)
}
