package session

import (
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed file the token lives under in the state
// directory.
const tokenFileName = "authToken"

// TokenStore persists the single opaque auth token across restarts.
type TokenStore struct {
	dir string
}

func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{dir: dir}
}

func (s *TokenStore) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

// Load returns the stored token, or "" when none exists.
func (s *TokenStore) Load() string {
	raw, err := os.ReadFile(s.path())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (s *TokenStore) Clear() {
	_ = os.Remove(s.path())
}
