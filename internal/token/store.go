// ABOUTME: Durable storage for the access/refresh token pair
// ABOUTME: Persists tokens as JSON in the XDG config directory

package token

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Pair is the token pair returned by the token-issuance endpoint.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Store reads and writes the token pair under a fixed file in configDir.
// Both tokens live and die together: Save replaces the pair, Clear removes it.
type Store struct {
	configDir string
}

// NewStore creates a token store rooted at the given config directory.
func NewStore(configDir string) *Store {
	return &Store{configDir: configDir}
}

func (s *Store) tokenFile() string {
	return filepath.Join(s.configDir, "tokens.json")
}

// Load reads the stored pair. A missing or unreadable file yields an empty
// pair, never an error: absent tokens simply mean "not logged in".
func (s *Store) Load() Pair {
	data, err := os.ReadFile(s.tokenFile())
	if err != nil {
		return Pair{}
	}
	var p Pair
	if err := json.Unmarshal(data, &p); err != nil {
		return Pair{}
	}
	return p
}

// Save writes the pair to disk, creating the config directory if needed.
// The file is user-only: it holds live credentials.
func (s *Store) Save(p Pair) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.tokenFile(), data, 0600)
}

// SetAccess replaces only the access token, keeping the refresh token as is.
// Used after a successful refresh.
func (s *Store) SetAccess(access string) error {
	p := s.Load()
	p.Access = access
	return s.Save(p)
}

// Access returns the stored access token, or "" when absent.
func (s *Store) Access() string {
	return s.Load().Access
}

// Refresh returns the stored refresh token, or "" when absent.
func (s *Store) Refresh() string {
	return s.Load().Refresh
}

// Clear removes both tokens. Clearing an already-empty store is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.tokenFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
