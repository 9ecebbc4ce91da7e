// Package tokenstore persists the bearer credential between CLI runs,
// filling the role browser localStorage plays for the web portal. Only
// login and logout write it; everything else takes read-only snapshots.
package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	path string
}

// New builds a store at path; an empty path falls back to
// <user config dir>/vy-portal/credential.
func New(path string) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve config dir: %w", err)
		}
		path = filepath.Join(configDir, "vy-portal", "credential")
	}
	return &Store{path: path}, nil
}

// Load returns the stored credential, or "" when logged out. Read errors
// are indistinguishable from "no credential" on purpose: the gate treats
// both as unauthenticated.
func (s *Store) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) Save(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create credential dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(credential+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	return nil
}
