// Package tokenstore reads the locally stored API credentials.
//
// The store is the desktop analog of the mobile app's device key-value
// storage: a small JSON document holding the access and refresh tokens the
// account subsystem maintains. This package only ever reads it; refresh and
// expiry handling belong to that external subsystem.
package tokenstore

import (
	"encoding/json"
	"log/slog"
	"os"

	"applemart/internal/pkg/errs"
)

// tokenDocument mirrors the stored JSON shape.
type tokenDocument struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// FileTokenStore reads credentials from a JSON file on every call, so a
// token rotated by the account subsystem is picked up by the next request
// without restarting the client.
//
// A missing or unreadable file yields empty tokens, which downstream turns
// into unauthenticated requests rather than hard failures: the backend is
// the source of truth for authorization errors.
type FileTokenStore struct {
	path   string
	logger *slog.Logger
}

// NewFileTokenStore creates a token store backed by the file at path.
// The file does not need to exist yet.
func NewFileTokenStore(path string, logger *slog.Logger) (*FileTokenStore, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &FileTokenStore{
		path:   path,
		logger: logger.With("component", "token_store"),
	}, nil
}

// AccessToken returns the stored access token, or the empty string when no
// usable credential is stored.
func (s *FileTokenStore) AccessToken() string {
	return s.read().AccessToken
}

// RefreshToken returns the stored refresh token, or the empty string when no
// usable credential is stored.
func (s *FileTokenStore) RefreshToken() string {
	return s.read().RefreshToken
}

func (s *FileTokenStore) read() tokenDocument {
	var doc tokenDocument

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read token file", "path", s.path, "error", err)
		}
		return doc
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("failed to parse token file", "path", s.path, "error", err)
		return tokenDocument{}
	}
	return doc
}
