// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads OpenAlex credentials from a directory of plain-text files.
// Each file is one secret: the filename is the key and the trimmed contents are the value.
//
// Recognized keys: openalex-email, openalex-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	KeyOpenAlexEmail  = "openalex-email"
	KeyOpenAlexAPIKey = "openalex-api-key"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// Secrets maps key names to values.
type Secrets map[string]string

// Or returns value when it is non-empty and the secret for key otherwise.
// Explicit configuration always wins over a secret file.
func (s Secrets) Or(value, key string) string {
	if value != "" {
		return value
	}
	return s[key]
}

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty set. Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}
