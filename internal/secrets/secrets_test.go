// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyOpenAlexEmail, "  user@example.com \n")
				writeFile(t, dir, KeyOpenAlexAPIKey, "oa_key")
				return dir
			},
			want: Secrets{
				KeyOpenAlexEmail:  "user@example.com",
				KeyOpenAlexAPIKey: "oa_key",
			},
		},
		{
			name: "missing directory is empty",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyOpenAlexEmail, "a@b.org")
				writeFile(t, dir, "blank", " \n\t")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Secrets{KeyOpenAlexEmail: "a@b.org"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, KeyOpenAlexEmail, "a@b.org")

	badPath := filepath.Join(dir, KeyOpenAlexAPIKey)
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var logs bytes.Buffer
	got, err := Load(dir, zerolog.New(&logs))
	require.NoError(t, err)

	assert.Equal(t, "a@b.org", got[KeyOpenAlexEmail])
	assert.NotContains(t, got, KeyOpenAlexAPIKey)
	assert.Contains(t, logs.String(), KeyOpenAlexAPIKey)
}

func TestOr(t *testing.T) {
	s := Secrets{KeyOpenAlexEmail: "file@example.com"}
	assert.Equal(t, "flag@example.com", s.Or("flag@example.com", KeyOpenAlexEmail))
	assert.Equal(t, "file@example.com", s.Or("", KeyOpenAlexEmail))
	assert.Empty(t, s.Or("", KeyOpenAlexAPIKey))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
