// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes fetched works to disk as a JSON array.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName returns the export file name for a query type.
func FileName(queryType string) string {
	return fmt.Sprintf("openalex_%s_export.json", queryType)
}

// OutputPath joins dir with the export file name for queryType.
func OutputPath(dir, queryType string) string {
	return filepath.Join(dir, FileName(queryType))
}

// WriteJSON writes records to path as a JSON array indented with four spaces.
// Non-ASCII text is written as UTF-8 and HTML characters are not escaped.
// The parent directory is created if missing and an existing file is
// truncated. The write is not atomic.
func WriteJSON(path string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("encoding JSON: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
