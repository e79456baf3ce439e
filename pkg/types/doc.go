// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration structures shared by the fetcher,
// the exporter and the CLI.
package types
