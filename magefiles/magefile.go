//go:build mage

// Package main contains Mage build targets for openalex-fetch developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "openalex-fetch"
	cmdPkg  = "./cmd/openalex-fetch"
	dataDir = "data"
)

// queryTypes lists every query the Fetch target exports.
var queryTypes = []string{"title", "title_abstract", "topic_type"}

var binPath = filepath.Join(binDir, binName)

// Init creates the export directory.
func Init() error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dataDir, err)
	}
	fmt.Println("  ", dataDir)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	ldflags := "-X main.version=" + version()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Fetch exports every query type into data/, one run per type.
func Fetch() error {
	mg.Deps(Init, Build)
	for _, qt := range queryTypes {
		if err := sh.RunV(binPath, "--query-type", qt, "--data-dir", dataDir); err != nil {
			return fmt.Errorf("fetching %s: %w", qt, err)
		}
	}
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// version returns the git description of HEAD, or "dev" outside a repository.
func version() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}
