// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the openalex-fetch CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/openalex-fetch/internal/config"
	"github.com/pdiddy/openalex-fetch/internal/logging"
	"github.com/pdiddy/openalex-fetch/internal/secrets"
	"github.com/pdiddy/openalex-fetch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	v          *viper.Viper
	cfgFile    string
	secretsDir string

	cfg     types.Config
	log     zerolog.Logger
	secrets secrets.Secrets
}

// newRootCmd builds the command tree. The root command runs a fetch.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "openalex-fetch --query-type {title|title_abstract|topic_type}",
		Short: "Export OpenAlex works matching a filter to a JSON file",
		Long: `openalex-fetch builds an OpenAlex works filter, pages through every match
using cursor pagination, and writes the records to
<data-dir>/openalex_<query-type>_export.json as an indented JSON array.

Query types:
  title           full-text search of the configured terms in titles
  title_abstract  full-text search of the configured terms in titles and abstracts
  topic_type      works with the configured primary topic and work type

A failed page stops pagination; the works received so far are still exported.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.load,
		RunE:              a.runFetch,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./openalex-fetch.yaml or ~/.config/openalex-fetch/config.yaml)")
	pf.StringVar(&a.secretsDir, "secrets-dir", secrets.DefaultDir, "directory holding openalex-email and openalex-api-key files")
	pf.String("data-dir", config.DefaultDataDir, "directory export files are written to")
	pf.Int("per-page", 0, "works per page, 1-200 (default 25)")
	pf.String("query", "", "full-text search terms for title and title_abstract queries")
	pf.String("topic", "", "primary topic ID for topic_type queries (default t12262)")
	pf.String("type", "", "work type for topic_type queries (default dataset)")
	pf.String("mailto", "", "contact email sent for OpenAlex polite pool access")
	pf.Duration("timeout", 0, "HTTP request timeout (default 60s)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")

	bindings := map[string]string{
		"data-dir":   config.KeyDataDir,
		"per-page":   config.KeyPerPage,
		"query":      config.KeyTerms,
		"topic":      config.KeyTopic,
		"type":       config.KeyWorkType,
		"mailto":     config.KeyMailto,
		"timeout":    config.KeyTimeout,
		"log-level":  config.KeyLogLevel,
		"log-format": config.KeyLogFormat,
	}
	for flag, key := range bindings {
		// BindPFlag only fails for a nil flag.
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	addFetchFlags(rootCmd)
	rootCmd.AddCommand(newConfigCmd(a), newVersionCmd())
	return rootCmd
}

// load resolves configuration, the logger and secrets before any command runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("path", used).Msg("using config file")
	}

	a.secrets, err = secrets.Load(a.secretsDir, a.log)
	if err != nil {
		return err
	}
	a.log.Debug().Int("count", len(a.secrets)).Str("dir", a.secretsDir).Msg("loaded secrets")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
