// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/openalex-fetch/internal/secrets"
)

const maskedSecret = "********"

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config prints the configuration a fetch would run with after merging
defaults, the config file, .env, environment variables, .secrets/ and flags.
The API key is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			cfg.OpenAlex.Mailto = a.secrets.Or(cfg.OpenAlex.Mailto, secrets.KeyOpenAlexEmail)
			if a.secrets.Or(cfg.OpenAlex.APIKey, secrets.KeyOpenAlexAPIKey) != "" {
				cfg.OpenAlex.APIKey = maskedSecret
			}

			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
