// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/openalex-fetch/internal/export"
	"github.com/pdiddy/openalex-fetch/internal/httputil"
	"github.com/pdiddy/openalex-fetch/internal/openalex"
	"github.com/pdiddy/openalex-fetch/internal/query"
	"github.com/pdiddy/openalex-fetch/internal/secrets"
)

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().String("query-type", "", "query to run: title, title_abstract, or topic_type")
	cmd.Flags().Bool("dry-run", false, "print the first page request URL and exit without fetching")
	cmd.Flags().Bool("fail-on-partial", false, "exit with status 1 when a failed page cut pagination short")
	// MarkFlagRequired only fails for an unknown flag name.
	_ = cmd.MarkFlagRequired("query-type")
}

func (a *app) runFetch(cmd *cobra.Command, _ []string) error {
	qtFlag, _ := cmd.Flags().GetString("query-type")
	qt, err := query.ParseType(qtFlag)
	if err != nil {
		return err
	}
	// Past argument validation, errors are runtime failures, not usage mistakes.
	cmd.SilenceUsage = true

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	failOnPartial, _ := cmd.Flags().GetBool("fail-on-partial")

	filter, err := query.Build(qt, a.cfg.Query)
	if err != nil {
		return err
	}

	client := a.openAlexClient()
	perPage := a.cfg.OpenAlex.PerPage

	if dryRun {
		a.log.Info().Str("query_type", string(qt)).Str("filter", filter).Msg("dry run: no requests sent")
		fmt.Fprintln(cmd.OutOrStdout(), client.RedactedRequestURL(filter, perPage, "*"))
		return nil
	}

	a.log.Info().Str("query_type", string(qt)).Str("filter", filter).Msg("fetching works")
	res, err := client.FetchWorks(cmd.Context(), filter, perPage)
	if err != nil {
		return fmt.Errorf("fetching %s works: %w", qt, err)
	}

	if len(res.Works) == 0 {
		a.log.Info().Msgf("No results for %s query found.", qt)
		return partialError(res, failOnPartial)
	}

	path := export.OutputPath(a.cfg.Export.DataDir, string(qt))
	if err := export.WriteJSON(path, res.Works); err != nil {
		return fmt.Errorf("exporting works: %w", err)
	}
	a.log.Info().
		Str("path", path).
		Int("works", len(res.Works)).
		Int("pages", res.Pages).
		Bool("partial", res.Truncated).
		Msg("export written")

	if res.Truncated {
		a.log.Warn().
			Int("status_code", res.StatusCode).
			Int("works", len(res.Works)).
			Int("total", res.Total).
			Msg("export is partial: pagination stopped at a failed page")
	}
	return partialError(res, failOnPartial)
}

// partialError turns a truncated fetch into an error only when the caller
// asked for it; by default a partial export still exits 0.
func partialError(res openalex.FetchResult, failOnPartial bool) error {
	if !res.Truncated || !failOnPartial {
		return nil
	}
	return fmt.Errorf("pagination stopped at HTTP %d after %d works", res.StatusCode, len(res.Works))
}

func (a *app) openAlexClient() *openalex.Client {
	oa := a.cfg.OpenAlex
	return openalex.NewClient(
		openalex.WithHTTPClient(httputil.NewClient(oa.HTTPConfig, nil)),
		openalex.WithBaseURL(oa.BaseURL),
		openalex.WithMailto(a.secrets.Or(oa.Mailto, secrets.KeyOpenAlexEmail)),
		openalex.WithAPIKey(a.secrets.Or(oa.APIKey, secrets.KeyOpenAlexAPIKey)),
		openalex.WithLogger(a.log),
	)
}
