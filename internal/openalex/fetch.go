// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// FetchResult holds the accumulated works and how the page loop ended.
type FetchResult struct {
	// Works are all records received, in page order and then API order.
	Works []Work

	// Pages is the number of pages successfully decoded.
	Pages int

	// Total is meta.count from the first page: the number of matches the
	// API reported, which may exceed len(Works) when Truncated is set.
	Total int

	// Truncated reports that a non-200 response stopped the loop early.
	Truncated bool

	// StatusCode is the failing HTTP status when Truncated is set.
	StatusCode int
}

// redactedAPIKey replaces the api_key value in URLs meant for display.
const redactedAPIKey = "REDACTED"

// RequestURL returns the URL requested for one page of filter.
func (c *Client) RequestURL(filter string, perPage int, cursor string) string {
	return c.requestURL(filter, perPage, cursor, c.apiKey)
}

// RedactedRequestURL is RequestURL with the api_key value masked, for
// printing or logging.
func (c *Client) RedactedRequestURL(filter string, perPage int, cursor string) string {
	key := c.apiKey
	if key != "" {
		key = redactedAPIKey
	}
	return c.requestURL(filter, perPage, cursor, key)
}

func (c *Client) requestURL(filter string, perPage int, cursor, apiKey string) string {
	params := url.Values{
		"filter":   {filter},
		"per_page": {strconv.Itoa(clampPerPage(perPage))},
		"cursor":   {cursor},
	}
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}
	if apiKey != "" {
		params.Set("api_key", apiKey)
	}
	return c.baseURL + "?" + params.Encode()
}

// FetchWorks follows next_cursor from the start of the stream until the API
// stops returning one, and returns every work in arrival order. Requests are
// issued one at a time since each cursor comes from the previous response.
//
// Any status other than 200 stops the loop and returns what was accumulated
// with Truncated set and a nil error. Transport and decoding failures return the
// partial result together with the error.
func (c *Client) FetchWorks(ctx context.Context, filter string, perPage int) (FetchResult, error) {
	perPage = clampPerPage(perPage)
	log := c.logger.With().Str("filter", filter).Int("per_page", perPage).Logger()

	var res FetchResult
	cursor := startCursor
	for cursor != "" {
		log.Debug().Int("page", res.Pages+1).Str("cursor", cursor).Msg("requesting page")

		page, status, err := c.fetchPage(ctx, c.RequestURL(filter, perPage, cursor))
		if err != nil {
			return res, err
		}
		if status != http.StatusOK {
			log.Warn().
				Int("status_code", status).
				Int("page", res.Pages+1).
				Int("works", len(res.Works)).
				Msgf("Failed to fetch data. HTTP status code: %d", status)
			res.Truncated = true
			res.StatusCode = status
			return res, nil
		}

		if res.Pages == 0 {
			res.Total = page.Meta.Count
			log.Info().Int("total", res.Total).Msg("query matched works")
		}
		res.Works = append(res.Works, page.Results...)
		res.Pages++
		log.Debug().Int("page", res.Pages).Int("received", len(page.Results)).Int("works", len(res.Works)).Msg("page received")

		cursor = ""
		if page.Meta.NextCursor != nil {
			cursor = *page.Meta.NextCursor
		}
	}

	log.Info().Int("pages", res.Pages).Int("works", len(res.Works)).Msg("fetch complete")
	return res, nil
}

// fetchPage requests one page. A status other than 200 is returned with a nil
// page and nil error so the caller decides how to stop. A 204 or other 2xx
// carries no works page and is treated the same way.
func (c *Client) fetchPage(ctx context.Context, reqURL string) (*worksPage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var page worksPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return &page, resp.StatusCode, nil
}

func clampPerPage(n int) int {
	switch {
	case n <= 0:
		return DefaultPerPage
	case n > MaxPerPage:
		return MaxPerPage
	default:
		return n
	}
}
