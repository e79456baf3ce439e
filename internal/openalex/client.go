// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex pages through the OpenAlex works endpoint with cursor
// pagination and returns the matched work records unmodified.
package openalex

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the OpenAlex works list endpoint.
const DefaultBaseURL = "https://api.openalex.org/works"

const (
	// DefaultPerPage is the page size used when the caller passes zero.
	DefaultPerPage = 25

	// MaxPerPage is the largest page size the API accepts.
	MaxPerPage = 200

	// startCursor asks the API for the first page of a cursor stream.
	startCursor = "*"
)

// Work is one record as returned by the API. Its fields are not interpreted;
// keeping the raw bytes preserves field order and values for export.
type Work = json.RawMessage

// Client issues requests against the works endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mailto     string
	apiKey     string
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at a different works endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithMailto sends the mailto parameter so requests join the polite pool.
func WithMailto(email string) Option {
	return func(c *Client) {
		c.mailto = email
	}
}

// WithAPIKey sends the api_key parameter.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithLogger sets the logger for page progress and failures.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient returns a client for DefaultBaseURL using http.DefaultClient
// unless options say otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// worksPage is the subset of a works list response the fetcher reads.
type worksPage struct {
	Meta    worksMeta `json:"meta"`
	Results []Work    `json:"results"`
}

type worksMeta struct {
	Count      int     `json:"count"`
	PerPage    int     `json:"per_page"`
	NextCursor *string `json:"next_cursor"`
}
