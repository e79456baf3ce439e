// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the OpenAlex API.
type HTTPConfig struct {
	// Timeout bounds each HTTP request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "openalex-fetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OpenAlexConfig holds settings for the works endpoint.
type OpenAlexConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the works list endpoint (default https://api.openalex.org/works).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Mailto is sent as the mailto parameter for polite pool access.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// APIKey is sent as the api_key parameter when set.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// PerPage is the page size requested on each call (default 25, max 200).
	PerPage int `json:"per_page" yaml:"per_page"`
}

// QueryConfig holds the inputs the query builders draw from.
type QueryConfig struct {
	// Terms is the boolean full-text expression used by the title and
	// title_abstract query types.
	Terms string `json:"terms" yaml:"terms"`

	// Topic is the OpenAlex primary topic ID used by the topic_type query type.
	Topic string `json:"topic" yaml:"topic"`

	// WorkType is the OpenAlex work type used by the topic_type query type.
	WorkType string `json:"work_type" yaml:"work_type"`
}

// ExportConfig holds settings for the JSON exporter.
type ExportConfig struct {
	// DataDir is the directory export files are written to.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is console (human-readable) or json.
	Format string `json:"format" yaml:"format"`
}

// Config groups every setting a fetch run needs.
type Config struct {
	OpenAlex OpenAlexConfig `json:"openalex" yaml:"openalex"`
	Query    QueryConfig    `json:"query" yaml:"query"`
	Export   ExportConfig   `json:"export" yaml:"export"`
	Log      LogConfig      `json:"log" yaml:"log"`
}
