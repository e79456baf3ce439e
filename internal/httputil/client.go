// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil builds the HTTP client used to talk to OpenAlex.
package httputil

import (
	"net/http"
	"time"

	"github.com/pdiddy/openalex-fetch/pkg/types"
)

// DefaultTimeout applies when HTTPConfig.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// DefaultUserAgent applies when HTTPConfig.UserAgent is empty.
const DefaultUserAgent = "openalex-fetch/0.1"

// NewClient returns an *http.Client with the configured timeout whose
// requests carry the configured User-Agent. A nil base uses
// http.DefaultTransport.
func NewClient(cfg types.HTTPConfig, base http.RoundTripper) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: base, userAgent: ua},
	}
}

// userAgentTransport sets User-Agent on requests that do not already have one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
