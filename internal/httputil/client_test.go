// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/openalex-fetch/pkg/types"
)

// userAgentServer records the User-Agent of the last request it served.
func userAgentServer(t *testing.T) (*httptest.Server, func() string) {
	t.Helper()
	var (
		mu sync.Mutex
		ua string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ua = r.Header.Get("User-Agent")
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)
	return ts, func() string {
		mu.Lock()
		defer mu.Unlock()
		return ua
	}
}

func TestNewClient_Defaults(t *testing.T) {
	ts, ua := userAgentServer(t)

	client := NewClient(types.HTTPConfig{}, ts.Client().Transport)
	assert.Equal(t, DefaultTimeout, client.Timeout)

	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, DefaultUserAgent, ua())
}

func TestNewClient_Configured(t *testing.T) {
	ts, ua := userAgentServer(t)

	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "custom/1.0"}, ts.Client().Transport)
	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "custom/1.0", ua())
}

func TestNewClient_KeepsExplicitUserAgent(t *testing.T) {
	ts, ua := userAgentServer(t)

	client := NewClient(types.HTTPConfig{UserAgent: "configured/1.0"}, ts.Client().Transport)

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "explicit/2.0")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "explicit/2.0", ua())
}

func TestNewClient_TimesOut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{Timeout: 50 * time.Millisecond}, ts.Client().Transport)
	_, err := client.Get(ts.URL)
	assert.Error(t, err)
}
