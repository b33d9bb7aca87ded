package lbc

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the production search API host.
const DefaultBaseURL = "https://api.leboncoin.fr"

// maxDetailLen caps how much of an upstream error body is carried back to
// callers, so oversized or sensitive payloads never reach logs or responses.
const maxDetailLen = 500

// Client issues search requests against the leboncoin finder API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new leboncoin search client
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UpstreamError reports a search call that did not complete successfully,
// either a non-2xx upstream status or a transport failure.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream search failed: status=%d, detail=%s", e.Status, e.Detail)
}

func truncateDetail(s string) string {
	if len(s) > maxDetailLen {
		return s[:maxDetailLen]
	}
	return s
}
