package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "fave-tweets/1.0"

// HTTPClient is a resty client preconfigured for outbound API calls.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client sending every request to baseURL with a
// JSON Accept header. A positive timeout bounds each request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
