package baasclient

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/truffletools/azbaas/browse"
	"github.com/truffletools/azbaas/notify"
	"github.com/truffletools/azbaas/telemetry"
)

const (
	DefaultBaseURL    = "https://management.azure.com"
	DefaultAPIVersion = "2018-06-01-preview"
	DefaultTimeout    = 60 * time.Second

	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderClientRequestID = "x-ms-client-request-id"
	HeaderAcceptLanguage  = "accept-language"
	ContentTypeJSON       = "application/json"
)

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDoer swaps the transport for any Doer implementation. Intended for
// stubbing in tests.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithNotifier(notifier notify.Notifier) Option {
	return func(c *Client) {
		c.notifier = notifier
	}
}

func WithTelemetry(recorder telemetry.Recorder) Option {
	return func(c *Client) {
		c.telemetry = recorder
	}
}

func WithBrowserOpener(opener browse.Opener) Option {
	return func(c *Client) {
		c.opener = opener
	}
}
