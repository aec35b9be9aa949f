// Package baasclient is a thin binding over the Azure Blockchain Service
// resource-management REST API. It builds resource-scoped URLs, issues one
// authenticated request per operation and decodes the JSON response into
// typed results. Token acquisition, transport, notification and telemetry
// are injected capabilities; the client itself holds no mutable state after
// construction and is safe for concurrent use.
package baasclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/truffletools/azbaas/browse"
	"github.com/truffletools/azbaas/notify"
	"github.com/truffletools/azbaas/telemetry"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider supplies bearer tokens for outbound requests. The client
// treats it as an opaque capability; see the aadtoken package for the
// default AAD client-credentials implementation.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
	InvalidateToken()
}

var _ Doer = (*http.Client)(nil)

type Config struct {
	Credential     TokenProvider `validate:"required"`
	SubscriptionID string        `validate:"required"`
	ResourceGroup  string
	Location       string

	// BaseURL and APIVersion default to the public ARM endpoint and the
	// Microsoft.Blockchain preview API version.
	BaseURL    string
	APIVersion string

	// GenerateClientRequestID attaches a fresh x-ms-client-request-id
	// header to every request.
	GenerateClientRequestID bool
	AcceptLanguage          string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Client struct {
	cfg        Config
	httpClient Doer
	notifier   notify.Notifier
	telemetry  telemetry.Recorder
	opener     browse.Opener
	logger     zerolog.Logger
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{ //nolint:exhaustruct
			Timeout: DefaultTimeout,
		},
		notifier:  notify.Noop(),
		telemetry: telemetry.Noop(),
		opener:    browse.Default(),
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Do issues a single request against an already-built resource URL and
// decodes the response into response. It is the escape hatch for API paths
// not covered by the typed operations; prefer those where they exist.
func (c *Client) Do(ctx context.Context, method, url string, body, response any) error {
	return c.do(ctx, method, url, body, response)
}

func (c *Client) do(ctx context.Context, method, url string, body, response any) error {
	resp, respBody, err := c.send(ctx, method, url, body)
	if err != nil {
		return err
	}

	// The management API answers every operation routed through here with
	// 200; anything else, other 2xx codes included, is a failure.
	if resp.StatusCode != http.StatusOK {
		statusErr := newStatusError(resp.StatusCode, string(respBody))
		c.telemetry.Exception(method+" "+url, statusErr)

		return statusErr
	}

	if response == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

// send performs the transport round trip shared by do and CreateConsortium.
// Transport failures are surfaced to the notifier as well as the caller.
func (c *Client) send(ctx context.Context, method, url string, body any) (*http.Response, []byte, error) {
	token, err := c.cfg.Credential.GetToken(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	req, err := c.buildRequest(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set(HeaderAuthorization, "Bearer "+token)

	c.logger.Debug().Str("method", method).Str("url", url).Msg("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrRequestFailed, err)
		c.notifier.Error(wrapped.Error())
		c.telemetry.Exception(method+" "+url, wrapped)

		return nil, nil, wrapped
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Msg("response received")

	return resp, respBody, nil
}

func (c *Client) buildRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	req.Header.Set(HeaderContentType, ContentTypeJSON)

	if c.cfg.GenerateClientRequestID {
		req.Header.Set(HeaderClientRequestID, uuid.New().String())
	}

	if c.cfg.AcceptLanguage != "" {
		req.Header.Set(HeaderAcceptLanguage, c.cfg.AcceptLanguage)
	}

	return req, nil
}
