// Package aadtoken fetches AAD client-credentials tokens for the Azure
// resource-management API and caches them until shortly before expiry. It
// implements the baasclient.TokenProvider contract.
package aadtoken

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrTokenRequestFailed = errors.New("aadtoken: token request failed")
	ErrNoAccessToken      = errors.New("aadtoken: no access token in response")
)

const (
	DefaultAuthorityURL = "https://login.microsoftonline.com"
	DefaultScope        = "https://management.azure.com/.default"
	DefaultTimeout      = 10 * time.Second

	tokenExpiryBuffer    = 30 * time.Second
	grantTypeCredentials = "client_credentials"
)

//nolint:tagliatelle // AAD returns snake_case
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

//nolint:tagliatelle
type aadError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type Client struct {
	tenantID     string
	clientID     string
	clientSecret string
	authorityURL string
	scope        string
	restyClient  *resty.Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func New(tenantID, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		authorityURL: DefaultAuthorityURL,
		scope:        DefaultScope,
		restyClient:  createDefaultRestyClient(),
		mu:           sync.RWMutex{},
		accessToken:  "",
		expiresAt:    time.Time{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func createDefaultRestyClient() *resty.Client {
	return resty.New().
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json")
}

func (c *Client) tokenURL() string {
	return c.authorityURL + "/" + c.tenantID + "/oauth2/v2.0/token"
}

func (c *Client) GetToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		token := c.accessToken
		c.mu.RUnlock()

		return token, nil
	}
	c.mu.RUnlock()

	return c.refreshToken(ctx)
}

func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine might have refreshed)
	if c.accessToken != "" && time.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.accessToken = token
	// Refresh before actual expiry to avoid edge cases
	c.expiresAt = time.Now().Add(time.Duration(expiresIn)*time.Second - tokenExpiryBuffer)

	return c.accessToken, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, int, error) {
	var tokenResp tokenResponse

	var tokenErr aadError

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    grantTypeCredentials,
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
			"scope":         c.scope,
		}).
		SetResult(&tokenResp).
		SetError(&tokenErr).
		Post(c.tokenURL())
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch token: %w", err)
	}

	if !resp.IsSuccess() {
		return "", 0, fmt.Errorf("%w: status %d, error=%s, description=%s",
			ErrTokenRequestFailed, resp.StatusCode(), tokenErr.Error, tokenErr.ErrorDescription)
	}

	if tokenResp.AccessToken == "" {
		return "", 0, ErrNoAccessToken
	}

	return tokenResp.AccessToken, tokenResp.ExpiresIn, nil
}

func (c *Client) InvalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.accessToken = ""
	c.expiresAt = time.Time{}
}
