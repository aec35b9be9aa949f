package aadtoken

import (
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Client)

// WithAuthorityURL overrides the AAD authority, for sovereign clouds and
// tests.
func WithAuthorityURL(authorityURL string) Option {
	return func(c *Client) {
		c.authorityURL = authorityURL
	}
}

func WithScope(scope string) Option {
	return func(c *Client) {
		c.scope = scope
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.restyClient.SetTimeout(timeout)
	}
}

func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *Client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}
