// Package testutil holds HTTP stubs and assertion helpers shared by the
// package tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StubDoer is a canned transport. It records every request (with its body
// drained) and answers with the configured status and body, or fails with
// Err.
type StubDoer struct {
	StatusCode int
	Body       string
	Err        error

	mu       sync.Mutex
	requests []*http.Request
	bodies   [][]byte
}

func (d *StubDoer) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	d.mu.Lock()
	d.requests = append(d.requests, req)
	d.bodies = append(d.bodies, body)
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}

	status := d.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	return &http.Response{ //nolint:exhaustruct
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(d.Body)),
	}, nil
}

func (d *StubDoer) Requests() []*http.Request {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*http.Request, len(d.requests))
	copy(out, d.requests)

	return out
}

func (d *StubDoer) LastRequest(t *testing.T) *http.Request {
	t.Helper()

	d.mu.Lock()
	defer d.mu.Unlock()

	require.NotEmpty(t, d.requests, "no request was recorded")

	return d.requests[len(d.requests)-1]
}

func (d *StubDoer) LastRequestBody(t *testing.T) []byte {
	t.Helper()

	d.mu.Lock()
	defer d.mu.Unlock()

	require.NotEmpty(t, d.bodies, "no request was recorded")

	return d.bodies[len(d.bodies)-1]
}

func AssertRequestHeader(t *testing.T, req *http.Request, header, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, req.Header.Get(header), "Header %s mismatch", header)
}

func AssertRequestHeaderExists(t *testing.T, req *http.Request, header string) {
	t.Helper()
	assert.NotEmpty(t, req.Header.Get(header), "Header %s should exist", header)
}

func AssertRequestHeaderAbsent(t *testing.T, req *http.Request, header string) {
	t.Helper()
	assert.Empty(t, req.Header.Get(header), "Header %s should be absent", header)
}

func MustParseJSONBody(t *testing.T, body []byte, target any) {
	t.Helper()

	err := json.Unmarshal(body, target)
	require.NoError(t, err, "Request body should be valid JSON")
}
