// Package applemartapi implements the outbound REST client for the Apple Mart
// storefront backend. It translates between the backend's inconsistent
// response envelopes and the normalized domain model the rest of the
// application relies on, and submits order status-transition commands.
//
// Read paths that feed list views never fail: transport errors and malformed
// payloads degrade to empty results with diagnostic logging. Single-entity
// reads and all writes propagate errors carrying the most specific message
// the backend exposed.
package applemartapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"applemart/internal/core/ports"
	"applemart/internal/pkg/errs"
)

// Client talks to the storefront backend over HTTP. Every request reads the
// bearer credential from the token store at request time; a missing token
// results in an unauthenticated request, and the backend stays the source of
// truth for authorization failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     ports.TokenStore
	logger     *slog.Logger
}

// NewClient creates a backend client rooted at baseURL.
// The timeout applies to every request; transport failures caused by it are
// handled like any other transport failure.
func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenStore, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger.With("component", "applemart_api"),
	}, nil
}

// newRequest builds a request with the Accept header and, when available,
// the bearer credential read from the token store.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// send executes the request and drains the body. The response is returned
// alongside the body even for non-2xx statuses so callers can extract error
// details or log diagnostics.
func (c *Client) send(req *http.Request) ([]byte, *http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, err
	}

	return body, resp, nil
}

// logFailure records as much diagnostic detail as the transport exposed.
// Used on the degrade-to-empty read paths, which never surface errors to callers.
func (c *Client) logFailure(ctx context.Context, operation string, resp *http.Response, body []byte, err error) {
	attrs := []any{"operation", operation}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	if resp != nil {
		attrs = append(attrs,
			"status", resp.StatusCode,
			"headers", resp.Header,
		)
	}
	if len(body) > 0 {
		attrs = append(attrs, "body", string(body))
	}
	c.logger.ErrorContext(ctx, "request failed", attrs...)
}

// backendErrorMessage extracts the most specific human-readable message from
// an error response body: the message field first, then the first entry of
// the field-level validation error collection, then the fallback.
func backendErrorMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if msgs, ok := envelope.Errors["NewStatus"]; ok && len(msgs) > 0 {
			return msgs[0]
		}

		fields := make([]string, 0, len(envelope.Errors))
		for field := range envelope.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			if msgs := envelope.Errors[field]; len(msgs) > 0 {
				return msgs[0]
			}
		}
	}
	return fallback
}
