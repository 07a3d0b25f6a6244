// Package api implements the service ports over the backend's HTTP API.
package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// StatusError is a non-2xx backend response. Error returns the backend's
// message so failure actions carry it unchanged.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	http *resty.Client
}

// NewClient builds a client without retries; timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", "ChatSync-Client/1.0").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// do sends one request and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any, query map[string]string) error {
	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&errorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if e, ok := resp.Error().(*errorBody); ok && e.Error != "" {
			msg = e.Error
		}
		log.Debug().
			Str("module", "adapters.api").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("backend error")
		return &StatusError{Code: resp.StatusCode(), Message: msg}
	}
	return nil
}
