package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client defaults. Slack caps search pages at 100 results each; walking
// pages of 100 minimizes round trips.
const (
	defaultBaseURL  = "https://slack.com/api"
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 100
	userAgent       = "ketchup (+https://github.com/smetj/ketchup)"
)

// APIError is returned when Slack answers a request with ok:false.
// Code is the machine-readable error string from the response, for example
// "invalid_auth" or "missing_scope".
type APIError struct {
	Code string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return "slack API error: " + e.Code
}

// Client queries the Slack search API. It authenticates with a user OAuth
// token carrying the search:read scope.
type Client struct {
	rest     *resty.Client
	pageSize int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Slack API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.rest.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// WithPageSize sets the number of matches requested per page.
func WithPageSize(size int) Option {
	return func(c *Client) {
		c.pageSize = size
	}
}

// NewClient creates a Client authenticating with the given bearer token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		rest: resty.New().
			SetBaseURL(defaultBaseURL).
			SetAuthToken(token).
			SetTimeout(defaultTimeout).
			SetHeader("User-Agent", userAgent),
		pageSize: defaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// searchResponse is the shape of a search.messages response. Matches stay
// raw JSON so path expressions can resolve against the full payload.
type searchResponse struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
	Messages struct {
		Matches []json.RawMessage `json:"matches"`
		Paging  paging            `json:"paging"`
	} `json:"messages"`
}

type paging struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// Search runs query against search.messages and invokes fn once per raw
// match, walking every page of results in order. At most one page is held
// in memory; the stream restarts only by calling Search again.
//
// Any transport error, non-2xx status, or ok:false response aborts the walk
// and propagates unchanged. There are no retries. An error returned by fn
// stops the walk and is returned as-is.
func (c *Client) Search(ctx context.Context, query string, fn func(Match) error) error {
	for page := 1; ; page++ {
		var sr searchResponse
		resp, err := c.rest.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"query": query,
				"count": strconv.Itoa(c.pageSize),
				"page":  strconv.Itoa(page),
			}).
			SetResult(&sr).
			Get("/search.messages")
		if err != nil {
			return fmt.Errorf("slack search request: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("slack search request: unexpected status %s", resp.Status())
		}
		if !sr.OK {
			return &APIError{Code: sr.Error}
		}

		for _, raw := range sr.Messages.Matches {
			if err := fn(Match(raw)); err != nil {
				return err
			}
		}

		if page >= sr.Messages.Paging.Pages {
			return nil
		}
	}
}
