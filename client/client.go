// Package client posts GraphQL operations over HTTP. It is used to fetch introspection results.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type Client struct {
	client   *http.Client
	header   http.Header
	endpoint string
}

// NewClient creates a new http client wrapper.
func NewClient(endpoint string, options ...Option) *Client {
	client := &Client{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}

	return client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

func WithHTTPHeader(header http.Header) Option {
	return func(c *Client) {
		c.header = header
	}
}

// Request is the JSON body of a GraphQL POST request.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the JSON body of a GraphQL response.
type Response struct {
	Data   jsontext.Value `json:"data"`
	Errors []*Error       `json:"errors,omitempty"`
}

type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (path: %v)", e.Message, e.Path)
}

// Post sends query and decodes the data of the response into out.
func (c *Client) Post(ctx context.Context, operationName, query string, variables map[string]any, out any) error {
	req, err := NewRequest(ctx, c.endpoint, operationName, query, variables)
	if err != nil {
		return fmt.Errorf("failed to create post request: %w", err)
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return ParseResponse(resp, out)
}

// NewRequest builds a POST request with a JSON body.
func NewRequest(ctx context.Context, endpoint, operationName, query string, variables map[string]any) (*http.Request, error) {
	body, err := json.Marshal(Request{
		Query:         query,
		OperationName: operationName,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request struct failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json; charset=utf-8")

	return req, nil
}

// ParseResponse decodes the data of resp into out. GraphQL errors take precedence over data.
func ParseResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var res Response
	if err := json.Unmarshal(body, &res); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("http status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(res.Errors) > 0 {
		errs := make([]error, 0, len(res.Errors))
		for _, e := range res.Errors {
			errs = append(errs, e)
		}
		return fmt.Errorf("graphql error: %w", errors.Join(errs...))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("http status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	if len(res.Data) == 0 || string(res.Data) == "null" {
		return errors.New("response has no data")
	}

	if err := json.Unmarshal(res.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}

	return nil
}
