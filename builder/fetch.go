package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Location is a position inside the query text reported by the server.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError is one entry of the response "errors" array. Servers that
// report bare strings are accepted too.
type GraphQLError struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

func (e *GraphQLError) UnmarshalJSON(b []byte) error {
	var msg string
	if err := json.Unmarshal(b, &msg); err == nil {
		*e = GraphQLError{Message: msg}
		return nil
	}
	type plain GraphQLError
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = GraphQLError(p)
	return nil
}

// Response is the fetched envelope. Raw is the "data" object after date
// coercion, Data is Raw decoded into the generated data struct.
type Response[T any] struct {
	Data   T
	Raw    map[string]any
	Errors []GraphQLError
}

// Err joins the GraphQL errors of the response, nil when there are none.
func (r *Response[T]) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

type callConfig struct {
	url     string
	options *FetchOptions
}

// CallOption overrides client defaults for a single Fetch.
type CallOption func(*callConfig)

// WithURL overrides the client's default URL.
func WithURL(url string) CallOption {
	return func(c *callConfig) {
		c.url = url
	}
}

// WithFetchOptions overrides the client's default options.
func WithFetchOptions(opts FetchOptions) CallOption {
	return func(c *callConfig) {
		o := opts.clone()
		c.options = &o
	}
}

type requestBody struct {
	Query string `json:"query"`
	// TODO: send variables and operationName once builders can declare variables.
}

// Fetch sends the selection as a query operation and returns the reshaped
// response. GET (or an empty method) puts the query in the URL, any other
// method sends it as a JSON body.
func Fetch[T any](ctx context.Context, c *Client, sel Selector, opts ...CallOption) (*Response[T], error) {
	if c == nil || c.fetch == nil {
		return nil, ErrFetchNotConfigured
	}
	s := sel.SelectionSet()
	if err := s.Err(); err != nil {
		return nil, err
	}

	call := callConfig{url: c.url}
	for _, opt := range opts {
		opt(&call)
	}
	fo := c.options.clone()
	if call.options != nil {
		fo = call.options.clone()
	}
	if fo.Header == nil {
		fo.Header = http.Header{}
	}

	query := QueryString(sel)
	target := call.url
	if fo.Method == "" || strings.EqualFold(fo.Method, http.MethodGet) {
		fo.Method = http.MethodGet
		u, err := withQueryParam(target, query)
		if err != nil {
			return nil, err
		}
		target = u
	} else {
		body, err := json.Marshal(requestBody{Query: query})
		if err != nil {
			return nil, fmt.Errorf("builder: encode request body: %w", err)
		}
		fo.Body = body
		if fo.Header.Get("Content-Type") == "" {
			fo.Header.Set("Content-Type", "application/json")
		}
	}

	c.log.WithFields(logrus.Fields{"method": fo.Method, "url": call.url}).Debug("graphql fetch")
	resp, err := c.fetch(ctx, target, &fo)
	if err != nil {
		return nil, fmt.Errorf("builder: fetch %s: %w", call.url, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("builder: fetch %s: no response", call.url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: resp.Text()}
	}

	var envelope struct {
		Data   map[string]any `json:"data"`
		Errors []GraphQLError `json:"errors"`
	}
	if err := resp.JSON(&envelope); err != nil {
		return nil, fmt.Errorf("builder: decode response: %w", err)
	}
	if err := coerceDates(s, envelope.Data); err != nil {
		return nil, err
	}
	out := &Response[T]{Raw: envelope.Data, Errors: envelope.Errors}
	if err := decodeData(envelope.Data, &out.Data); err != nil {
		return nil, fmt.Errorf("builder: decode data: %w", err)
	}
	c.log.WithFields(logrus.Fields{"status": resp.StatusCode, "errors": len(out.Errors)}).Debug("graphql response")
	return out, nil
}

func withQueryParam(target, query string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("builder: parse url %q: %w", target, err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
