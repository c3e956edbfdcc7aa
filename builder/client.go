package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// FetchOptions are the request options handed to a FetchFunc.
type FetchOptions struct {
	Method string
	Header http.Header
	Body   []byte
}

func (o FetchOptions) clone() FetchOptions {
	out := FetchOptions{Method: o.Method, Header: o.Header.Clone()}
	if o.Body != nil {
		out.Body = append([]byte(nil), o.Body...)
	}
	return out
}

// FetchResponse is what a FetchFunc returns.
type FetchResponse struct {
	StatusCode int
	Body       []byte
}

// Text returns the body as a string.
func (r *FetchResponse) Text() string {
	return string(r.Body)
}

// JSON decodes the body into v.
func (r *FetchResponse) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// FetchFunc is the pluggable HTTP capability used by Fetch. Cancellation and
// timeouts belong to the implementation.
type FetchFunc func(ctx context.Context, url string, opts *FetchOptions) (*FetchResponse, error)

// HTTPFetch adapts an *http.Client to a FetchFunc. A nil client uses http.DefaultClient.
func HTTPFetch(hc *http.Client) FetchFunc {
	if hc == nil {
		hc = http.DefaultClient
	}
	return func(ctx context.Context, url string, opts *FetchOptions) (*FetchResponse, error) {
		method := opts.Method
		if method == "" {
			method = http.MethodGet
		}
		var body io.Reader
		if opts.Body != nil {
			body = bytes.NewReader(opts.Body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, err
		}
		for k, vs := range opts.Header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		resp, err := hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		bts, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		return &FetchResponse{StatusCode: resp.StatusCode, Body: bts}, nil
	}
}

// Client holds what used to be process-wide fetch configuration: the fetch
// function, the default server URL and the default options. It is read-only
// after NewClient and safe to share between goroutines.
type Client struct {
	fetch   FetchFunc
	url     string
	options FetchOptions
	log     logrus.FieldLogger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithFetchFunc registers the fetch capability.
func WithFetchFunc(fn FetchFunc) ClientOption {
	return func(c *Client) {
		c.fetch = fn
	}
}

// WithHTTPClient registers HTTPFetch(hc) as the fetch capability.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.fetch = HTTPFetch(hc)
	}
}

// WithDefaultURL sets the server URL used when Fetch gets no WithURL.
func WithDefaultURL(url string) ClientOption {
	return func(c *Client) {
		c.url = url
	}
}

// WithDefaultOptions sets the options used when Fetch gets no WithFetchOptions.
func WithDefaultOptions(opts FetchOptions) ClientOption {
	return func(c *Client) {
		c.options = opts.clone()
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient returns a client. Without WithFetchFunc or WithHTTPClient every
// Fetch fails with ErrFetchNotConfigured.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient is NewClient with HTTPFetch(hc) and a default URL.
func NewHTTPClient(url string, hc *http.Client, opts ...ClientOption) *Client {
	return NewClient(append([]ClientOption{WithHTTPClient(hc), WithDefaultURL(url)}, opts...)...)
}
