package bible

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a scripture API client. It is safe for concurrent use;
// nothing is mutated after NewClient returns.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a new scripture API client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		hc := o.httpClient
		if hc == nil {
			hc = &http.Client{Timeout: o.timeout}
		}
		transport = &httpTransport{client: hc}
	}

	return &Client{
		baseURL:   o.baseURL,
		apiKey:    apiKey,
		userAgent: o.userAgent,
		transport: transport,
		logger:    logger,
	}, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do builds the request for op, performs one GET and normalizes the result
func (c *Client) do(ctx context.Context, op Operation, params Params, ids ...string) (Response, error) {
	req, err := BuildRequest(c.baseURL, c.apiKey, op, params, ids...)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	raw, err := c.transport.Get(ctx, req.URL, req.Header)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("operation", op.String()).
			Str("url", req.URL).
			Msg("Scripture API request failed")
		return nil, &TransportError{Operation: op, URL: req.URL, Err: err}
	}

	c.logger.Debug().
		Str("operation", op.String()).
		Str("url", req.URL).
		Int("status", raw.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Scripture API request")

	return normalize(op, raw)
}

// normalize turns a raw response into exactly one of a Response or an error
func normalize(op Operation, raw *RawResponse) (Response, error) {
	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		return nil, newAPIError(raw.StatusCode, raw.Body)
	}

	resp, err := decodeResponse(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidResponse, err)
	}
	if resp == nil {
		resp = Response{}
	}
	return resp, nil
}

// httpTransport is the default Transport backed by an *http.Client
type httpTransport struct {
	client *http.Client
}

func (t *httpTransport) Get(ctx context.Context, url string, header http.Header) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = header.Clone()

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
