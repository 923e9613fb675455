package bible

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	transport  Transport
}

const defaultTimeout = 30 * time.Second

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout. It applies uniformly to every
// request and is ignored when a custom HTTP client or transport is given.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient sets the *http.Client used by the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithTransport replaces the transport entirely. Mostly useful in tests.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}
