package estyped

import (
	"context"
	"net/http"
	"net/url"

	elasticV8 "github.com/elastic/go-elasticsearch/v8"
	elasticV9 "github.com/elastic/go-elasticsearch/v9"
	"github.com/pkg/errors"
)

// Transport is the pluggable "send request, get response" capability the
// client dispatches through. Connection pooling, TLS, retries and timeouts
// all live behind this interface.
type Transport interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// transportAdapter adapts a go-elasticsearch transport to Transport.
type transportAdapter struct {
	perform func(req *http.Request) (*http.Response, error)
	baseURL *url.URL
}

// Do executes the request with context, resolving relative URLs against the
// adapter's base URL.
func (ta *transportAdapter) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if req.URL == nil {
		return nil, errors.New("request url is nil")
	}

	r := req.Clone(ctx)
	if !r.URL.IsAbs() {
		if ta.baseURL == nil {
			return nil, errors.New("base url is nil")
		}
		u := *ta.baseURL
		u.Path = r.URL.Path
		u.RawQuery = r.URL.RawQuery
		r.URL = &u
	}

	return ta.perform(r)
}

// NewTransportV8 wraps the connection-pooling transport of a
// go-elasticsearch v8 client.
func NewTransportV8(c *elasticV8.Client, baseURL *url.URL) Transport {
	return &transportAdapter{
		perform: c.Transport.Perform,
		baseURL: baseURL,
	}
}

// NewTransportV9 wraps the connection-pooling transport of a
// go-elasticsearch v9 client.
func NewTransportV9(c *elasticV9.Client, baseURL *url.URL) Transport {
	return &transportAdapter{
		perform: c.Transport.Perform,
		baseURL: baseURL,
	}
}
