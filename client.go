package estyped

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Client dispatches typed operations over a Transport. It holds no session
// state beyond the transport handle and is safe for concurrent use.
type Client struct {
	transport Transport
	server    *url.URL
	log       Logger
}

// NewClient creates a typed client for one server. The logger may be nil;
// logging is then disabled.
func NewClient(transport Transport, server Server, log Logger) (*Client, error) {
	u, err := parseBaseURL(server)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		server:    u,
		log:       safeLogger(log),
	}, nil
}

// Reply is the raw descriptor of one HTTP exchange. A non-2xx status is a
// normal reply, not an error: the dispatch layer hands every server answer
// back for the caller to inspect.
type Reply struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status code is in [200,299].
func (r *Reply) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Err returns a StatusError for a non-success reply, nil otherwise. For
// callers who prefer status-as-error semantics.
func (r *Reply) Err(op string) error {
	if r.IsSuccess() {
		return nil
	}
	return &StatusError{Op: op, StatusCode: r.StatusCode}
}

// dispatch sends one request and reads the whole reply. Only transport and
// request-construction failures become errors.
func (c *Client) dispatch(ctx context.Context, method, path, contentType string, body io.Reader) (*Reply, error) {
	u := *c.server
	u.Path = path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s request", method)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "http request failed")
	}
	defer res.Body.Close() //nolint:errcheck

	replyBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	c.log.DebugWithCtx(ctx, "dispatch", "method", method, "path", path, "status", res.StatusCode)

	return &Reply{StatusCode: res.StatusCode, Body: replyBody}, nil
}

func (c *Client) get(ctx context.Context, path string) (*Reply, error) {
	return c.dispatch(ctx, http.MethodGet, path, "", nil)
}

func (c *Client) head(ctx context.Context, path string) (*Reply, error) {
	return c.dispatch(ctx, http.MethodHead, path, "", nil)
}

func (c *Client) put(ctx context.Context, path string, body io.Reader) (*Reply, error) {
	return c.dispatch(ctx, http.MethodPut, path, "application/json", body)
}

func (c *Client) post(ctx context.Context, path string, body io.Reader) (*Reply, error) {
	return c.dispatch(ctx, http.MethodPost, path, "application/json", body)
}

func (c *Client) delete(ctx context.Context, path string) (*Reply, error) {
	return c.dispatch(ctx, http.MethodDelete, path, "", nil)
}

// exists issues HEAD and reports presence. Only status 200 means present;
// other 2xx codes do not.
func (c *Client) exists(ctx context.Context, path string) (bool, error) {
	reply, err := c.head(ctx, path)
	if err != nil {
		return false, err
	}
	return reply.StatusCode == http.StatusOK, nil
}

// pathTo builds an absolute request path from pre-escaped segments.
func (c *Client) pathTo(segments ...string) string {
	return "/" + joinPath(segments...)
}

// Root fetches the server banner.
func (c *Client) Root(ctx context.Context) (*Status, error) {
	reply, err := c.get(ctx, "/")
	if err != nil {
		return nil, err
	}
	if err := reply.Err("root"); err != nil {
		return nil, err
	}
	return ParseStatus(reply.Body)
}

// CreateIndex creates an index with the given shard/replica settings.
func (c *Client) CreateIndex(ctx context.Context, settings IndexSettings, index IndexName) (*Reply, error) {
	body, err := jsonBody(settings)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, c.pathTo(string(index)), body)
}

// DeleteIndex removes an index.
func (c *Client) DeleteIndex(ctx context.Context, index IndexName) (*Reply, error) {
	return c.delete(ctx, c.pathTo(string(index)))
}

// IndexExists probes for an index with HEAD.
func (c *Client) IndexExists(ctx context.Context, index IndexName) (bool, error) {
	return c.exists(ctx, c.pathTo(string(index)))
}

// OpenIndex makes a closed index available again.
func (c *Client) OpenIndex(ctx context.Context, index IndexName) (*Reply, error) {
	return c.post(ctx, c.pathTo(string(index), "_open"), nil)
}

// CloseIndex closes an index.
func (c *Client) CloseIndex(ctx context.Context, index IndexName) (*Reply, error) {
	return c.post(ctx, c.pathTo(string(index), "_close"), nil)
}

// RefreshIndex makes recent writes visible to search.
func (c *Client) RefreshIndex(ctx context.Context, index IndexName) (*Reply, error) {
	return c.post(ctx, c.pathTo(string(index), "_refresh"), nil)
}

// PutMapping installs a mapping schema for a document type. The schema is
// any JSON-marshalable value; its shape is not validated here.
func (c *Client) PutMapping(ctx context.Context, index IndexName, mapping MappingName, schema interface{}) (*Reply, error) {
	body, err := jsonBody(schema)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, c.pathTo(string(index), string(mapping), "_mapping"), body)
}

// DeleteMapping removes a mapping and its documents.
func (c *Client) DeleteMapping(ctx context.Context, index IndexName, mapping MappingName) (*Reply, error) {
	return c.delete(ctx, c.pathTo(string(index), string(mapping), "_mapping"))
}

// IndexDocument stores a document under an explicit id.
func (c *Client) IndexDocument(ctx context.Context, index IndexName, mapping MappingName, id DocId, document interface{}) (*Reply, error) {
	body, err := jsonBody(document)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, c.pathTo(string(index), string(mapping), string(id)), body)
}

// GetDocument fetches a document. Decode the reply body with ParseEsResult
// for the typed envelope.
func (c *Client) GetDocument(ctx context.Context, index IndexName, mapping MappingName, id DocId) (*Reply, error) {
	return c.get(ctx, c.pathTo(string(index), string(mapping), string(id)))
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, index IndexName, mapping MappingName, id DocId) (*Reply, error) {
	return c.delete(ctx, c.pathTo(string(index), string(mapping), string(id)))
}

// DocumentExists probes for a document with HEAD.
func (c *Client) DocumentExists(ctx context.Context, index IndexName, mapping MappingName, id DocId) (bool, error) {
	return c.exists(ctx, c.pathTo(string(index), string(mapping), string(id)))
}

// SearchAll searches across every index. Decode the reply body with
// ParseSearchResult for the typed envelope.
func (c *Client) SearchAll(ctx context.Context, search Search) (*Reply, error) {
	return c.dispatchSearch(ctx, search, c.pathTo("_search"))
}

// SearchByIndex searches one index.
func (c *Client) SearchByIndex(ctx context.Context, index IndexName, search Search) (*Reply, error) {
	return c.dispatchSearch(ctx, search, c.pathTo(string(index), "_search"))
}

// SearchByType searches one document type of one index.
func (c *Client) SearchByType(ctx context.Context, index IndexName, mapping MappingName, search Search) (*Reply, error) {
	return c.dispatchSearch(ctx, search, c.pathTo(string(index), string(mapping), "_search"))
}

func (c *Client) dispatchSearch(ctx context.Context, search Search, path string) (*Reply, error) {
	body, err := jsonBody(search)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, path, body)
}

// Bulk streams the operations to the bulk endpoint as NDJSON.
func (c *Client) Bulk(ctx context.Context, ops []BulkOperation) (*Reply, error) {
	stream, err := EncodeBulkOperations(ops)
	if err != nil {
		return nil, err
	}
	return c.dispatch(ctx, http.MethodPost, c.pathTo("_bulk"), "application/x-ndjson", stream)
}
