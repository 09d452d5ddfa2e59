package estyped

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// joinPath joins pre-escaped path segments with "/". No percent-encoding
// happens here; that is the transport's concern.
func joinPath(segments ...string) string {
	return strings.Join(segments, "/")
}

// jsonBody marshals value to JSON and returns io.Reader.
func jsonBody(v interface{}) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal JSON")
	}
	return bytes.NewReader(b), nil
}

// writeJSONLine writes one JSON value followed by a newline.
func writeJSONLine(w io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// parseBaseURL parses and validates a server base URL.
func parseBaseURL(server Server) (*url.URL, error) {
	if server == "" {
		return nil, errors.New("empty server URL")
	}

	u, err := url.Parse(string(server))
	if err != nil {
		return nil, errors.Wrap(err, "invalid server URL")
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("server URL must be absolute (include scheme and host)")
	}

	return u, nil
}
