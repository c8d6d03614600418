package shipit

import (
	"context"
	"net/url"
)

// Request describes one API operation: where it goes, what it sends and
// how a successful response body becomes T.
type Request[T any] struct {
	Name   string
	Method string
	Path   string
	Query  url.Values
	// Body is a typed payload or a raw map; nil sends no body.
	Body   any
	Decode func(body []byte) (T, error)
}

// NoContent is the result of operations whose response carries nothing
// of interest.
type NoContent struct{}

func discard([]byte) (NoContent, error) { return NoContent{}, nil }

// Send executes req on c. Error responses are never passed to Decode.
func Send[T any](ctx context.Context, c *Connector, req Request[T]) (T, error) {
	var zero T
	body, err := c.call(ctx, req.Name, req.Method, req.Path, req.Query, req.Body)
	if err != nil {
		return zero, err
	}
	if req.Decode == nil {
		return zero, nil
	}
	return req.Decode(body)
}

// pathf joins escaped segments onto a fixed prefix.
func pathf(prefix string, segments ...string) string {
	p := prefix
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

// rawBody guarantees an object body for operations taking caller maps.
func rawBody(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return data
}
