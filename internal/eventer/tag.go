package eventer

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/valyala/fasthttp"
)

var tagMarker = []byte(`version="`)

// AntiForgeryTag reads the seller's public page and returns the token the
// sale endpoint expects in X-Eventer-Tag.
func (c *Client) AntiForgeryTag(ctx context.Context) (string, error) {
	uri := c.url("/user/%s", url.PathEscape(c.seller))
	r, err := c.do(ctx, fasthttp.MethodGet, uri, nil, nil)
	if err != nil {
		return "", err
	}
	// The status is not checked; an error page without the marker fails below.
	return ExtractTag(r.body)
}

// ExtractTag returns the bytes between the first `version="` and the next quote.
func ExtractTag(page []byte) (string, error) {
	start := bytes.Index(page, tagMarker)
	if start < 0 {
		return "", fmt.Errorf("%w: marker %q absent", ErrTagNotFound, tagMarker)
	}
	start += len(tagMarker)

	end := bytes.IndexByte(page[start:], '"')
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated token", ErrTagNotFound)
	}
	if end == 0 {
		return "", fmt.Errorf("%w: empty token", ErrTagNotFound)
	}
	return string(page[start : start+end]), nil
}
