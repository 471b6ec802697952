package eventer

import (
	"context"

	"github.com/valyala/fasthttp"
)

const TagHeader = "X-Eventer-Tag"

// SellFromLandingPage posts a JSON purchase body. The status is returned as is.
func (c *Client) SellFromLandingPage(ctx context.Context, tag string, body []byte) (int, []byte, error) {
	headers := map[string]string{
		fasthttp.HeaderContentType: "application/json;charset=UTF-8",
		TagHeader:                  tag,
	}
	r, err := c.do(ctx, fasthttp.MethodPost, c.url("/sales/sellFromEventLandingPage"), headers, body)
	if err != nil {
		return 0, nil, err
	}
	return r.status, r.body, nil
}
