package eventer

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	DefaultDomain  = "https://www.eventer.co.il"
	DefaultSeller  = "KULIALMA"
	DefaultTimeout = 30 * time.Second

	// maxRedirects bounds how many hops a GET follows.
	maxRedirects = 5
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL string
	Seller  string
	Timeout time.Duration

	// Dial overrides how connections are made. Tests point it at an
	// in-memory listener.
	Dial fasthttp.DialFunc
}

// Client talks to the Eventer site on behalf of a single seller.
type Client struct {
	baseURL string
	seller  string
	timeout time.Duration
	http    *fasthttp.Client
	log     *zap.Logger
}

func NewClient(opts Options, log *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultDomain
	}
	if opts.Seller == "" {
		opts.Seller = DefaultSeller
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: opts.BaseURL,
		seller:  opts.Seller,
		timeout: opts.Timeout,
		http: &fasthttp.Client{
			Name:                "ticket-claimer",
			ReadTimeout:         opts.Timeout,
			WriteTimeout:        opts.Timeout,
			MaxIdleConnDuration: 90 * time.Second,
			Dial:                opts.Dial,
		},
		log: log,
	}
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// do sends one request. GETs follow redirects, each hop bounded by the client's
// read and write timeouts; other methods are sent once. The body is copied out
// so the pooled response can be released.
func (c *Client) do(ctx context.Context, method, uri string, headers map[string]string, body []byte) (response, error) {
	if err := ctx.Err(); err != nil {
		return response{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.SetBody(body)
	}

	var err error
	if method == fasthttp.MethodGet {
		err = c.http.DoRedirects(req, resp, maxRedirects)
	} else {
		err = c.http.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		return response{}, fmt.Errorf("%s %s: %w", method, uri, err)
	}

	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return response{status: resp.StatusCode(), body: out}, nil
}

var acceptJSON = map[string]string{fasthttp.HeaderAccept: "application/json"}

// getJSON fetches uri and decodes it into v. Transport failures and non-2xx
// answers are reported as kind; a body that does not decode is ErrDecode.
func (c *Client) getJSON(ctx context.Context, uri string, kind error, v any) error {
	r, err := c.do(ctx, fasthttp.MethodGet, uri, acceptJSON, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}
	if !r.ok() {
		return &StatusError{Kind: kind, URL: uri, StatusCode: r.status}
	}
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, uri, err)
	}
	return nil
}
