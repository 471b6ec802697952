// Package purchase builds and submits registration requests.
package purchase

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Site is the part of the Eventer client the submitter needs.
type Site interface {
	AntiForgeryTag(ctx context.Context) (string, error)
	SellFromLandingPage(ctx context.Context, tag string, body []byte) (int, []byte, error)
}

// Receipt is the raw answer to a registration. It is not interpreted here.
type Receipt struct {
	StatusCode int
	Body       []byte
}

func (r *Receipt) Accepted() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Submitter struct {
	site Site
	log  *zap.Logger
}

func NewSubmitter(site Site, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{site: site, log: log}
}

// Submit fetches a fresh anti-forgery tag and posts payload with it.
func (s *Submitter) Submit(ctx context.Context, payload any) (*Receipt, error) {
	tag, err := s.site.AntiForgeryTag(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling purchase: %w", err)
	}

	s.log.Info("purchasing", zap.Int("bytes", len(body)))
	status, respBody, err := s.site.SellFromLandingPage(ctx, tag, body)
	if err != nil {
		return nil, fmt.Errorf("submitting purchase: %w", err)
	}
	return &Receipt{StatusCode: status, Body: respBody}, nil
}
