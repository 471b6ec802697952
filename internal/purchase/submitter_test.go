package purchase_test

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-claimer/internal/eventer"
	"ticket-claimer/internal/eventer/eventertest"
	"ticket-claimer/internal/purchase"
)

func TestSubmitAttachesFreshTag(t *testing.T) {
	site := eventertest.New(t)
	s := purchase.NewSubmitter(eventer.NewClient(site.Options(), nil), nil)

	receipt, err := s.Submit(context.Background(), map[string]string{"event": "E1"})
	require.NoError(t, err)
	assert.True(t, receipt.Accepted())

	site.SetPage(eventertest.PageWithTag("rotated"))
	_, err = s.Submit(context.Background(), map[string]string{"event": "E2"})
	require.NoError(t, err)

	ps := site.Purchases()
	require.Len(t, ps, 2)
	assert.Equal(t, eventertest.Tag, ps[0].Tag)
	assert.Equal(t, "rotated", ps[1].Tag)

	var body map[string]string
	require.NoError(t, json.Unmarshal(ps[1].Body, &body))
	assert.Equal(t, "E2", body["event"])
	assert.Equal(t, 2, site.Hits("/user/"+eventertest.Seller))
}

func TestSubmitReturnsRejectedReceipt(t *testing.T) {
	site := eventertest.New(t)
	site.SetSaleStatus(422)
	s := purchase.NewSubmitter(eventer.NewClient(site.Options(), nil), nil)

	receipt, err := s.Submit(context.Background(), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 422, receipt.StatusCode)
	assert.False(t, receipt.Accepted())
}

func TestSubmitWithoutTagSendsNothing(t *testing.T) {
	site := eventertest.New(t)
	site.SetPage("<html></html>")
	s := purchase.NewSubmitter(eventer.NewClient(site.Options(), nil), nil)

	_, err := s.Submit(context.Background(), map[string]string{})
	if !errors.Is(err, eventer.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
	if n := len(site.Purchases()); n != 0 {
		t.Fatalf("expected no purchase request, got %d", n)
	}
}
