package eventer

import (
	"context"
	"fmt"
	"iter"
	"net/url"

	"go.uber.org/zap"

	"ticket-claimer/internal/model"
)

// EventDetail is one element of the event stream: either Info is set, or Err
// says why the link was skipped.
type EventDetail struct {
	Link string
	Info *model.EventInfo
	Err  error
}

func (d EventDetail) Skipped() bool {
	return d.Err != nil
}

// ListEventLinks returns one event-detail URL per event on the seller's profile.
func (c *Client) ListEventLinks(ctx context.Context) ([]string, error) {
	uri := c.url("/user/%s/getData", url.PathEscape(c.seller))
	var data model.SellerData
	if err := c.getJSON(ctx, uri, ErrFetchUserData, &data); err != nil {
		return nil, err
	}
	if data.Events == nil {
		return nil, fmt.Errorf("%w: %s: no events list", ErrDecode, uri)
	}

	links := make([]string, 0, len(*data.Events))
	for _, ev := range *data.Events {
		links = append(links, c.url("/events/explainNames/%s.js", url.PathEscape(ev.LinkName)))
	}
	c.log.Info("event links", zap.Strings("links", links))
	return links, nil
}

// EventDetails lists the seller's events and returns a lazy sequence that
// fetches each one as it is consumed. A link that cannot be fetched is yielded
// as a skip; it never stops the sequence. Ranging again re-fetches.
func (c *Client) EventDetails(ctx context.Context) (iter.Seq[EventDetail], error) {
	links, err := c.ListEventLinks(ctx)
	if err != nil {
		return nil, err
	}

	return func(yield func(EventDetail) bool) {
		for _, link := range links {
			c.log.Info("fetching event", zap.String("link", link))

			var info model.EventInfo
			d := EventDetail{Link: link}
			if err := c.getJSON(ctx, link, ErrFetchEvent, &info); err != nil {
				c.log.Warn("could not fetch event", zap.String("link", link), zap.Error(err))
				d.Err = err
			} else {
				d.Info = &info
			}

			if !yield(d) {
				return
			}
		}
	}, nil
}

// TicketTypes fetches the ticket types of one event.
func (c *Client) TicketTypes(ctx context.Context, eventID string) (*model.TicketTypes, error) {
	var tt model.TicketTypes
	if err := c.getJSON(ctx, c.url("/events/%s/ticketTypes.js", url.PathEscape(eventID)), ErrFetchTickets, &tt); err != nil {
		return nil, err
	}
	return &tt, nil
}
