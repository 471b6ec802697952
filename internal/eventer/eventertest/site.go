// Package eventertest runs an in-memory imitation of the Eventer site for tests.
package eventertest

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"ticket-claimer/internal/eventer"
)

const (
	BaseURL = "http://eventer.test"
	Seller  = "KULIALMA"
	Tag     = "3.14.15"
)

// Event describes one event the fake seller publishes. Zero statuses mean 200.
type Event struct {
	LinkName       string
	ID             string
	TicketID       string
	Price          float64
	GuestQuestions []string
	DetailStatus   int
	TicketStatus   int
	NoTicketTypes  bool
}

type Purchase struct {
	Tag  string
	Body []byte
}

type Site struct {
	ln  *fasthttputil.InmemoryListener
	srv *fasthttp.Server

	mu            sync.Mutex
	events        []Event
	profileStatus int
	saleStatus    int
	page          string
	profileBody   string
	redirect      string
	redirectCode  int
	redirectLoop  bool
	purchases     []Purchase
	hits          map[string]int
}

// New starts a site and stops it when the test ends.
func New(t testing.TB) *Site {
	t.Helper()

	s := &Site{
		ln:   fasthttputil.NewInmemoryListener(),
		page: PageWithTag(Tag),
		hits: map[string]int{},
	}
	s.srv = &fasthttp.Server{Handler: s.handle}
	go s.srv.Serve(s.ln) //nolint:errcheck

	t.Cleanup(func() {
		s.ln.Close()
	})
	return s
}

// PageWithTag renders a profile page carrying tag the way the real site does.
func PageWithTag(tag string) string {
	return fmt.Sprintf(`<html><head><script src="/bundle.js" version="%s"></script></head><body></body></html>`, tag)
}

func (s *Site) Options() eventer.Options {
	return eventer.Options{
		BaseURL: BaseURL,
		Seller:  Seller,
		Dial: func(string) (net.Conn, error) {
			return s.ln.Dial()
		},
	}
}

func (s *Site) SetEvents(evs ...Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = evs
}

func (s *Site) SetProfileStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileStatus = code
}

func (s *Site) SetSaleStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saleStatus = code
}

// SetProfileBody replaces the JSON served at /user/{seller}/getData.
func (s *Site) SetProfileBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileBody = body
}

// SetRedirect moves the profile page, its data, and the sale endpoint under
// prefix. Requests to the old paths answer code with a Location under prefix.
func (s *Site) SetRedirect(prefix string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirect = prefix
	s.redirectCode = code
}

// SetRedirectLoop makes /user/{seller}/getData redirect to itself.
func (s *Site) SetRedirectLoop(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirectLoop = on
}

// SetPage replaces the HTML served at /user/{seller}.
func (s *Site) SetPage(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = html
}

func (s *Site) Purchases() []Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Purchase(nil), s.purchases...)
}

// Hits returns how many requests reached path.
func (s *Site) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Site) handle(ctx *fasthttp.RequestCtx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := string(ctx.Path())
	s.hits[path]++

	moved := path == "/user/"+Seller || path == "/user/"+Seller+"/getData" || path == "/sales/sellFromEventLandingPage"
	if s.redirectLoop && path == "/user/"+Seller+"/getData" {
		ctx.Response.Header.Set(fasthttp.HeaderLocation, path)
		ctx.SetStatusCode(fasthttp.StatusFound)
		return
	}
	if s.redirect != "" {
		if moved {
			ctx.Response.Header.Set(fasthttp.HeaderLocation, s.redirect+path)
			ctx.SetStatusCode(s.redirectCode)
			return
		}
		path = strings.TrimPrefix(path, s.redirect)
	}

	switch {
	case path == "/user/"+Seller+"/getData":
		if s.profileStatus != 0 {
			ctx.SetStatusCode(s.profileStatus)
			return
		}
		if s.profileBody != "" {
			ctx.SetContentType("application/json")
			ctx.SetBodyString(s.profileBody)
			return
		}
		type link struct {
			LinkName string `json:"linkName"`
		}
		out := struct {
			Events []link `json:"events"`
		}{Events: []link{}}
		for _, ev := range s.events {
			out.Events = append(out.Events, link{LinkName: ev.LinkName})
		}
		writeJSON(ctx, out)

	case path == "/user/"+Seller:
		ctx.SetContentType("text/html; charset=utf-8")
		ctx.SetBodyString(s.page)

	case strings.HasPrefix(path, "/events/explainNames/"):
		name := strings.TrimSuffix(strings.TrimPrefix(path, "/events/explainNames/"), ".js")
		ev, ok := s.byLink(name)
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			return
		}
		if ev.DetailStatus != 0 {
			ctx.SetStatusCode(ev.DetailStatus)
			return
		}
		writeJSON(ctx, eventInfo(ev))

	case strings.HasPrefix(path, "/events/") && strings.HasSuffix(path, "/ticketTypes.js"):
		id := strings.TrimSuffix(strings.TrimPrefix(path, "/events/"), "/ticketTypes.js")
		ev, ok := s.byID(id)
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			return
		}
		if ev.TicketStatus != 0 {
			ctx.SetStatusCode(ev.TicketStatus)
			return
		}
		types := []map[string]any{}
		if !ev.NoTicketTypes {
			types = append(types,
				map[string]any{"_id": ev.TicketID, "price": ev.Price},
				map[string]any{"_id": ev.TicketID + "-vip", "price": 0},
			)
		}
		writeJSON(ctx, map[string]any{"ticketTypes": types})

	case path == "/sales/sellFromEventLandingPage" && ctx.IsPost():
		s.purchases = append(s.purchases, Purchase{
			Tag:  string(ctx.Request.Header.Peek(eventer.TagHeader)),
			Body: append([]byte(nil), ctx.PostBody()...),
		})
		if s.saleStatus != 0 {
			ctx.SetStatusCode(s.saleStatus)
			return
		}
		writeJSON(ctx, map[string]any{"success": true})

	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func (s *Site) byLink(name string) (Event, bool) {
	for _, ev := range s.events {
		if ev.LinkName == name {
			return ev, true
		}
	}
	return Event{}, false
}

func (s *Site) byID(id string) (Event, bool) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

func eventInfo(ev Event) map[string]any {
	qs := ev.GuestQuestions
	if qs == nil {
		qs = []string{"q-" + ev.ID + "-1", "q-" + ev.ID + "-2"}
	}
	questions := make([]map[string]any, 0, len(qs))
	for i, q := range qs {
		questions = append(questions, map[string]any{"_id": q, "question": fmt.Sprintf("question %d", i+1), "isRequired": true})
	}
	return map[string]any{
		"event": map[string]any{
			"_id":             ev.ID,
			"name":            "event " + ev.ID,
			"eventCategories": []map[string]any{{"_id": "cat-1", "name": "party"}},
		},
		"dataForSale": map[string]any{
			"settings": map[string]any{"guestQuestions": questions},
		},
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(b)
}
