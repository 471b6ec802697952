package model

// TicketTypes is the payload of GET /events/{eventId}/ticketTypes.js.
type TicketTypes struct {
	TicketTypes []TicketType `json:"ticketTypes"`
}

type TicketType struct {
	ID    string  `json:"_id"`
	Price float64 `json:"price"`
}

// IsFree reports whether the ticket type costs nothing.
func (t TicketType) IsFree() bool {
	return t.Price == 0
}
