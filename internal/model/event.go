package model

import json "github.com/goccy/go-json"

// SellerData is the payload of GET /user/{seller}/getData.
// Events is nil when the key is absent or null.
type SellerData struct {
	Events *[]SellerEvent `json:"events"`
}

type SellerEvent struct {
	LinkName string `json:"linkName"`
}

// EventInfo is the payload of GET /events/explainNames/{linkName}.js.
// Nested fields the claimer forwards are kept raw so they reach the site unchanged.
type EventInfo struct {
	Event       EventHeader `json:"event"`
	DataForSale DataForSale `json:"dataForSale"`
}

type EventHeader struct {
	ID              string          `json:"_id"`
	EventCategories json.RawMessage `json:"eventCategories"`
}

type DataForSale struct {
	Settings SaleSettings `json:"settings"`
}

type SaleSettings struct {
	GuestQuestions []json.RawMessage `json:"guestQuestions"`
}

type guestQuestionID struct {
	ID string `json:"_id"`
}

// GuestQuestionID returns the _id of the guest question at index i.
func (e *EventInfo) GuestQuestionID(i int) (string, bool) {
	qs := e.DataForSale.Settings.GuestQuestions
	if i < 0 || i >= len(qs) {
		return "", false
	}
	var q guestQuestionID
	if err := json.Unmarshal(qs[i], &q); err != nil || q.ID == "" {
		return "", false
	}
	return q.ID, true
}
