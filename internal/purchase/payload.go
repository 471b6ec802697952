package purchase

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"ticket-claimer/internal/model"
)

var (
	ErrMissingGuestQuestion = errors.New("event has no second guest question")
	ErrMissingEventID       = errors.New("event has no id")
	ErrMissingCategories    = errors.New("event has no eventCategories")
)

// GuestAnswer is the fixed reply given to the event's second guest question.
const GuestAnswer = "The will of the people"

const (
	defaultLanguage = "he_IL"
	homePrint       = "homePrint"
	ageLimit        = 24
)

// Build assembles the registration body for ticket on the given event. Apart
// from the registrant, the ticket id, the event id, categories, and guest
// questions, every value mirrors the site's own defaults.
func Build(reg model.Registrant, ticket model.TicketType, info *model.EventInfo) (*model.PurchaseRequest, error) {
	if info == nil || info.Event.ID == "" {
		return nil, ErrMissingEventID
	}
	if len(info.Event.EventCategories) == 0 {
		return nil, fmt.Errorf("%w (event %s)", ErrMissingCategories, info.Event.ID)
	}
	questionID, ok := info.GuestQuestionID(1)
	if !ok {
		return nil, fmt.Errorf("%w (event %s)", ErrMissingGuestQuestion, info.Event.ID)
	}

	eventID := info.Event.ID

	guest := model.Guest{
		IsBuyer:             true,
		IsPassportAsID:      false,
		TicketType:          ticket.ID,
		TicketsForQuestions: map[string]string{ticket.ID: ticket.ID},
		Name:                reg.Name,
		ID:                  reg.GovID,
		Phone:               reg.Phone,
		IsMale:              "true",
		Email:               reg.Email,
		DateOfBirth:         reg.DateOfBirth,
		GuestAnswers: []model.GuestAnswer{
			{Question: questionID, Answers: GuestAnswer},
		},
		Age: reg.Age,
	}

	sale := model.Sale{
		Guests:            []model.Guest{guest},
		ShippingMethod:    homePrint,
		Lang:              defaultLanguage,
		ChosenUpsaleItems: empty(),
		Settings:          settings(info),
		Device:            model.Device{FormFactor: "Desktop", Name: "Chrome"},
		History:           empty(),
		QueryData:         empty(),
		Event:             eventID,
	}

	return &model.PurchaseRequest{
		Sales:         []model.Sale{sale},
		PaymentMethod: "credit",
		Event:         eventID,
	}, nil
}

func settings(info *model.EventInfo) model.PurchaseSettings {
	return model.PurchaseSettings{
		EventType: 1,
		PurchaseConfirm: model.PurchaseConfirm{
			ConfirmEachPurchase: true,
			ConfirmMethod:       "Questions",
		},
		AgeLimit:             ageLimit,
		AllowMultipleTickets: 1,
		NamePerTicket:        true,
		GuestInfoFields: model.GuestInfoFields{
			Name:   shown(),
			SID:    model.GuestField{IsSupportInternationalID: ptr(true), IsToShow: true, IsRequired: true, ShowInNamePerTicket: true},
			Phone:  model.GuestField{IsSupportInternationalPhone: ptr(true), IsToShow: true, IsRequired: true, ShowInNamePerTicket: true},
			Email:  shown(),
			Age:    model.GuestField{IsAgeByDate: ptr(true), IsToShow: true, IsRequired: true, AgeLimit: ptr(ageLimit), ShowInNamePerTicket: true},
			Gender: shown(),
		},
		EventCategories:               info.Event.EventCategories,
		ExtraQuestions:                empty(),
		ExtraQuestionsTranslations:    empty(),
		UpsaleItems:                   empty(),
		GuestQuestions:                info.DataForSale.Settings.GuestQuestions,
		NonMandatoryExtraQuestions:    empty(),
		ShowExtraQuestionsToBuyerOnly: true,
		AskForGender:                  true,
		TicketDelivery:                model.TicketDelivery{HomePrint: true},
		IsSupportMultiLanguage:        true,
		HideEndTime:                   true,
		SupportedLanguages: map[string]bool{
			"he_IL": true,
			"en_EN": true,
			"ru_RU": true,
			"fr_FR": true,
		},
		DefaultLanguage: defaultLanguage,
		Status:          1,
		ShippingMethod:  model.ShippingMethod{Value: homePrint},
	}
}

func shown() model.GuestField {
	return model.GuestField{IsToShow: true, IsRequired: true, ShowInNamePerTicket: true}
}

func empty() []json.RawMessage {
	return []json.RawMessage{}
}

func ptr[T any](v T) *T {
	return &v
}
