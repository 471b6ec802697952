package model

import json "github.com/goccy/go-json"

// PurchaseRequest is the body of POST /sales/sellFromEventLandingPage.
type PurchaseRequest struct {
	Sales         []Sale `json:"sales"`
	PaymentMethod string `json:"paymentMethod"`
	Event         string `json:"event"`
}

type Sale struct {
	Guests                    []Guest           `json:"guests"`
	ShippingInfo              *json.RawMessage  `json:"shippingInfo"`
	ShippingMethod            string            `json:"shippingMethod"`
	Lang                      string            `json:"lang"`
	Discount                  int               `json:"discount"`
	MarkAcceptSMSTicket       bool              `json:"markAcceptSMSTicket"`
	IsAllowPromotionalContent bool              `json:"isAllowPromotionalContent"`
	ChosenUpsaleItems         []json.RawMessage `json:"chosenUpsaleItems"`
	Settings                  PurchaseSettings  `json:"settings"`
	IsSendSMS                 bool              `json:"isSendSMS"`
	Referrer                  string            `json:"referrer"`
	Device                    Device            `json:"device"`
	History                   []json.RawMessage `json:"history"`
	QueryData                 []json.RawMessage `json:"queryData"`
	Event                     string            `json:"event"`
}

type Guest struct {
	IsBuyer             bool              `json:"isBuyer"`
	IsPassportAsID      bool              `json:"isPassportAsId"`
	TicketType          string            `json:"ticketType"`
	TicketsForQuestions map[string]string `json:"ticketsForQuestions"`
	Name                string            `json:"name"`
	ID                  string            `json:"id"`
	IsOpen              bool              `json:"isOpen"`
	Phone               string            `json:"phone"`
	EmailSuggestion     *string           `json:"emailSuggestion"`
	IsMale              string            `json:"isMale"`
	Email               string            `json:"email"`
	PickerOpen          bool              `json:"pickerOpen"`
	DateOfBirth         string            `json:"dateOfBirth"`
	SaleRound           *string           `json:"saleRound"`
	GuestAnswers        []GuestAnswer     `json:"guestAnswers"`
	Age                 int               `json:"age"`
}

type GuestAnswer struct {
	Question string `json:"question"`
	Answers  string `json:"answers"`
}

type PurchaseSettings struct {
	EventType                     int                 `json:"eventType"`
	PurchaseConfirm               PurchaseConfirm     `json:"purchaseConfirm"`
	AgeLimit                      int                 `json:"ageLimit"`
	AllowMultipleTickets          int                 `json:"allowMultipleTickets"`
	MultipleCreditCards           bool                `json:"multipleCreditCards"`
	NamePerTicket                 bool                `json:"namePerTicket"`
	GuestInfoFields               GuestInfoFields     `json:"guestInfoFields"`
	EventCategories               json.RawMessage     `json:"eventCategories"`
	ExtraQuestions                []json.RawMessage   `json:"extraQuestions"`
	ExtraQuestionsTranslations    []json.RawMessage   `json:"extraQuestionsTranslations"`
	UpsaleItems                   []json.RawMessage   `json:"upsaleItems"`
	GuestQuestions                []json.RawMessage   `json:"guestQuestions"`
	NonMandatoryExtraQuestions    []json.RawMessage   `json:"nonMandatoryExtraQuestions"`
	ShowExtraQuestionsToBuyerOnly bool                `json:"showExtraQuestionsToBuyerOnly"`
	AskForGender                  bool                `json:"askForGender"`
	IsTicketSectionTop            bool                `json:"isTicketSectionTop"`
	IsSMSOptional                 bool                `json:"isSMSOptional"`
	TicketDelivery                TicketDelivery      `json:"ticketDelivery"`
	IsSupportMultiLanguage        bool                `json:"isSupportMultiLanguage"`
	PromotionalApproval           PromotionalApproval `json:"promotionalApproval"`
	HideStartTime                 bool                `json:"hideStartTime"`
	HideEndTime                   bool                `json:"hideEndTime"`
	HideOpenDoors                 bool                `json:"hideOpenDoors"`
	UsePrivateTerminal            bool                `json:"usePrivateTerminal"`
	SupportedLanguages            map[string]bool     `json:"supportedLanguages"`
	DefaultLanguage               string              `json:"defaultLanguage"`
	IsUseCancellationDeadline     bool                `json:"isUseCancellationDeadline"`
	IsSendSMSForPendingSales      bool                `json:"isSendSMSForPendingSales"`
	UseAltDefaultTerminal         bool                `json:"useAltDefaultTerminal"`
	IsLiveStreamEvent             bool                `json:"isLiveStreamEvent"`
	Status                        int                 `json:"status"`
	IsSendSMSForCancelledSales    bool                `json:"isSendSMSForCancelledSales"`
	ShippingMethod                ShippingMethod      `json:"shippingMethod"`
	HasGiftCard                   bool                `json:"hasGiftCard"`
}

type PurchaseConfirm struct {
	ConfirmEachPurchase bool   `json:"confirmEachPurchase"`
	ConfirmMethod       string `json:"confirmMethod"`
}

type GuestInfoFields struct {
	Name   GuestField `json:"name"`
	SID    GuestField `json:"sid"`
	Phone  GuestField `json:"phone"`
	Email  GuestField `json:"email"`
	Age    GuestField `json:"age"`
	Gender GuestField `json:"gender"`
}

// GuestField controls one input of the guest form. Optional flags are only
// sent for the fields that carry them.
type GuestField struct {
	IsSupportInternationalID    *bool `json:"isSupportInternationalID,omitempty"`
	IsSupportInternationalPhone *bool `json:"isSupportInternationalPhone,omitempty"`
	IsAgeByDate                 *bool `json:"isAgeByDate,omitempty"`
	IsToShow                    bool  `json:"isToShow"`
	IsRequired                  bool  `json:"isRequired"`
	AgeLimit                    *int  `json:"ageLimit,omitempty"`
	ShowInNamePerTicket         bool  `json:"showInNamePerTicket"`
}

type TicketDelivery struct {
	HomePrint bool `json:"homePrint"`
}

type PromotionalApproval struct {
	IsRequestingApproval bool `json:"isRequestingApproval"`
}

type ShippingMethod struct {
	Value string `json:"value"`
}

type Device struct {
	FormFactor string `json:"formFactor"`
	Name       string `json:"name"`
}
