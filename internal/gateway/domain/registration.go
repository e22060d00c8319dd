package domain

import "time"

// The registration entities are owned by the remote API; the gateway only
// gives them typed shapes so feature handlers and tests stay honest about
// what crosses the wire. No business rules live here.

type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	UF   string `json:"uf,omitempty"`
}

type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RegionID  string    `json:"regionId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Published bool      `json:"published"`
}

// TicketType is an inscription category with its price in cents.
type TicketType struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

// Inscription is a single or group registration for an event.
type Inscription struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	UserID       string    `json:"userId"`
	TicketTypeID string    `json:"ticketTypeId"`
	Group        bool      `json:"group"`
	Participants int       `json:"participants"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Payment struct {
	ID            string    `json:"id"`
	InscriptionID string    `json:"inscriptionId"`
	AmountCents   int64     `json:"amountCents"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paidAt"`
	Verified      bool      `json:"verified"`
}

// PaymentReport is the remote API's payment-analysis aggregate, passed
// through verbatim.
type PaymentReport struct {
	EventID          string `json:"eventId"`
	TotalCents       int64  `json:"totalCents"`
	VerifiedCents    int64  `json:"verifiedCents"`
	PendingCents     int64  `json:"pendingCents"`
	Inscriptions     int    `json:"inscriptions"`
	PaidInscriptions int    `json:"paidInscriptions"`
}
