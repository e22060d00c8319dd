package upstream

import (
	"context"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/domain"
)

// Feature calls are plain CRUD pass-throughs: the remote API owns all
// business rules, the gateway only gives the wire shapes types.

func (a *Caller) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return getJSON[[]domain.Event](ctx, a, "/events")
}

func (a *Caller) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	return getJSON[domain.Event](ctx, a, "/events/"+escape(id))
}

func (a *Caller) CreateEvent(ctx context.Context, ev domain.Event) (domain.Event, error) {
	return sendJSON[domain.Event](ctx, a, http.MethodPost, "/events", ev)
}

func (a *Caller) UpdateEvent(ctx context.Context, id string, ev domain.Event) (domain.Event, error) {
	return sendJSON[domain.Event](ctx, a, http.MethodPut, "/events/"+escape(id), ev)
}

func (a *Caller) DeleteEvent(ctx context.Context, id string) error {
	return a.delete(ctx, "/events/"+escape(id))
}

func (a *Caller) ListUsers(ctx context.Context) ([]domain.User, error) {
	return getJSON[[]domain.User](ctx, a, "/users")
}

func (a *Caller) GetUser(ctx context.Context, id string) (domain.User, error) {
	return getJSON[domain.User](ctx, a, "/users/"+escape(id))
}

func (a *Caller) UpdateUser(ctx context.Context, id string, u domain.User) (domain.User, error) {
	return sendJSON[domain.User](ctx, a, http.MethodPut, "/users/"+escape(id), u)
}

func (a *Caller) DeleteUser(ctx context.Context, id string) error {
	return a.delete(ctx, "/users/"+escape(id))
}

func (a *Caller) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return getJSON[[]domain.Region](ctx, a, "/regions")
}

func (a *Caller) CreateRegion(ctx context.Context, rg domain.Region) (domain.Region, error) {
	return sendJSON[domain.Region](ctx, a, http.MethodPost, "/regions", rg)
}

func (a *Caller) UpdateRegion(ctx context.Context, id string, rg domain.Region) (domain.Region, error) {
	return sendJSON[domain.Region](ctx, a, http.MethodPut, "/regions/"+escape(id), rg)
}

func (a *Caller) DeleteRegion(ctx context.Context, id string) error {
	return a.delete(ctx, "/regions/"+escape(id))
}

func (a *Caller) ListInscriptions(ctx context.Context) ([]domain.Inscription, error) {
	return getJSON[[]domain.Inscription](ctx, a, "/inscriptions")
}

func (a *Caller) GetInscription(ctx context.Context, id string) (domain.Inscription, error) {
	return getJSON[domain.Inscription](ctx, a, "/inscriptions/"+escape(id))
}

func (a *Caller) CreateInscription(ctx context.Context, ins domain.Inscription) (domain.Inscription, error) {
	return sendJSON[domain.Inscription](ctx, a, http.MethodPost, "/inscriptions", ins)
}

func (a *Caller) UpdateInscription(ctx context.Context, id string, ins domain.Inscription) (domain.Inscription, error) {
	return sendJSON[domain.Inscription](ctx, a, http.MethodPut, "/inscriptions/"+escape(id), ins)
}

func (a *Caller) DeleteInscription(ctx context.Context, id string) error {
	return a.delete(ctx, "/inscriptions/"+escape(id))
}

func (a *Caller) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return getJSON[[]domain.Payment](ctx, a, "/payments")
}

func (a *Caller) GetPayment(ctx context.Context, id string) (domain.Payment, error) {
	return getJSON[domain.Payment](ctx, a, "/payments/"+escape(id))
}

func (a *Caller) ListTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	return getJSON[[]domain.TicketType](ctx, a, "/type-inscription")
}

func (a *Caller) CreateTicketType(ctx context.Context, tt domain.TicketType) (domain.TicketType, error) {
	return sendJSON[domain.TicketType](ctx, a, http.MethodPost, "/type-inscription", tt)
}

func (a *Caller) UpdateTicketType(ctx context.Context, id string, tt domain.TicketType) (domain.TicketType, error) {
	return sendJSON[domain.TicketType](ctx, a, http.MethodPut, "/type-inscription/"+escape(id), tt)
}

func (a *Caller) DeleteTicketType(ctx context.Context, id string) error {
	return a.delete(ctx, "/type-inscription/"+escape(id))
}

// PaymentReport fetches the remote payment-analysis report for one event.
func (a *Caller) PaymentReport(ctx context.Context, eventID string) (domain.PaymentReport, error) {
	return getJSON[domain.PaymentReport](ctx, a, "/relatorio/"+escape(eventID))
}
