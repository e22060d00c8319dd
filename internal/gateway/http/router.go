package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/internal/gateway/metrics"
	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/internal/gateway/store"
	"github.com/conexpo/registra/internal/gateway/upstream"
	"github.com/conexpo/registra/pkg/httpx"
	"github.com/conexpo/registra/pkg/slogx"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/conexpo/registra/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cookies      session.Options
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	upstream    *upstream.Client
	AuthService *service.AuthService
	Metrics     *metrics.Metrics
}

func NewRouter(
	cookies session.Options,
	buildVersion string,
	st store.Store,
	up *upstream.Client,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		cookies:      cookies,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		upstream:     up,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEvents()
	r.registerUsers()
	r.registerRegions()
	r.registerInscriptions()
	r.registerPayments()
	r.registerTicketTypes()
	r.registerReports()
	r.registerAudit()
	r.registerSystem()
	r.registerPages()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ConExpo Registra Gateway API
//	@version		0.1.0
//	@description	Backend-for-frontend gateway for the ConExpo registration platform. Owns the
//	@description	cookie session, silently refreshes expired bearer tokens against the remote
//	@description	registration API and guards page paths by role.
//
//	@contact.name	ConExpo Platform Team
//	@contact.url	https://github.com/conexpo/registra
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Auth: r.AuthService, Cookies: r.cookies}

	// POST /api/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /api/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/refresh - strict rate limit by IP (token minting)
	r.Mux.Handle("POST /api/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/logout - moderate rate limit
	r.Mux.Handle("POST /api/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /api/session - the frontend polls this on navigation, keep it lenient
	r.Mux.Handle("GET /api/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) featureBase() featureHandler {
	return featureHandler{Upstream: r.upstream, Auth: r.AuthService, Cookies: r.cookies}
}

// secureRead wires the common chain for authenticated read endpoints.
func (r *Router) secureRead(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		RequireSession(r.cookies),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

// secureWrite wires the common chain for authenticated mutations.
func (r *Router) secureWrite(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		RequireSession(r.cookies),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerEvents() {
	h := &EventsHandler{featureHandler: r.featureBase()}

	r.Mux.Handle("GET /api/events", r.secureRead(h.HandleList))
	r.Mux.Handle("GET /api/events/{id}", r.secureRead(h.HandleGet))
	r.Mux.Handle("POST /api/events", r.secureWrite(h.HandleCreate))
	r.Mux.Handle("PUT /api/events/{id}", r.secureWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/events/{id}", r.secureWrite(h.HandleDelete))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{featureHandler: r.featureBase()}

	r.Mux.Handle("GET /api/users", r.secureRead(h.HandleList))
	r.Mux.Handle("GET /api/users/{id}", r.secureRead(h.HandleGet))
	r.Mux.Handle("PUT /api/users/{id}", r.secureWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/users/{id}", r.secureWrite(h.HandleDelete))
}

func (r *Router) registerRegions() {
	h := &RegionsHandler{featureHandler: r.featureBase()}

	r.Mux.Handle("GET /api/regions", r.secureRead(h.HandleList))
	r.Mux.Handle("POST /api/regions", r.secureWrite(h.HandleCreate))
	r.Mux.Handle("PUT /api/regions/{id}", r.secureWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/regions/{id}", r.secureWrite(h.HandleDelete))
}

func (r *Router) registerInscriptions() {
	h := &InscriptionsHandler{featureHandler: r.featureBase()}

	r.Mux.Handle("GET /api/inscriptions", r.secureRead(h.HandleList))
	r.Mux.Handle("GET /api/inscriptions/{id}", r.secureRead(h.HandleGet))
	r.Mux.Handle("POST /api/inscriptions", r.secureWrite(h.HandleCreate))
	r.Mux.Handle("PUT /api/inscriptions/{id}", r.secureWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/inscriptions/{id}", r.secureWrite(h.HandleDelete))
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{featureHandler: r.featureBase()}

	r.Mux.Handle("GET /api/payments", r.secureRead(h.HandleList))
	r.Mux.Handle("GET /api/payments/{id}", r.secureRead(h.HandleGet))
}

func (r *Router) registerTicketTypes() {
	h := &TicketTypesHandler{featureHandler: r.featureBase()}

	r.Mux.Handle("GET /api/ticket-types", r.secureRead(h.HandleList))
	r.Mux.Handle("POST /api/ticket-types", r.secureWrite(h.HandleCreate))
	r.Mux.Handle("PUT /api/ticket-types/{id}", r.secureWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/ticket-types/{id}", r.secureWrite(h.HandleDelete))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{featureHandler: r.featureBase()}

	// Reports aggregate payment data; managers and up only
	r.Mux.Handle("GET /api/reports/payments/{eventId}",
		httpx.Chain(http.HandlerFunc(h.HandlePaymentReport),
			RequireSession(r.cookies),
			RequireRole(domain.RoleSuper, domain.RoleAdmin, domain.RoleManager),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAudit() {
	h := &AuditHandler{Auth: r.AuthService}

	// The audit trail exposes who signed in when; super users only
	r.Mux.Handle("GET /api/audit",
		httpx.Chain(http.HandlerFunc(h.HandleRecent),
			RequireSession(r.cookies),
			RequireRole(domain.RoleSuper),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.upstream),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}

func (r *Router) registerPages() {
	h := &PagesHandler{Cookies: r.cookies, Observer: guardObserver(r.Metrics)}

	// Everything not matched above is a page navigation. The guard decides
	// whether to serve the shell or bounce the browser.
	r.Mux.Handle("GET /",
		httpx.Chain(http.HandlerFunc(h.HandlePage),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

// guardObserver keeps the nil check out of PagesHandler: a typed nil
// *metrics.Metrics must become an untyped nil interface.
func guardObserver(m *metrics.Metrics) GuardObserver {
	if m == nil {
		return nil
	}
	return m
}
