package http

import (
	_ "embed"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/guard"
	"github.com/conexpo/registra/internal/gateway/session"
)

//go:embed index.html
var appShell []byte

// GuardObserver counts guard verdicts. Nil-safe via the handler check.
type GuardObserver interface {
	GuardDecision(action string)
}

// PagesHandler runs every page navigation through the route guard and, when
// allowed, serves the application shell. The shell is role-agnostic; the
// frontend reads /api/session to decide what to render.
type PagesHandler struct {
	Cookies  session.Options
	Observer GuardObserver
}

func (h *PagesHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	cookies := session.Bind(w, r, h.Cookies)

	decision := guard.Evaluate(cookies.HasToken(), cookies.Session(), r.URL.Path)
	h.observe(decision)

	if decision.Action == guard.Redirect {
		http.Redirect(w, r, decision.Location, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(appShell)
}

func (h *PagesHandler) observe(decision guard.Decision) {
	if h.Observer == nil {
		return
	}
	switch decision.Action {
	case guard.Allow:
		h.Observer.GuardDecision("allow")
	default:
		h.Observer.GuardDecision("redirect")
	}
}
