package http

// Response shapes for the gateway's own endpoints. Feature responses are the
// remote API's payloads re-encoded from the typed domain structs.

// OKResponse is the `{ok: bool}` shape for logout/refresh.
type OKResponse struct {
	OK bool `json:"ok"`
}

// SessionResponse is the `{role}` shape for GET /api/session. Role is null
// when no valid session is present.
type SessionResponse struct {
	Role *string `json:"role"`
}

// MessageResponse is the normalized error shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Upstream string `json:"upstream"`
}

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
