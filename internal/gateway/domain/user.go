package domain

// User is an account as the remote registration API reports it. The gateway
// passes these through untouched apart from JSON re-encoding.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	RegionID string `json:"regionId,omitempty"`
	Active   bool   `json:"active"`
}
