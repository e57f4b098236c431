package domain

// User is the authenticated back-office user returned by the auth endpoints.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// AuthResult is the login/register response: a bearer token plus the user it
// belongs to.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
