package models

// User identifies an account on the platform.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Credentials is the request body for login and registration.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthData is the payload returned by login and registration: a bearer token
// for subsequent requests.
type AuthData struct {
	Token string `json:"token"`
}
