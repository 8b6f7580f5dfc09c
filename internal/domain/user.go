package domain

// User is the authenticated identity behind a request. Credential and
// session management live outside this service; the user here carries only
// what the JWT claims provide.
type User struct {
	ID    string
	Email string
	Name  string
}
