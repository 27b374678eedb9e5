package model

// Scope identifies the caller an operation runs on behalf of.
type Scope struct {
	UserID   string
	Username string
}
