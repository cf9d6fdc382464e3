package models

import "time"

// Account is a registered user. PasswordHash never leaves the users
// package; API payloads expose only Username and DisplayName.
type Account struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}
