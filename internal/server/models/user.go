// Package models holds the persisted domain types of the chat server.
package models

import "time"

// User is a registered account. ID is assigned by the store and never
// changes; Email is unique across users and compared exactly as stored.
// Only a one-way hash of the password is kept.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
