// Package models holds the persisted entity types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// User is an account that exclusively owns folders and notes. The password
// hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
