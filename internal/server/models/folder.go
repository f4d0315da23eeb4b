package models

import "time"

// DefaultFolderColor is applied when a folder is created without a color.
const DefaultFolderColor = "#6B73FF"

// Folder groups notes for a single owner. Description is nullable and
// normalized to absent when empty.
type Folder struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	IsDefault   bool      `json:"is_default"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
