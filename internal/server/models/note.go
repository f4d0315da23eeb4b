package models

import "time"

// Note belongs to exactly one owner and optionally to one of the owner's
// folders. Content is nullable free text.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	FolderID  *int64    `json:"folder_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
