package services

import "github.com/dkravets/folio/internal/optional"

// Input types decoded straight from request bodies. Partial-update inputs use
// optional.Optional so an omitted field is distinguishable from an explicit
// null: omitted fields leave stored state untouched, explicit nulls clear
// nullable fields.

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserUpdateInput struct {
	Username optional.Optional[string] `json:"username"`
	Email    optional.Optional[string] `json:"email"`
}

type PasswordChangeInput struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type FolderCreateInput struct {
	Name        string                    `json:"name"`
	Description optional.Optional[string] `json:"description"`
	Color       optional.Optional[string] `json:"color"`
	IsDefault   optional.Optional[bool]   `json:"is_default"`
}

type FolderUpdateInput struct {
	Name        optional.Optional[string] `json:"name"`
	Description optional.Optional[string] `json:"description"`
	Color       optional.Optional[string] `json:"color"`
	IsDefault   optional.Optional[bool]   `json:"is_default"`
}

type NoteCreateInput struct {
	Title    string                    `json:"title"`
	Content  optional.Optional[string] `json:"content"`
	FolderID optional.Optional[int64]  `json:"folder_id"`
}

type NoteUpdateInput struct {
	Title    optional.Optional[string] `json:"title"`
	Content  optional.Optional[string] `json:"content"`
	FolderID optional.Optional[int64]  `json:"folder_id"`
}
