package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/dbx"
	"github.com/dkravets/folio/internal/server/models"
	"github.com/dkravets/folio/internal/server/repositories/repomanager"
	"github.com/dkravets/folio/internal/server/validation"
)

// NoteService implements note CRUD scoped to the calling user. Folder
// references are verified against the same owner before a note is attached.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// checkFolder confirms the target folder exists and belongs to ownerID. A
// missing or foreign folder is reported as a validation failure on folder_id,
// not as a not-found, since the note request itself is what is malformed.
func (s *NoteService) checkFolder(ctx context.Context, tx dbx.DBTX, folderID, ownerID int64) error {
	_, err := s.repomanager.Folders(tx).GetByID(ctx, folderID, ownerID)
	if errors.Is(err, common.ErrorNotFound) {
		return common.NewValidationError("folder_id", "folder does not exist")
	}
	return err
}

// Create validates and inserts a note. When a folder id is supplied, the
// ownership check and the insert share a transaction so the folder cannot be
// deleted in between.
func (s *NoteService) Create(ctx context.Context, ownerID int64, in NoteCreateInput) (*models.Note, error) {
	title, err := validation.NoteTitle(in.Title)
	if err != nil {
		return nil, err
	}

	note := &models.Note{Title: title, OwnerID: ownerID}

	if in.Content.IsSet() {
		if raw, ok := in.Content.Value(); ok {
			note.Content = validation.NoteContent(raw)
		}
	}

	if in.FolderID.IsSet() {
		if id, ok := in.FolderID.Value(); ok {
			if err := validation.NoteFolderID(id); err != nil {
				return nil, err
			}
			note.FolderID = &id
		}
	}

	if note.FolderID == nil {
		return s.repomanager.Notes(s.db).Create(ctx, note)
	}

	var created *models.Note
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkFolder(ctx, tx, *note.FolderID, ownerID); err != nil {
			return err
		}
		created, err = s.repomanager.Notes(tx).Create(ctx, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the note if it exists and belongs to the owner.
func (s *NoteService) Get(ctx context.Context, id, ownerID int64) (*models.Note, error) {
	return s.repomanager.Notes(s.db).GetByID(ctx, id, ownerID)
}

// List returns all notes owned by ownerID, newest first.
func (s *NoteService) List(ctx context.Context, ownerID int64) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).ListByOwner(ctx, ownerID)
}

// ListInFolder returns the owner's notes attached to the given folder. The
// folder itself must exist and belong to the owner.
func (s *NoteService) ListInFolder(ctx context.Context, folderID, ownerID int64) ([]*models.Note, error) {
	if _, err := s.repomanager.Folders(s.db).GetByID(ctx, folderID, ownerID); err != nil {
		return nil, err
	}
	return s.repomanager.Notes(s.db).ListInFolder(ctx, folderID, ownerID)
}

// Update applies a partial patch. An explicit null clears content or detaches
// the note from its folder; a null title is rejected. A changed folder id is
// ownership-checked in the same transaction as the write.
func (s *NoteService) Update(ctx context.Context, id, ownerID int64, in NoteUpdateInput) (*models.Note, error) {
	var updated *models.Note

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)

		note, err := repo.GetByID(ctx, id, ownerID)
		if err != nil {
			return err
		}

		if in.Title.IsSet() {
			raw, ok := in.Title.Value()
			if !ok {
				return common.NewValidationError("title", "must not be null")
			}
			title, err := validation.NoteTitle(raw)
			if err != nil {
				return err
			}
			note.Title = title
		}

		if in.Content.IsSet() {
			if raw, ok := in.Content.Value(); ok {
				note.Content = validation.NoteContent(raw)
			} else {
				note.Content = nil
			}
		}

		if in.FolderID.IsSet() {
			if folderID, ok := in.FolderID.Value(); ok {
				if err := validation.NoteFolderID(folderID); err != nil {
					return err
				}
				if err := s.checkFolder(ctx, tx, folderID, ownerID); err != nil {
					return err
				}
				note.FolderID = &folderID
			} else {
				note.FolderID = nil
			}
		}

		updated, err = repo.Update(ctx, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the note.
func (s *NoteService) Delete(ctx context.Context, id, ownerID int64) error {
	ok, err := s.repomanager.Notes(s.db).Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
