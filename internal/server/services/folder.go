package services

import (
	"context"
	"database/sql"

	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/dbx"
	"github.com/dkravets/folio/internal/server/models"
	"github.com/dkravets/folio/internal/server/repositories/repomanager"
	"github.com/dkravets/folio/internal/server/validation"
)

// FolderService implements folder CRUD scoped to the calling user.
type FolderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFolderService constructs a FolderService.
func NewFolderService(db *sql.DB, m repomanager.RepositoryManager) *FolderService {
	return &FolderService{db: db, repomanager: m}
}

// Create validates and inserts a folder for the owner. Color defaults when
// omitted, description is normalized so blank strings store as NULL.
func (s *FolderService) Create(ctx context.Context, ownerID int64, in FolderCreateInput) (*models.Folder, error) {
	name, err := validation.FolderName(in.Name)
	if err != nil {
		return nil, err
	}

	folder := &models.Folder{
		Name:    name,
		Color:   models.DefaultFolderColor,
		OwnerID: ownerID,
	}

	if in.Color.IsSet() {
		raw, ok := in.Color.Value()
		if !ok {
			return nil, common.NewValidationError("color", "must not be null")
		}
		color, err := validation.FolderColor(raw)
		if err != nil {
			return nil, err
		}
		folder.Color = color
	}

	if in.Description.IsSet() {
		if raw, ok := in.Description.Value(); ok {
			desc, err := validation.FolderDescription(raw)
			if err != nil {
				return nil, err
			}
			folder.Description = desc
		}
	}

	if in.IsDefault.IsSet() {
		if v, ok := in.IsDefault.Value(); ok {
			folder.IsDefault = v
		}
	}

	return s.repomanager.Folders(s.db).Create(ctx, folder)
}

// Get returns the folder if it exists and belongs to the owner.
func (s *FolderService) Get(ctx context.Context, id, ownerID int64) (*models.Folder, error) {
	return s.repomanager.Folders(s.db).GetByID(ctx, id, ownerID)
}

// List returns all folders owned by ownerID in creation order.
func (s *FolderService) List(ctx context.Context, ownerID int64) ([]*models.Folder, error) {
	return s.repomanager.Folders(s.db).ListByOwner(ctx, ownerID)
}

// Update applies a partial patch. Omitted fields keep their stored values; an
// explicit null clears the description but is rejected for the required name
// and color fields.
func (s *FolderService) Update(ctx context.Context, id, ownerID int64, in FolderUpdateInput) (*models.Folder, error) {
	var updated *models.Folder

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Folders(tx)

		folder, err := repo.GetByID(ctx, id, ownerID)
		if err != nil {
			return err
		}

		if in.Name.IsSet() {
			raw, ok := in.Name.Value()
			if !ok {
				return common.NewValidationError("name", "must not be null")
			}
			name, err := validation.FolderName(raw)
			if err != nil {
				return err
			}
			folder.Name = name
		}

		if in.Color.IsSet() {
			raw, ok := in.Color.Value()
			if !ok {
				return common.NewValidationError("color", "must not be null")
			}
			color, err := validation.FolderColor(raw)
			if err != nil {
				return err
			}
			folder.Color = color
		}

		if in.Description.IsSet() {
			if raw, ok := in.Description.Value(); ok {
				desc, err := validation.FolderDescription(raw)
				if err != nil {
					return err
				}
				folder.Description = desc
			} else {
				folder.Description = nil
			}
		}

		if in.IsDefault.IsSet() {
			if v, ok := in.IsDefault.Value(); ok {
				folder.IsDefault = v
			} else {
				return common.NewValidationError("is_default", "must not be null")
			}
		}

		updated, err = repo.Update(ctx, folder)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the folder and detaches its notes in one transaction. The
// notes survive with folder_id cleared.
func (s *FolderService) Delete(ctx context.Context, id, ownerID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Folders(tx).GetByID(ctx, id, ownerID); err != nil {
			return err
		}
		if _, err := s.repomanager.Notes(tx).DetachFolder(ctx, id, ownerID); err != nil {
			return err
		}
		ok, err := s.repomanager.Folders(tx).Delete(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrorNotFound
		}
		return nil
	})
}
