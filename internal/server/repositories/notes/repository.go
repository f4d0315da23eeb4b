package notes

import (
	"context"

	"github.com/dkravets/folio/internal/server/models"
)

// Repository exposes owner-scoped note persistence. Every read, update and
// delete filters by both the note id and the owner id; a mismatch on owner is
// indistinguishable from absence.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id, ownerID int64) (*models.Note, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error)
	ListInFolder(ctx context.Context, folderID, ownerID int64) ([]*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
	DetachFolder(ctx context.Context, folderID, ownerID int64) (int64, error)
}
