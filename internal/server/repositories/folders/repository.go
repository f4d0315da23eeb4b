package folders

import (
	"context"

	"github.com/dkravets/folio/internal/server/models"
)

// Repository exposes owner-scoped folder persistence. Every read, update and
// delete filters by both the folder id and the owner id; a mismatch on owner
// is indistinguishable from absence.
type Repository interface {
	Create(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	GetByID(ctx context.Context, id, ownerID int64) (*models.Folder, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Folder, error)
	Update(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}
