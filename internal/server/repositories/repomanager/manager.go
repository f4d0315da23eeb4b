package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkravets/folio/internal/dbx"
	"github.com/dkravets/folio/internal/server/repositories/folders"
	"github.com/dkravets/folio/internal/server/repositories/notes"
	"github.com/dkravets/folio/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, which
// lets services run several repositories inside one transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Folders(db dbx.DBTX) folders.Repository
	Notes(db dbx.DBTX) notes.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
