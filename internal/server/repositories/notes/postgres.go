// Package notes provides the PostgreSQL-backed repository for notes.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/dbx"
	"github.com/dkravets/folio/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// mapFolderFK converts a foreign-key violation on folder_id into a
// ValidationError. The service checks folder ownership before writing, so
// this only fires when the folder vanished mid-transaction.
func mapFolderFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return common.NewValidationError("folder_id", "folder does not exist")
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (title, content, owner_id, folder_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.OwnerID, note.FolderID).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return nil, mapFolderFK(err)
	}

	return note, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, ownerID int64) (*models.Note, error) {

	query :=
		`SELECT id, title, content, owner_id, folder_id, created_at, updated_at
		 FROM notes
		 WHERE id = $1 AND owner_id = $2
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.FolderID,
		&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error) {
	query :=
		`SELECT id, title, content, owner_id, folder_id, created_at, updated_at
		 FROM notes
		 WHERE owner_id = $1
		 ORDER BY id
		 `
	return r.list(ctx, query, ownerID)
}

func (r *PostgresRepository) ListInFolder(ctx context.Context, folderID, ownerID int64) ([]*models.Note, error) {
	query :=
		`SELECT id, title, content, owner_id, folder_id, created_at, updated_at
		 FROM notes
		 WHERE folder_id = $1 AND owner_id = $2
		 ORDER BY id
		 `
	return r.list(ctx, query, folderID, ownerID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Note{}
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Content, &item.OwnerID, &item.FolderID,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`UPDATE notes SET title = $1, content = $2, folder_id = $3, updated_at = now()
		 WHERE id = $4 AND owner_id = $5
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.FolderID, note.ID, note.OwnerID).
		Scan(&note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, mapFolderFK(err)
	}

	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {

	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// DetachFolder clears the folder reference on every note of ownerID that sits
// in folderID. Used when a folder is deleted: notes are detached, not
// cascaded.
func (r *PostgresRepository) DetachFolder(ctx context.Context, folderID, ownerID int64) (int64, error) {

	query :=
		`UPDATE notes SET folder_id = NULL, updated_at = now()
		 WHERE folder_id = $1 AND owner_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, folderID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
