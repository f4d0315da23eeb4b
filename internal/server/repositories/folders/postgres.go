// Package folders provides the PostgreSQL-backed repository for folders.
package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {

	query :=
		`INSERT INTO folders (name, description, color, is_default, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		folder.Name, folder.Description, folder.Color, folder.IsDefault, folder.OwnerID).
		Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, ownerID int64) (*models.Folder, error) {

	query :=
		`SELECT id, name, description, color, is_default, owner_id, created_at, updated_at
		 FROM folders
		 WHERE id = $1 AND owner_id = $2
		 `

	folder := &models.Folder{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&folder.ID, &folder.Name, &folder.Description, &folder.Color,
		&folder.IsDefault, &folder.OwnerID, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Folder, error) {

	query :=
		`SELECT id, name, description, color, is_default, owner_id, created_at, updated_at
		 FROM folders
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Folder{}
	for rows.Next() {
		var item models.Folder
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Color,
			&item.IsDefault, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
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

func (r *PostgresRepository) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {

	query :=
		`UPDATE folders SET name = $1, description = $2, color = $3, is_default = $4, updated_at = now()
		 WHERE id = $5 AND owner_id = $6
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		folder.Name, folder.Description, folder.Color, folder.IsDefault,
		folder.ID, folder.OwnerID).Scan(&folder.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {

	query := `DELETE FROM folders WHERE id = $1 AND owner_id = $2`

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
