package folders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCreate_AppliesDefaults(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(3, now, now)
	mock.ExpectQuery(`INSERT\s+INTO\s+folders\s*\(name,\s*description,\s*color,\s*is_default,\s*owner_id\)`).
		WithArgs("Work", nil, models.DefaultFolderColor, false, int64(1)).
		WillReturnRows(rows)

	f := &models.Folder{Name: "Work", Color: models.DefaultFolderColor, OwnerID: 1}
	got, err := repo.Create(context.Background(), f)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 || got.Color != "#6B73FF" {
		t.Fatalf("unexpected folder: %+v", got)
	}
}

func TestGetByID_ScopedByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `SELECT\s+.*\s+FROM\s+folders\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`

	mock.ExpectQuery(q).WithArgs(int64(3), int64(2)).WillReturnError(sql.ErrNoRows)

	// folder 3 belongs to owner 1; owner 2 sees not-found
	_, err := repo.GetByID(context.Background(), 3, 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "color", "is_default", "owner_id", "created_at", "updated_at"})
	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+folders\s+WHERE\s+owner_id\s*=\s*\$1`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListByOwner_Rows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	desc := "work stuff"
	rows := sqlmock.NewRows([]string{"id", "name", "description", "color", "is_default", "owner_id", "created_at", "updated_at"}).
		AddRow(1, "Work", desc, "#6B73FF", false, 1, now, now).
		AddRow(2, "Home", nil, "#FF6B6B", true, 1, now, now)
	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+folders\s+WHERE\s+owner_id\s*=\s*\$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(got))
	}
	if got[0].Description == nil || *got[0].Description != desc {
		t.Fatalf("unexpected description: %+v", got[0])
	}
	if got[1].Description != nil {
		t.Fatalf("expected nil description, got %+v", got[1])
	}
}

func TestUpdate_NotFoundWhenForeign(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+folders\s+SET\s+name`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(),
		&models.Folder{ID: 3, Name: "Work", Color: "#6B73FF", OwnerID: 2})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_ScopedByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+folders\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(3), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 3, 2)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if ok {
		t.Fatalf("cross-owner delete must report false")
	}
}
