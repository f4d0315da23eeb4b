package notes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

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

func TestCreate_WithFolder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	folderID := int64(7)
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now)
	mock.ExpectQuery(`INSERT\s+INTO\s+notes\s*\(title,\s*content,\s*owner_id,\s*folder_id\)`).
		WithArgs("Hi", nil, int64(1), folderID).
		WillReturnRows(rows)

	n := &models.Note{Title: "Hi", OwnerID: 1, FolderID: &folderID}
	got, err := repo.Create(context.Background(), n)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 11 || got.FolderID == nil || *got.FolderID != 7 {
		t.Fatalf("unexpected note: %+v", got)
	}
}

func TestCreate_FolderFKViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+notes`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	folderID := int64(99)
	_, err := repo.Create(context.Background(),
		&models.Note{Title: "Hi", OwnerID: 1, FolderID: &folderID})

	var ve *common.ValidationError
	if !errors.As(err, &ve) || ve.Field != "folder_id" {
		t.Fatalf("want ValidationError on folder_id, got %v", err)
	}
}

func TestGetByID_CrossOwnerIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(11), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 11, 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListInFolder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	content := "body"
	folderID := int64(7)
	rows := sqlmock.NewRows([]string{"id", "title", "content", "owner_id", "folder_id", "created_at", "updated_at"}).
		AddRow(11, "Hi", content, 1, folderID, now, now)
	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+notes\s+WHERE\s+folder_id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(7), int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListInFolder(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("ListInFolder error: %v", err)
	}
	if len(got) != 1 || got[0].Content == nil || *got[0].Content != "body" {
		t.Fatalf("unexpected notes: %+v", got)
	}
}

func TestUpdate_ClearsFolder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"updated_at"}).AddRow(now)
	mock.ExpectQuery(`UPDATE\s+notes\s+SET\s+title`).
		WithArgs("Hi", nil, nil, int64(11), int64(1)).
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(),
		&models.Note{ID: 11, Title: "Hi", OwnerID: 1})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.FolderID != nil {
		t.Fatalf("expected cleared folder reference, got %+v", got)
	}
}

func TestDetachFolder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+notes\s+SET\s+folder_id\s*=\s*NULL`).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DetachFolder(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("DetachFolder error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 detached notes, got %d", n)
	}
}

func TestDelete_ScopedByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(11), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 11, 2)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if ok {
		t.Fatalf("cross-owner delete must report false")
	}
}
