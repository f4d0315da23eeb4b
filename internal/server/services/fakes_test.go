package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/dbx"
	"github.com/dkravets/folio/internal/server/models"
	foldersrepo "github.com/dkravets/folio/internal/server/repositories/folders"
	notesrepo "github.com/dkravets/folio/internal/server/repositories/notes"
	usersrepo "github.com/dkravets/folio/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// expectTx sets up the Begin/Commit pair WithTx produces around fake repos.
func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byIDOut *models.User
	byIDErr error

	byUsernameOut *models.User
	byUsernameErr error

	byEmailOut *models.User
	byEmailErr error

	updateErr         error
	updatePasswordErr error

	deleteOK  bool
	deleteErr error

	createdWith     *models.User
	updatedWith     *models.User
	passwordStored  string
	usernameQueried string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createdWith = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	out := *u
	out.ID = 1
	return &out, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.usernameQueried = username
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	f.updatedWith = u
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	out := *u
	return &out, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	f.passwordStored = passwordHash
	return f.updatePasswordErr
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteOK, f.deleteErr
}

type fakeFoldersRepo struct {
	createErr error

	getOut *models.Folder
	getErr error

	listOut []*models.Folder
	listErr error

	updateErr error

	deleteOK  bool
	deleteErr error

	createdWith *models.Folder
	updatedWith *models.Folder
}

func (f *fakeFoldersRepo) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	f.createdWith = folder
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *folder
	out.ID = 1
	return &out, nil
}

func (f *fakeFoldersRepo) GetByID(ctx context.Context, id, ownerID int64) (*models.Folder, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.getOut, nil
}

func (f *fakeFoldersRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Folder, error) {
	return f.listOut, f.listErr
}

func (f *fakeFoldersRepo) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	f.updatedWith = folder
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	out := *folder
	return &out, nil
}

func (f *fakeFoldersRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	return f.deleteOK, f.deleteErr
}

type fakeNotesRepo struct {
	createErr error

	getOut *models.Note
	getErr error

	listOut []*models.Note
	listErr error

	updateErr error

	deleteOK  bool
	deleteErr error

	detachN   int64
	detachErr error

	createdWith    *models.Note
	updatedWith    *models.Note
	detachedFolder int64
}

func (f *fakeNotesRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	f.createdWith = note
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *note
	out.ID = 1
	return &out, nil
}

func (f *fakeNotesRepo) GetByID(ctx context.Context, id, ownerID int64) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) ListInFolder(ctx context.Context, folderID, ownerID int64) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	f.updatedWith = note
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	out := *note
	return &out, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	return f.deleteOK, f.deleteErr
}

func (f *fakeNotesRepo) DetachFolder(ctx context.Context, folderID, ownerID int64) (int64, error) {
	f.detachedFolder = folderID
	return f.detachN, f.detachErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	f *fakeFoldersRepo
	n *fakeNotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Folders(db dbx.DBTX) foldersrepo.Repository   { return m.f }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository       { return m.n }
