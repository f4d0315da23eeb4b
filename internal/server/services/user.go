// Package services contains the server-side business logic. This file
// implements UserService: registration, authentication, token issuing and
// resolution, profile and password updates, and account deletion.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dkravets/folio/internal/common"
	"github.com/dkravets/folio/internal/dbx"
	"github.com/dkravets/folio/internal/server/auth"
	"github.com/dkravets/folio/internal/server/models"
	"github.com/dkravets/folio/internal/server/repositories/repomanager"
	"github.com/dkravets/folio/internal/server/validation"
)

// UserService provides account and authentication operations. It carries its
// hashing and token primitives as injected instances rather than package
// state.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenService
}

// NewUserService constructs a UserService from its collaborators.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher, tokens: tokens}
}

// Register validates and creates a new account. Username and email are
// pre-checked for duplicates inside the insert transaction; the pre-checks
// exist for friendlier conflict messages, the unique index on username is the
// authoritative guard when two registrations race.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username, err := validation.Username(in.Username)
	if err != nil {
		return nil, err
	}
	email, err := validation.Email(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := validation.PasswordCreate(in.Password)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash, IsActive: true}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByEmail(ctx, email); err == nil {
			return &common.ConflictError{Field: "email"}
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		if _, err := repo.GetByUsername(ctx, username); err == nil {
			return &common.ConflictError{Field: "username"}
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		created, err := repo.Create(ctx, user)
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks up the user by username and verifies the password.
// Every failure (unknown user, wrong password) yields the same
// ErrorUnauthorized so callers cannot learn which part failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

// Login authenticates and issues a bearer token whose subject is the user's
// email.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ResolveToken verifies a bearer token and resolves its subject to a user
// record. A subject that no longer exists (deleted after issuance) is treated
// identically to an invalid token.
//
// The subject is the account email, which storage does not force to be
// unique. Two accounts registered with the same email resolve to whichever
// row the lookup returns first.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// GetByID returns a user by id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// UpdateProfile applies a partial patch to username and/or email. Omitted
// fields stay untouched; explicit nulls are rejected since both columns are
// required. Duplicate checks mirror registration.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in UserUpdateInput) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if in.Username.IsSet() {
			raw, ok := in.Username.Value()
			if !ok {
				return common.NewValidationError("username", "must not be null")
			}
			username, err := validation.Username(raw)
			if err != nil {
				return err
			}
			if username != user.Username {
				if _, err := repo.GetByUsername(ctx, username); err == nil {
					return &common.ConflictError{Field: "username"}
				} else if !errors.Is(err, common.ErrorNotFound) {
					return err
				}
				user.Username = username
			}
		}

		if in.Email.IsSet() {
			raw, ok := in.Email.Value()
			if !ok {
				return common.NewValidationError("email", "must not be null")
			}
			email, err := validation.Email(raw)
			if err != nil {
				return err
			}
			if email != user.Email {
				if _, err := repo.GetByEmail(ctx, email); err == nil {
					return &common.ConflictError{Field: "email"}
				} else if !errors.Is(err, common.ErrorNotFound) {
					return err
				}
				user.Email = email
			}
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePassword verifies the current password and stores the hash of the new
// one. A wrong current password is an authorization failure, not a
// validation one.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, in PasswordChangeInput) error {
	newPassword, err := validation.PasswordChange(in.OldPassword, in.NewPassword, in.ConfirmPassword)
	if err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(in.OldPassword, user.PasswordHash) {
		return common.ErrorUnauthorized
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return repo.UpdatePassword(ctx, userID, hash)
}

// Delete destroys the account. Owned folders and notes go with it via the
// storage-level cascade.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	ok, err := s.repomanager.Users(s.db).Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
