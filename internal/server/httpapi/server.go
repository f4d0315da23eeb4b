// Package httpapi exposes the folio services over HTTP/JSON. It owns the
// route table, request decoding, auth middleware and the mapping from
// service errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dkravets/folio/internal/logging"
	"github.com/dkravets/folio/internal/server/models"
	"github.com/dkravets/folio/internal/server/services"
)

// UserOperations is the slice of UserService the HTTP layer depends on.
type UserOperations interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, in services.UserUpdateInput) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, in services.PasswordChangeInput) error
	Delete(ctx context.Context, userID int64) error
}

// FolderOperations is the slice of FolderService the HTTP layer depends on.
type FolderOperations interface {
	Create(ctx context.Context, ownerID int64, in services.FolderCreateInput) (*models.Folder, error)
	Get(ctx context.Context, id, ownerID int64) (*models.Folder, error)
	List(ctx context.Context, ownerID int64) ([]*models.Folder, error)
	Update(ctx context.Context, id, ownerID int64, in services.FolderUpdateInput) (*models.Folder, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// NoteOperations is the slice of NoteService the HTTP layer depends on.
type NoteOperations interface {
	Create(ctx context.Context, ownerID int64, in services.NoteCreateInput) (*models.Note, error)
	Get(ctx context.Context, id, ownerID int64) (*models.Note, error)
	List(ctx context.Context, ownerID int64) ([]*models.Note, error)
	ListInFolder(ctx context.Context, folderID, ownerID int64) ([]*models.Note, error)
	Update(ctx context.Context, id, ownerID int64, in services.NoteUpdateInput) (*models.Note, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type Server struct {
	address string
	logger  logging.Logger
	users   UserOperations
	folders FolderOperations
	notes   NoteOperations
	metrics *metrics
	echo    *echo.Echo
}

func NewServer(address string, l logging.Logger, us UserOperations, fs FolderOperations, ns NoteOperations) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		folders: fs,
		notes:   ns,
		metrics: newMetrics(),
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Use(s.metrics.middleware)

	e.GET("/healthz", s.health)
	e.GET("/metrics", s.metrics.handler())

	api := e.Group("/api")

	api.POST("/users", s.register)
	api.POST("/users/login", s.login)

	me := api.Group("/users/me", s.requireAuth)
	me.GET("", s.me)
	me.PUT("", s.updateMe)
	me.PUT("/password", s.changePassword)
	me.DELETE("", s.deleteMe)

	folders := api.Group("/folders", s.requireAuth)
	folders.POST("", s.createFolder)
	folders.GET("", s.listFolders)
	folders.GET("/:id", s.getFolder)
	folders.PUT("/:id", s.updateFolder)
	folders.DELETE("/:id", s.deleteFolder)

	notes := api.Group("/notes", s.requireAuth)
	notes.POST("", s.createNote)
	notes.GET("", s.listNotes)
	notes.GET("/folder/:folderID", s.listNotesInFolder)
	notes.GET("/:id", s.getNote)
	notes.PUT("/:id", s.updateNote)
	notes.DELETE("/:id", s.deleteNote)

	return e
}

// Router exposes the configured handler, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.echo
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
