package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkravets/folio/internal/server/services"
)

func (s *Server) createFolder(c echo.Context) error {
	var in services.FolderCreateInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	folder, err := s.folders.Create(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, folder)
}

func (s *Server) listFolders(c echo.Context) error {
	folders, err := s.folders.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, folders)
}

func (s *Server) getFolder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	folder, err := s.folders.Get(c.Request().Context(), id, currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, folder)
}

func (s *Server) updateFolder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in services.FolderUpdateInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	folder, err := s.folders.Update(c.Request().Context(), id, currentUser(c).ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, folder)
}

func (s *Server) deleteFolder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.folders.Delete(c.Request().Context(), id, currentUser(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
