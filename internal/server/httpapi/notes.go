package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkravets/folio/internal/server/services"
)

func (s *Server) createNote(c echo.Context) error {
	var in services.NoteCreateInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	note, err := s.notes.Create(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

func (s *Server) listNotes(c echo.Context) error {
	notes, err := s.notes.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

func (s *Server) listNotesInFolder(c echo.Context) error {
	folderID, err := pathID(c, "folderID")
	if err != nil {
		return err
	}

	notes, err := s.notes.ListInFolder(c.Request().Context(), folderID, currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

func (s *Server) getNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	note, err := s.notes.Get(c.Request().Context(), id, currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (s *Server) updateNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in services.NoteUpdateInput
	if err := bindJSON(c, &in); err != nil {
		return err
	}

	note, err := s.notes.Update(c.Request().Context(), id, currentUser(c).ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (s *Server) deleteNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.notes.Delete(c.Request().Context(), id, currentUser(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
