package handler

import (
	"net/http"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) GetOwnProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	profile, err := h.readerSvc.GetProfile(c.Request().Context(), p, p.ReaderID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateOwnProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var profile model.Profile
	if err = bindValid(c, &profile); err != nil {
		return err
	}
	profile.ReaderID = p.ReaderID
	updated, err := h.readerSvc.UpdateProfile(c.Request().Context(), p, profile)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	readerID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.readerSvc.GetProfile(c.Request().Context(), p, readerID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	readerID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var profile model.Profile
	if err = bindValid(c, &profile); err != nil {
		return err
	}
	profile.ReaderID = readerID
	updated, err := h.readerSvc.UpdateProfile(c.Request().Context(), p, profile)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListReaders(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	readers, err := h.readerSvc.ListReaders(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	if readers == nil {
		readers = []model.ReaderWithProfile{}
	}
	return c.JSON(http.StatusOK, readers)
}
