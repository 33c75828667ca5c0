package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) ListBooks(c echo.Context) error {
	var (
		err error
		f   = model.BookFilter{
			Query: c.QueryParam("q"),
			Genre: model.Genre(c.QueryParam("genre")),
		}
	)
	if f.Genre != "" && !f.Genre.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("genre is invalid"))
	}
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if f.Page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if f.Size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	if availableParam := c.QueryParam("available"); availableParam != "" {
		available, err := strconv.ParseBool(availableParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("available is invalid"))
		}
		f.Available = &available
	}

	books, err := h.catalogSvc.ListBooks(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var in model.BookInput
	if err = bindValid(c, &in); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), p, in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in model.BookInput
	if err = bindValid(c, &in); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), p, id, in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err = h.catalogSvc.DeleteBook(c.Request().Context(), p, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) BookHistory(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	history, err := h.catalogSvc.BookHistory(c.Request().Context(), p, id)
	if err != nil {
		return h.httpError(err)
	}
	if history == nil {
		history = []model.BorrowHistory{}
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) Report(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var top int
	if topParam := c.QueryParam("top"); topParam != "" {
		if top, err = strconv.Atoi(topParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("top is invalid"))
		}
	}
	rep, err := h.catalogSvc.Report(c.Request().Context(), p, top)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rep)
}
