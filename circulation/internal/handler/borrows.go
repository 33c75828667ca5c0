package handler

import (
	"net/http"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Borrow(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	bookID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	borrow, err := h.circulationSvc.BorrowSingle(c.Request().Context(), p, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, borrow)
}

func (h *Handler) Return(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	borrowID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	borrow, err := h.circulationSvc.ReturnSingle(c.Request().Context(), p, borrowID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) PayFine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	borrowID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.circulationSvc.PayFine(c.Request().Context(), p, borrowID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ActiveBorrows(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	borrows, err := h.circulationSvc.ActiveBorrows(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	if borrows == nil {
		borrows = []model.Borrow{}
	}
	return c.JSON(http.StatusOK, borrows)
}

func (h *Handler) BorrowHistory(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	borrows, err := h.circulationSvc.BorrowHistory(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	if borrows == nil {
		borrows = []model.Borrow{}
	}
	return c.JSON(http.StatusOK, borrows)
}

func (h *Handler) Overdue(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	overdue, err := h.circulationSvc.OverdueBorrows(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	if overdue == nil {
		overdue = []model.OverdueBorrow{}
	}
	return c.JSON(http.StatusOK, overdue)
}

func (h *Handler) Remind(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	report, err := h.circulationSvc.RemindNow(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) GetBag(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	bag, err := h.circulationSvc.GetBag(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, bag)
}

func (h *Handler) AddToBag(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	bookID, err := parseID(c, "bookId")
	if err != nil {
		return err
	}
	added, err := h.circulationSvc.AddToBag(c.Request().Context(), p, bookID)
	if err != nil {
		return h.httpError(err)
	}
	code := http.StatusOK
	if added {
		code = http.StatusCreated
	}
	return c.JSON(code, map[string]bool{"added": added})
}

func (h *Handler) RemoveFromBag(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	bookID, err := parseID(c, "bookId")
	if err != nil {
		return err
	}
	removed, err := h.circulationSvc.RemoveFromBag(c.Request().Context(), p, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"removed": removed})
}

func (h *Handler) Checkout(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	res, err := h.circulationSvc.CheckoutBag(c.Request().Context(), p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}
