package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	reader, err := h.readerSvc.Register(c.Request().Context(), req, auth.RoleMember)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, reader)
}

func (h *Handler) Token(c echo.Context) error {
	var creds model.Credentials
	if err := bindValid(c, &creds); err != nil {
		return err
	}
	reader, err := h.readerSvc.Authenticate(c.Request().Context(), creds)
	if err != nil {
		return h.httpError(err)
	}
	token, exp, err := auth.IssueToken(h.auth, auth.Principal{
		ReaderID: reader.ID,
		Username: reader.Username,
		Role:     reader.Role,
	}, time.Now())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Token{AccessToken: token, ExpiresAt: exp})
}
