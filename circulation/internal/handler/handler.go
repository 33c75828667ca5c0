package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	_ "github.com/Astemirdum/library-circulation/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Handler struct {
	circulationSvc CirculationService
	catalogSvc     CatalogService
	readerSvc      ReaderService
	auth           auth.Config
	apiRPS         rate.Limit
	log            *zap.Logger
}

// Services groups the dependencies a Handler serves; *service.Service satisfies all of them.
type Services struct {
	Circulation CirculationService
	Catalog     CatalogService
	Reader      ReaderService
}

func New(svc Services, authCfg auth.Config, apiRPS float64, log *zap.Logger) *Handler {
	if apiRPS <= 0 {
		apiRPS = 100
	}
	return &Handler{
		circulationSvc: svc.Circulation,
		catalogSvc:     svc.Catalog,
		readerSvc:      svc.Reader,
		auth:           authCfg,
		apiRPS:         rate.Limit(apiRPS),
		log:            log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const baseRPS = 10
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return ulid.Make().String() },
		}),
		md.NewRateLimiter(h.apiRPS),
	)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/token", h.Token)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)

	authed := api.Group("", md.JWTAuthentication(h.auth))
	authed.POST("/books/:id/borrow", h.Borrow)
	authed.GET("/borrows", h.ActiveBorrows)
	authed.GET("/borrows/history", h.BorrowHistory)
	authed.POST("/borrows/:id/return", h.Return)
	authed.POST("/borrows/:id/pay", h.PayFine)

	authed.GET("/bag", h.GetBag)
	authed.POST("/bag/checkout", h.Checkout)
	authed.POST("/bag/:bookId", h.AddToBag)
	authed.DELETE("/bag/:bookId", h.RemoveFromBag)

	authed.GET("/profile", h.GetOwnProfile)
	authed.PUT("/profile", h.UpdateOwnProfile)

	staff := authed.Group("", md.RequireStaff)
	staff.POST("/books", h.CreateBook)
	staff.PUT("/books/:id", h.UpdateBook)
	staff.DELETE("/books/:id", h.DeleteBook)
	staff.GET("/books/:id/history", h.BookHistory)
	staff.GET("/overdue", h.Overdue)
	staff.POST("/reminders", h.Remind)
	staff.GET("/reports", h.Report)
	staff.GET("/readers", h.ListReaders)
	staff.GET("/readers/:id/profile", h.GetProfile)
	staff.PUT("/readers/:id/profile", h.UpdateProfile)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func principal(c echo.Context) (auth.Principal, error) {
	p, err := auth.GetPrincipal(c.Request().Context())
	if err != nil {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return p, nil
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func bindValid(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps domain errors to their HTTP status.
func (h *Handler) httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrEmptyOrAllUnavailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrUsernameTaken):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	default:
		h.log.Error("internal", zap.Error(err))
	}
	return echo.NewHTTPError(code, err.Error())
}
