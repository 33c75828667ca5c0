package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthentication(t *testing.T) {
	cfg := auth.Config{JWTSecret: "secret", TokenTTL: time.Hour}
	member := auth.Principal{ReaderID: 3, Username: "reader", Role: auth.RoleMember}
	token, _, err := auth.IssueToken(cfg, member, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		staff  bool
		code   int
	}{
		{name: "no header", header: "", code: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer abc", code: http.StatusUnauthorized},
		{name: "ok", header: "Bearer " + token, code: http.StatusOK},
		{name: "member on staff route", header: "Bearer " + token, staff: true, code: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var mws []echo.MiddlewareFunc
			mws = append(mws, JWTAuthentication(cfg))
			if tt.staff {
				mws = append(mws, RequireStaff)
			}
			e.GET("/", func(c echo.Context) error {
				p, err := auth.GetPrincipal(c.Request().Context())
				require.NoError(t, err)
				require.Equal(t, member, p)
				return c.NoContent(http.StatusOK)
			}, mws...)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(AuthorizationHeader, tt.header)
			}
			e.ServeHTTP(w, r)
			require.Equal(t, tt.code, w.Code)
		})
	}
}
