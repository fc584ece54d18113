package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tinaglini/RV-Project/pkg/jwtutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Request().Header.Get(echo.HeaderXRequestID))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(echo.HeaderXRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "given")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "given", rec.Header().Get(echo.HeaderXRequestID))
}

func newGuarded(enabled bool, util *jwtutil.JWTUtil) *echo.Echo {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, AdminGuard(enabled, util))
	return e
}

func TestAdminGuard(t *testing.T) {
	util := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "secret", ExpirationHours: 1})
	admin, err := util.GenerateAdminToken("ops")
	require.NoError(t, err)
	clerk, err := util.GenerateToken("clerk", "user")
	require.NoError(t, err)

	cases := []struct {
		name    string
		enabled bool
		header  string
		want    int
	}{
		{"disabled passes through", false, "", http.StatusOK},
		{"missing header", true, "", http.StatusUnauthorized},
		{"wrong scheme", true, "Basic abc", http.StatusUnauthorized},
		{"garbage token", true, "Bearer abc", http.StatusUnauthorized},
		{"non admin role", true, "Bearer " + clerk, http.StatusForbidden},
		{"admin", true, "Bearer " + admin, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			newGuarded(tc.enabled, util).ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
