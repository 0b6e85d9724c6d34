package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/internal/policy"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func testManager() *auth.Manager {
	return auth.NewManager([]byte("test-secret"), time.Hour)
}

func issue(t *testing.T, manager *auth.Manager, access models.AccessLevel) string {
	t.Helper()
	token, err := manager.Issue(&models.Admin{
		ID:          uuid.New(),
		Email:       "pat@example.com",
		AccessLevel: access,
	})
	require.NoError(t, err)
	return token
}

func invoke(t *testing.T, manager *auth.Manager, method, path, header string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(manager, policy.Default())(next)(c)
	return c, err
}

func TestMissingHeaderIsUnauthorized(t *testing.T) {
	_, err := invoke(t, testManager(), http.MethodGet, "/internal/job", "")

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestMalformedHeaderIsUnauthorized(t *testing.T) {
	_, err := invoke(t, testManager(), http.MethodGet, "/internal/job", "Basic abc123")

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestInvalidTokenIsForbidden(t *testing.T) {
	_, err := invoke(t, testManager(), http.MethodGet, "/internal/job", "Bearer garbage")

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestInsufficientAccessIsForbidden(t *testing.T) {
	manager := testManager()
	token := issue(t, manager, models.AccessClient)

	_, err := invoke(t, manager, http.MethodPost, "/internal/part", "Bearer "+token)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestSufficientAccessPasses(t *testing.T) {
	manager := testManager()
	token := issue(t, manager, models.AccessStaff)

	c, err := invoke(t, manager, http.MethodPost, "/internal/part", "Bearer "+token)
	require.NoError(t, err)

	claims := Claims(c)
	require.NotNil(t, claims)
	require.Equal(t, models.AccessStaff, claims.Access)
}

func TestUnapprovedShutOut(t *testing.T) {
	manager := testManager()
	token := issue(t, manager, models.AccessUnapproved)

	_, err := invoke(t, manager, http.MethodGet, "/internal/job", "Bearer "+token)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestClaimsNilWithoutAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.Nil(t, Claims(c))
}
