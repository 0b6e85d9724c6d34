package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/policy"
	"github.com/stretchr/testify/require"
)

var (
	routerOnce sync.Once
	testAPI    *echo.Echo
)

// The prometheus middleware registers its collectors globally, so
// the router is built once for the whole package.
func testRouter() *echo.Echo {
	routerOnce.Do(func() {
		manager := auth.NewManager([]byte("test-secret"), time.Hour)
		testAPI = router(manager, policy.Default())
	})
	return testAPI
}

// The GraphQL endpoint serves job and invoice data, so it must be
// gated exactly like the /internal routes.
func TestGraphQLRequiresAuth(t *testing.T) {
	e := testRouter()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gql?query={jobs{job_number}}", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotContains(t, rec.Body.String(), "job_number")

	req := httptest.NewRequest(http.MethodPost, "/gql", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthStaysOpen(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
