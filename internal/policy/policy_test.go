package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDefaultAdminRules(t *testing.T) {
	p := Default()

	// admin management is manager-only, except the listing
	require.False(t, p.Allow("DELETE", "/internal/admins/4f6c", models.AccessStaff))
	require.True(t, p.Allow("DELETE", "/internal/admins/4f6c", models.AccessManager))
	require.True(t, p.Allow("GET", "/internal/admins", models.AccessStaff))
	require.False(t, p.Allow("GET", "/internal/admins", models.AccessClient))
}

func TestDefaultFinancialRules(t *testing.T) {
	p := Default()

	require.False(t, p.Allow("POST", "/internal/part", models.AccessClient))
	require.True(t, p.Allow("POST", "/internal/part", models.AccessStaff))

	require.False(t, p.Allow("PUT", "/internal/job/4f6c/po", models.AccessClient))
	require.True(t, p.Allow("PUT", "/internal/job/4f6c/po", models.AccessStaff))

	require.False(t, p.Allow("POST", "/internal/job/4f6c/invoice", models.AccessClient))
	require.True(t, p.Allow("POST", "/internal/job/4f6c/invoice", models.AccessManager))

	require.False(t, p.Allow("GET", "/internal/invoices", models.AccessClient))
	require.True(t, p.Allow("GET", "/internal/invoices", models.AccessStaff))
}

func TestDefaultFallback(t *testing.T) {
	p := Default()

	// reads in the admin area only need an approved login
	require.True(t, p.Allow("GET", "/internal/job", models.AccessClient))
	require.True(t, p.Allow("GET", "/internal/job/4f6c", models.AccessClient))

	// unapproved accounts are shut out entirely
	require.False(t, p.Allow("GET", "/internal/job", models.AccessUnapproved))

	// paths outside the admin area match no rule
	require.False(t, p.Allow("GET", "/external/whatever", models.AccessManager))
}

func TestDefaultGraphQLRules(t *testing.T) {
	p := Default()

	require.True(t, p.Allow("POST", "/gql", models.AccessClient))
	require.True(t, p.Allow("GET", "/gql", models.AccessStaff))
	require.False(t, p.Allow("GET", "/gql", models.AccessUnapproved))
}

func TestMethodMatching(t *testing.T) {
	p := &Policy{Rules: []Rule{
		{Path: "/internal/thing", Method: "GET", MinAccess: models.AccessClient},
	}}

	require.True(t, p.Allow("GET", "/internal/thing", models.AccessClient))
	require.True(t, p.Allow("get", "/internal/thing", models.AccessClient))
	require.False(t, p.Allow("POST", "/internal/thing", models.AccessManager))
}

func TestFirstMatchWins(t *testing.T) {
	p := &Policy{Rules: []Rule{
		{Path: "/internal/thing", Method: "*", MinAccess: models.AccessManager},
		{Path: "/internal/**", Method: "*", MinAccess: models.AccessClient},
	}}

	require.False(t, p.Allow("GET", "/internal/thing", models.AccessStaff))
	require.True(t, p.Allow("GET", "/internal/other", models.AccessClient))
}

func TestLoadPrependsFileRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - path: /internal/job
    method: GET
    min_access: 2
`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	want := Rule{Path: "/internal/job", Method: "GET", MinAccess: models.AccessStaff}
	if diff := cmp.Diff(want, p.Rules[0]); diff != "" {
		t.Fatalf("unexpected first rule (-want +got):\n%s", diff)
	}

	// the file rule overrides the default fallback for that route
	require.False(t, p.Allow("GET", "/internal/job", models.AccessClient))
	// defaults still apply elsewhere
	require.True(t, p.Allow("GET", "/internal/tasks", models.AccessClient))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
