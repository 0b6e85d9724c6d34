// Package policy holds the authorization rules for the admin area.
// Rules are declarative (route pattern, method, minimum access
// level) and evaluated once per request in middleware, so access
// checks cannot drift between handlers.
package policy

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/models"
	"gopkg.in/yaml.v3"
)

// Rule grants access to matching requests at or above MinAccess.
// Method "*" matches every HTTP method. Path patterns use
// doublestar globs, e.g. /internal/job/**.
type Rule struct {
	Path      string             `yaml:"path"`
	Method    string             `yaml:"method"`
	MinAccess models.AccessLevel `yaml:"min_access"`
}

// Policy is an ordered rule set. The first matching rule wins.
type Policy struct {
	Rules []Rule `yaml:"rules"`
}

// Default returns the compiled-in rule table.
func Default() *Policy {
	return &Policy{
		Rules: []Rule{
			// admin management is manager-only, except the listing.
			// The GET rule must come first: a/** also matches a, so
			// the manager rule would otherwise shadow it.
			{Path: "/internal/admins", Method: "GET", MinAccess: models.AccessStaff},
			{Path: "/internal/admins/**", Method: "*", MinAccess: models.AccessManager},

			// financial writes require staff level, enforced here
			// rather than in the UI
			{Path: "/internal/part", Method: "POST", MinAccess: models.AccessStaff},
			{Path: "/internal/part/**", Method: "PUT", MinAccess: models.AccessStaff},
			{Path: "/internal/part/**", Method: "DELETE", MinAccess: models.AccessStaff},
			{Path: "/internal/job/*/po", Method: "PUT", MinAccess: models.AccessStaff},
			{Path: "/internal/job/*/invoice", Method: "POST", MinAccess: models.AccessStaff},
			{Path: "/internal/job/*/recalculate", Method: "POST", MinAccess: models.AccessStaff},
			{Path: "/internal/invoices/**", Method: "*", MinAccess: models.AccessStaff},
			{Path: "/internal/job/*/export/**", Method: "*", MinAccess: models.AccessStaff},
			{Path: "/internal/calendar/**", Method: "*", MinAccess: models.AccessStaff},
			{Path: "/internal/calendar", Method: "*", MinAccess: models.AccessStaff},

			// everything else in the admin area needs an approved
			// login, as do GraphQL reads
			{Path: "/internal/**", Method: "*", MinAccess: models.AccessClient},
			{Path: "/gql", Method: "*", MinAccess: models.AccessClient},
		},
	}
}

// Load reads a rule table from a YAML file. Loaded rules take
// precedence over the defaults, which remain as the fallback tail.
func Load(path string) (*Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read policy file")
	}

	loaded := &Policy{}
	if err := yaml.Unmarshal(raw, loaded); err != nil {
		return nil, errors.Wrap(err, "failed to parse policy file")
	}

	loaded.Rules = append(loaded.Rules, Default().Rules...)
	return loaded, nil
}

// Allow reports whether a request with the given access level may
// proceed. Requests matching no rule are denied.
func (p *Policy) Allow(method, path string, access models.AccessLevel) bool {
	for _, rule := range p.Rules {
		if rule.Method != "*" && !strings.EqualFold(rule.Method, method) {
			continue
		}

		match, err := doublestar.Match(rule.Path, path)
		if err != nil || !match {
			continue
		}

		return access >= rule.MinAccess
	}

	return false
}
