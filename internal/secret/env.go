package secret

import (
	"context"
	"fmt"
	"os"
	"strings"
)

const providerEnv = "env"

// EnvResolver resolves secret://env/... references against process
// environment variables. It is the default provider: deployments
// without Vault inject the JWT signing secret and the Google
// credentials this way.
type EnvResolver struct{}

// NewEnvResolver returns an EnvResolver instance.
func NewEnvResolver() *EnvResolver {
	return &EnvResolver{}
}

// Resolve implements the Resolver interface. The variable name is
// the reference path with slashes collapsed to underscores, e.g.
// secret://env/JWT_SECRET; a ?name= query parameter overrides it.
func (r *EnvResolver) Resolve(_ context.Context, ref string) (string, error) {
	reference, err := Parse(ref)
	if err != nil {
		return "", err
	}
	if reference.Provider != providerEnv {
		return "", fmt.Errorf("env resolver cannot handle provider %q", reference.Provider)
	}

	name := variableName(reference)
	if name == "" {
		return "", fmt.Errorf("env secret %q requires a name", ref)
	}

	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("environment variable %s not set", name)
	}

	return value, nil
}

func variableName(reference *Reference) string {
	if name := strings.TrimSpace(reference.Query.Get("name")); name != "" {
		return name
	}

	return strings.TrimSpace(strings.Join(reference.Segments, "_"))
}
