package secret

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MultiResolver dispatches references to provider-specific resolvers
// based on the URI host.
type MultiResolver struct {
	providers map[string]Resolver
}

// NewMultiResolver constructs a MultiResolver seeded with the
// provided map.
func NewMultiResolver(providers map[string]Resolver) *MultiResolver {
	out := make(map[string]Resolver, len(providers))
	for k, v := range providers {
		out[strings.ToLower(k)] = v
	}
	return &MultiResolver{providers: out}
}

// Resolve locates the provider-specific resolver and delegates the
// call. Literal values (anything that is not a secret:// reference)
// are returned unchanged, so configuration may carry either.
func (m *MultiResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", errors.New("secret reference is empty")
	}

	if !IsReference(ref) {
		return ref, nil
	}

	refInfo, err := Parse(ref)
	if err != nil {
		return "", err
	}

	resolver, ok := m.providers[refInfo.Provider]
	if !ok || resolver == nil {
		return "", fmt.Errorf("secret provider %q not configured", refInfo.Provider)
	}

	return resolver.Resolve(ctx, ref)
}
