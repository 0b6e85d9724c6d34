// Package secret resolves secret:// references for sensitive
// configuration values such as the JWT signing secret and Google
// credentials.
package secret

import "context"

// Resolver resolves a secret reference into a concrete value.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}
