package secret

// Config defines which providers should be available in a
// MultiResolver. The env provider is always enabled.
type Config struct {
	Vault *VaultConfig
}

// NewConfiguredResolver builds a MultiResolver using the supplied
// provider configuration.
func NewConfiguredResolver(cfg Config) (*MultiResolver, error) {
	providers := map[string]Resolver{
		providerEnv: NewEnvResolver(),
	}

	if cfg.Vault != nil {
		resolver, err := NewVaultResolver(*cfg.Vault)
		if err != nil {
			return nil, err
		}
		providers[providerVault] = resolver
	}

	return NewMultiResolver(providers), nil
}
