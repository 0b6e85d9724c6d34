package auth

import "sync"

var (
	mu             sync.RWMutex
	defaultManager *Manager
)

// Configure installs the process-wide token manager. Called once at
// startup before the API begins serving.
func Configure(m *Manager) {
	mu.Lock()
	defer mu.Unlock()
	defaultManager = m
}

// Default returns the configured token manager, or nil before
// Configure has run.
func Default() *Manager {
	mu.RLock()
	defer mu.RUnlock()
	return defaultManager
}
