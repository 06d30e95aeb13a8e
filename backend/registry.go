package backend

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a target sized for the given dimensions.
type Factory func(width, height int) (Target, error)

// registry holds registered targets.
var (
	registryMu sync.RWMutex
	targets    = make(map[string]Factory)
	// Preference order for Default (first registered wins).
	targetPriority = []string{"png", "canvas", "svg"}
)

// Register registers a target factory with the given name.
// This is typically called from init() functions in target packages.
// If a target with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	targets[name] = factory
}

// Unregister removes a target from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(targets, name)
}

// Available returns the registered target names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a target with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := targets[name]
	return ok
}

// New creates a target by name.
func New(name string, width, height int) (Target, error) {
	registryMu.RLock()
	factory, ok := targets[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return factory(width, height)
}

// Default creates the most preferred registered target.
// Returns ErrBackendNotAvailable if nothing is registered.
func Default(width, height int) (Target, error) {
	registryMu.RLock()
	var factory Factory
	for _, name := range targetPriority {
		if f, ok := targets[name]; ok {
			factory = f
			break
		}
	}
	if factory == nil {
		// Fallback: first available in name order
		for _, name := range sortedKeys(targets) {
			factory = targets[name]
			break
		}
	}
	registryMu.RUnlock()

	if factory == nil {
		return nil, ErrBackendNotAvailable
	}
	return factory(width, height)
}

func sortedKeys(m map[string]Factory) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
