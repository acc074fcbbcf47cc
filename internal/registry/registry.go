// Package registry provides a global registry for terminal host factories.
// Hosts register themselves in init() functions, allowing the CLI to
// select a backend by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/platform"
)

// HostInfo contains metadata about a registered host.
type HostInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a host.
type Factory func() platform.Host

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a host factory to the registry.
// Typically called from a host package's init() function.
// Panics if a host with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: host %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered hosts, sorted by name.
func List() []HostInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HostInfo, 0, len(factories))
	for name := range factories {
		result = append(result, HostInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a host by name.
// Returns an error if the name is not registered.
func Create(name string) (platform.Host, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a host with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
