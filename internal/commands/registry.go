// Package commands provides command registration and lookup for devconsole.
// It manages the registry of command descriptors consulted during dispatch
// and help rendering.
package commands

import (
	"sort"
	"sync"

	"devconsole/internal/logger"
	"devconsole/pkg/contypes"
)

// Descriptor describes a registered console command. Implementations supply
// the unique command name and, optionally, schema metadata for help
// rendering. A nil Help return means the command ships no stored help.
type Descriptor interface {
	Name() string
	Help() *contypes.CommandInfo
}

// Registry manages command registration and lookup. Registration happens
// once at startup; lookups happen during dispatch and help rendering.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Descriptor
}

// NewRegistry creates a new registry with no commands.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Descriptor),
	}
}

// Register adds a descriptor to the registry. Registering a name that is
// already present overwrites the previous entry and logs a warning;
// registration never fails.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := d.Name()
	if _, exists := r.commands[name]; exists {
		logger.Warn("console command already registered and was overwritten", "command", name)
	}
	r.commands[name] = d
}

// Get retrieves a descriptor by name. Returns the descriptor and true if
// found, or nil and false otherwise.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, exists := r.commands[name]
	return d, exists
}

// Names returns all registered command names in alphabetical order, which
// keeps help listings deterministic.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered descriptors ordered by name.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, r.commands[name])
	}
	return descriptors
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
