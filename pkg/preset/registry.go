package preset

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/style"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults returns the built-in presets.
func Defaults() *Set {
	set, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("preset: built-in defaults are invalid: %v", err))
	}
	return set
}

// Registry is a Set guarded for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	set *Set
}

// NewRegistry creates a registry seeded with sets, applied in order.
func NewRegistry(sets ...*Set) *Registry {
	r := &Registry{set: NewSet()}
	for _, s := range sets {
		r.Register(s)
	}
	return r
}

// Register merges set into the registry. Entries with the same name are overwritten.
func (r *Registry) Register(set *Set) {
	if set == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set.Merge(set)
}

// Style looks up a named style.
func (r *Registry) Style(name string) (style.Style, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set.Style(name)
}

// Stops looks up the stops of a named gradient.
func (r *Registry) Stops(name string) ([]gradient.RGBStop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set.Stops(name)
}

// Gradient generates a named gradient.
func (r *Registry) Gradient(name string, length int) (gradient.Gradient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set.Gradient(name, length)
}

// StyleNames lists the registered styles.
func (r *Registry) StyleNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set.StyleNames()
}

// GradientNames lists the registered gradients.
func (r *Registry) GradientNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set.GradientNames()
}
