package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/npillmayer/propsel/branch"
	"github.com/npillmayer/propsel/selector"
)

// Registry maps component names to their injected properties.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]PropertySelectors
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{components: make(map[string]PropertySelectors)}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// AddInjectedFields compiles the selectors of a component's fields and
// registers them. Fields without a selector are skipped. If any selector
// fails to compile, nothing is registered and the parse error is returned,
// wrapped with the component and field name.
func (r *Registry) AddInjectedFields(component string, fields []Field) error {
	props := make(PropertySelectors, len(fields))
	for _, f := range fields {
		if f.Selector == "" {
			continue
		}
		sels, err := selector.Parse(f.Selector)
		if err != nil {
			return fmt.Errorf("component %s, field %s: %w", component, f.Name, err)
		}
		props[f.Property()] = sels
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.components[component]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, component)
	}
	r.components[component] = props
	tracer().Infof("registry: component %s injects %d properties", component, len(props))
	return nil
}

// Register registers the tagged fields of a props struct for a component.
// If component is empty, it is derived from the props type name.
func (r *Registry) Register(component string, props any) error {
	fields, err := FieldsOf(props)
	if err != nil {
		return err
	}
	if component == "" {
		t := reflect.TypeOf(props)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		component = ComponentName(t.Name())
	}
	return r.AddInjectedFields(component, fields)
}

// CheckBranch reports whether property p of a component is to be injected
// at the current position of b. Unknown components and properties are not
// injected anywhere, even for an empty branch.
func (r *Registry) CheckBranch(component string, p Property, b *branch.Branch) (bool, error) {
	sels, ok := r.Selectors(component, p)
	if !ok {
		return false, nil
	}
	if b.Depth() == 0 {
		return false, ErrEmptyBranch
	}
	return sels.Matches(b), nil
}

// Selectors returns the selectors of property p of a component.
func (r *Registry) Selectors(component string, p Property) (selector.Selectors, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	props, ok := r.components[component]
	if !ok {
		return nil, false
	}
	sels, ok := props[p]
	return sels, ok
}

// ComponentProperties returns the injected properties of a component,
// sorted by name.
func (r *Registry) ComponentProperties(component string) ([]Property, error) {
	r.mu.RLock()
	props, ok := r.components[component]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
	list := make([]Property, 0, len(props))
	for p := range props {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].Target() < list[j].Target()
	})
	return list, nil
}

// Components returns the names of all registered components, sorted.
func (r *Registry) Components() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
