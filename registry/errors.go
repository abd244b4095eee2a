package registry

import "errors"

var (
	// ErrUnknownComponent is returned for lookups of unregistered components.
	ErrUnknownComponent = errors.New("registry: unknown component")
	// ErrAlreadyRegistered is returned when a component is registered twice.
	ErrAlreadyRegistered = errors.New("registry: component already registered")
	// ErrEmptyBranch is returned when a check is asked for an empty branch.
	ErrEmptyBranch = errors.New("registry: branch is empty")
	// ErrNotAStruct is returned when props are neither a struct nor a pointer to one.
	ErrNotAStruct = errors.New("registry: props must be a struct")
)

// IsUnknownComponent checks if an error is an ErrUnknownComponent.
func IsUnknownComponent(err error) bool {
	return errors.Is(err, ErrUnknownComponent)
}

// IsAlreadyRegistered checks if an error is an ErrAlreadyRegistered.
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}
