package selector

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector is the error class of every selector diagnostic.
// Use errors.Is to test for it and errors.As to get at the details.
var ErrInvalidSelector = errors.New("invalid selector")

// ParseError reports a malformed selector text.
type ParseError struct {
	Selector string // complete selector text as handed to Parse
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("exception parsing selector '%s'; %s", e.Selector, e.Reason)
}

// Is makes ParseError an ErrInvalidSelector.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidSelector
}

// DuplicateError reports an alternative which occurs twice in a selector text,
// possibly spelled differently.
type DuplicateError struct {
	Selector string // the second occurence, trimmed
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate selector '%s'", e.Selector)
}

// Is makes DuplicateError an ErrInvalidSelector.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrInvalidSelector
}

// IsInvalidSelector is a shortcut for errors.Is(err, ErrInvalidSelector).
func IsInvalidSelector(err error) bool {
	return errors.Is(err, ErrInvalidSelector)
}
