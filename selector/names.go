package selector

import (
	"fmt"
	"strings"
)

// kindOf validates a segment name and classifies it. Names containing an
// upper case letter are component names.
func kindOf(name string) (Kind, error) {
	switch {
	case name == WildcardName:
		return Wildcard, nil
	case strings.IndexFunc(name, isUpper) >= 0:
		if !isComponentName(name) {
			return Element, fmt.Errorf("'%s' is an invalid component name", name)
		}
		return Component, nil
	case !isTagName(name):
		return Element, fmt.Errorf("'%s' is an invalid html tag", name)
	}
	return Element, nil
}

// isComponentName matches [A-Z][A-Za-z0-9]*.
func isComponentName(name string) bool {
	if name == "" || !isUpper(rune(name[0])) {
		return false
	}
	for _, r := range name[1:] {
		if !isUpper(r) && !isLower(r) && !isDigit(r) {
			return false
		}
	}
	return true
}

// isTagName matches [a-z][a-z0-9-]*.
func isTagName(name string) bool {
	if name == "" || !isLower(rune(name[0])) {
		return false
	}
	for _, r := range name[1:] {
		if !isLower(r) && !isDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
