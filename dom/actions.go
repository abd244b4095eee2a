package dom

import (
	"github.com/npillmayer/propsel/branch"
	"github.com/npillmayer/propsel/registry"
	"github.com/npillmayer/propsel/selector"
	"github.com/npillmayer/propsel/tree"
)

// Select returns the elements of a document selected by sel, in document
// order.
func Select(doc *Node, sel selector.Selectors) ([]*Node, error) {
	var selected []*Node
	b := branch.New()
	err := tree.WalkChildren(doc, TagOf, b, func(n *Node) error {
		if sel.Matches(b) {
			selected = append(selected, n)
		}
		return nil
	})
	return selected, err
}

// Injection is a property injected into an element.
type Injection struct {
	Node     *Node
	Path     string // position of the element, e.g. "form[0] > input[1]"
	Property registry.Property
}

// Inject finds the elements of a document which receive an injected
// property of a component. Injections are returned in document order, and
// per element in the order of reg.ComponentProperties.
func Inject(doc *Node, reg *registry.Registry, component string) ([]Injection, error) {
	props, err := reg.ComponentProperties(component)
	if err != nil {
		return nil, err
	}
	var injections []Injection
	b := branch.New()
	err = tree.WalkChildren(doc, TagOf, b, func(n *Node) error {
		for _, p := range props {
			ok, err := reg.CheckBranch(component, p, b)
			if err != nil {
				return err
			}
			if ok {
				injections = append(injections, Injection{Node: n, Path: b.Path(), Property: p})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Infof("dom: %d injections for component %s", len(injections), component)
	return injections, nil
}

// Apply sets an attribute for every injection of an attribute property,
// using values keyed by property name. Properties without a value are
// skipped. Handlers are never applied.
func Apply(injections []Injection, values map[string]string) int {
	n := 0
	for _, inj := range injections {
		if inj.Property.Kind != registry.Attribute {
			continue
		}
		if v, ok := values[inj.Property.Name]; ok {
			inj.Node.Payload.SetAttr(inj.Property.Target(), v)
			n++
		}
	}
	return n
}
