package registry

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/propsel/selector"
)

// Kind tells how a property is injected.
type Kind int8

// Kinds of properties.
const (
	Attribute Kind = iota // plain attribute value
	Handler               // event handler
)

func (k Kind) String() string {
	if k == Handler {
		return "handler"
	}
	return "attribute"
}

// Property is an injected property of a component.
type Property struct {
	Kind     Kind
	Name     string // field name in the props struct
	InjectAs string // name at the receiving element, if different from Name
	Optional bool
}

// Target is the name the property is injected under.
func (p Property) Target() string {
	if p.InjectAs != "" {
		return p.InjectAs
	}
	return strings.ToLower(p.Name)
}

func (p Property) String() string {
	s := p.Kind.String() + " " + p.Name
	if p.InjectAs != "" {
		s += " as " + p.InjectAs
	}
	if p.Optional {
		s += " (optional)"
	}
	return s
}

// PropertySelectors maps the properties of a component to their selectors.
type PropertySelectors map[Property]selector.Selectors

// Field is the description of a props field, as found in a struct
// declaration.
type Field struct {
	Name     string
	Selector string // selector text; fields without one are not injected
	InjectAs string
	Optional bool
	Handler  bool
}

// Property returns the property a field declares.
func (f Field) Property() Property {
	p := Property{Name: f.Name, InjectAs: f.InjectAs, Optional: f.Optional}
	if f.Handler {
		p.Kind = Handler
	}
	return p
}

// Struct tag keys read from props structs.
const (
	SelectorTag = "selector"
	InjectAsTag = "inject_as"
	PropsTag    = "props"
)

// FieldFromTag creates a Field from a struct field's name and tag.
// isFunc tells whether the field has function type.
func FieldFromTag(name string, tag reflect.StructTag, isFunc bool) Field {
	f := Field{
		Name:     name,
		Selector: strings.TrimSpace(tag.Get(SelectorTag)),
		InjectAs: strings.TrimSpace(tag.Get(InjectAsTag)),
		Handler:  isFunc,
	}
	for _, opt := range strings.Split(tag.Get(PropsTag), ",") {
		switch strings.TrimSpace(opt) {
		case "optional":
			f.Optional = true
		case "handler":
			f.Handler = true
		}
	}
	return f
}

// FieldsOf returns the exported fields of a props struct (or pointer to
// struct), in declaration order.
func FieldsOf(props any) ([]Field, error) {
	t := reflect.TypeOf(props)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotAStruct, props)
	}
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fields = append(fields, FieldFromTag(sf.Name, sf.Tag, sf.Type.Kind() == reflect.Func))
	}
	return fields, nil
}

// ComponentName derives a component name from a props type name by
// stripping the "Props" suffix, e.g. LoginFormProps → LoginForm.
func ComponentName(propsType string) string {
	if name := strings.TrimSuffix(propsType, "Props"); name != "" {
		return name
	}
	return propsType
}
