/*
Package scan finds props structs in Go source files.

A props struct is a struct type whose name ends in "Props". The component it
belongs to is named by the rest of the type name. Scanning reads the
selector, inject_as and props tags of the struct's fields, the same way
registry.FieldsOf does at run time, but without compiling the package.
Selectors are only checked when the result is registered, which makes
Register a handy linter for the selectors of a code base.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/propsel/registry"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'propsel.registry'.
func tracer() tracing.Trace {
	return tracing.Select("propsel.registry")
}

// Component is a props struct found in a source file.
type Component struct {
	Name     string           // component name, e.g. LoginForm
	Package  string           // Go package name
	Position token.Position   // position of the type declaration
	Fields   []registry.Field // exported fields in declaration order
}

// Dir scans the non-test Go files of a directory.
// Components are returned sorted by name.
func Dir(dir string) ([]Component, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(info os.FileInfo) bool {
		return !strings.HasSuffix(info.Name(), "_test.go")
	}, 0)
	if err != nil {
		return nil, err
	}
	var comps []Component
	for name, pkg := range pkgs {
		for _, file := range pkg.Files {
			comps = append(comps, findProps(fset, name, file)...)
		}
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].Name < comps[j].Name })
	tracer().Debugf("scan: found %d props structs in %s", len(comps), dir)
	return comps, nil
}

// Source scans a single file. src may be nil, in which case the file is
// read from disk, or anything go/parser accepts as source.
func Source(filename string, src any) ([]Component, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return nil, err
	}
	return findProps(fset, file.Name.Name, file), nil
}

// Register scans a directory and registers every component found.
// It stops at the first component which fails to register.
func Register(r *registry.Registry, dir string) ([]string, error) {
	comps, err := Dir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(comps))
	for _, c := range comps {
		if err := r.AddInjectedFields(c.Name, c.Fields); err != nil {
			return names, fmt.Errorf("%s: %w", c.Position, err)
		}
		names = append(names, c.Name)
	}
	return names, nil
}

func findProps(fset *token.FileSet, pkg string, file *ast.File) []Component {
	var comps []Component
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || !strings.HasSuffix(typeSpec.Name.Name, "Props") || typeSpec.Name.Name == "Props" {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			comps = append(comps, Component{
				Name:     registry.ComponentName(typeSpec.Name.Name),
				Package:  pkg,
				Position: fset.Position(typeSpec.Pos()),
				Fields:   fieldsOf(structType),
			})
		}
	}
	return comps
}

func fieldsOf(structType *ast.StructType) []registry.Field {
	var fields []registry.Field
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			continue // embedded
		}
		var tag reflect.StructTag
		if field.Tag != nil {
			if s, err := strconv.Unquote(field.Tag.Value); err == nil {
				tag = reflect.StructTag(s)
			}
		}
		_, isFunc := field.Type.(*ast.FuncType)
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			fields = append(fields, registry.FieldFromTag(name.Name, tag, isFunc))
		}
	}
	return fields
}
