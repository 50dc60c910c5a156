// Package gen implements derefgen, the delegation generator for wrapper
// structs that hold an owned cffi.Ptr in a named field. It loads the target
// package, resolves the wrapper's Ptr field and pointee type, and emits the
// forwarding accessors (Raw, UnsafePtr, Free) so the wrapper behaves
// transparently like the pointee.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

// corePkgPath identifies the package providing the owned pointer type.
const corePkgPath = "github.com/coinbase/cffi-go/pkg/cffi"

// Wrapper describes a struct whose borrow surface should be forwarded to the
// cffi.Ptr it holds.
type Wrapper struct {
	PkgName  string
	Type     string
	Field    string
	Receiver string
	Pointee  string // pointer type of the pointee rendered relative to the package, e.g. "*Buffer"
}

// Load inspects the package in dir and resolves typeName into a Wrapper.
// field selects the cffi.Ptr field when the struct holds more than one;
// leave it empty to use the single Ptr field.
func Load(dir, typeName, field string) (*Wrapper, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load package in %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", typeName, pkg.PkgPath)
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s is not a struct type", typeName)
	}

	var (
		fieldName string
		pointee   types.Type
	)
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		targ, ok := ptrTypeArg(f.Type())
		if !ok {
			continue
		}
		if field != "" && f.Name() != field {
			continue
		}
		if fieldName != "" {
			return nil, fmt.Errorf("%s holds more than one cffi.Ptr field; pass -field", typeName)
		}
		fieldName = f.Name()
		pointee = targ
	}
	if fieldName == "" {
		if field != "" {
			return nil, fmt.Errorf("%s has no cffi.Ptr field named %q", typeName, field)
		}
		return nil, fmt.Errorf("%s holds no cffi.Ptr field", typeName)
	}

	qual := types.RelativeTo(pkg.Types)
	return &Wrapper{
		PkgName:  pkg.Name,
		Type:     typeName,
		Field:    fieldName,
		Receiver: strings.ToLower(typeName[:1]),
		Pointee:  types.TypeString(types.NewPointer(pointee), qual),
	}, nil
}

// ptrTypeArg reports whether t is cffi.Ptr[T, PT], possibly behind a pointer
// or alias, and returns T.
func ptrTypeArg(t types.Type) (types.Type, bool) {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok {
		return nil, false
	}
	obj := named.Obj()
	if obj.Name() != "Ptr" || obj.Pkg() == nil || obj.Pkg().Path() != corePkgPath {
		return nil, false
	}
	args := named.TypeArgs()
	if args == nil || args.Len() < 1 {
		return nil, false
	}
	return args.At(0), true
}

var srcTemplate = template.Must(template.New("derefgen").Parse(`// Code generated by derefgen; DO NOT EDIT.

package {{.PkgName}}

import "unsafe"

// Raw borrows the typed pointer held in {{.Field}}. Ownership is unaffected.
func ({{.Receiver}} *{{.Type}}) Raw() {{.Pointee}} {
	return {{.Receiver}}.{{.Field}}.Raw()
}

// UnsafePtr borrows the address held in {{.Field}} for foreign calls.
func ({{.Receiver}} *{{.Type}}) UnsafePtr() unsafe.Pointer {
	return {{.Receiver}}.{{.Field}}.UnsafePtr()
}

// Free releases the pointee held in {{.Field}} exactly once; later calls are
// no-ops.
func ({{.Receiver}} *{{.Type}}) Free() {
	{{.Receiver}}.{{.Field}}.Free()
}
`))

// Source renders the forwarding methods for w as a gofmt-formatted file.
func Source(w *Wrapper) ([]byte, error) {
	var buf bytes.Buffer
	if err := srcTemplate.Execute(&buf, w); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}
