package discover

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/typedesc"
)

// Facility resolves declared types of discovered declarations.
type Facility struct {
	pkgs   map[*ast.File]*packages.Package
	owners map[*ast.FuncDecl]*types.TypeName
}

func newFacility(pkgs []*packages.Package) *Facility {
	f := &Facility{
		pkgs:   make(map[*ast.File]*packages.Package),
		owners: make(map[*ast.FuncDecl]*types.TypeName),
	}
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			f.pkgs[file] = pkg
		}
	}
	return f
}

// bind records the class a function belongs to, so results of that class
// type carry the Self marker.
func (f *Facility) bind(fn *ast.FuncDecl, owner *types.TypeName) {
	f.owners[fn] = owner
}

// ReturnType describes the value produced by calling d.
func (f *Facility) ReturnType(d contract.Declaration) (typedesc.Type, error) {
	sig, pkg, err := f.signature(d)
	if err != nil {
		return nil, err
	}
	m := typedesc.Mapper{Pkg: pkg.Types, Self: f.owners[d.Func]}
	return m.ReturnType(sig), nil
}

// TypeString renders t for messages.
func (f *Facility) TypeString(t typedesc.Type) string {
	return t.String()
}

// Signature returns the go/types signature of d.
func (f *Facility) signature(d contract.Declaration) (*types.Signature, *packages.Package, error) {
	if d.Func == nil || d.File == nil {
		return nil, nil, fmt.Errorf("%s: no declaration", d.Name)
	}
	pkg, ok := f.pkgs[d.File]
	if !ok {
		return nil, nil, fmt.Errorf("%s: declaration not part of the scan", d.Name)
	}
	obj, ok := pkg.TypesInfo.Defs[d.Func.Name].(*types.Func)
	if !ok {
		return nil, nil, fmt.Errorf("%s: no type information", d.Name)
	}
	return obj.Type().(*types.Signature), pkg, nil
}
