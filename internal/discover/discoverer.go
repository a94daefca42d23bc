package discover

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/roach88/sure/internal/annotate"
	"github.com/roach88/sure/internal/contract"
)

// Discoverer builds class records from scanned packages.
type Discoverer struct {
	Decoder annotate.Decoder

	// warnings receives decoder warnings when the Discoverer built its own
	// decoder.
	warnings *annotate.Collector
}

// NewDiscoverer returns a Discoverer using both annotation encodings, with
// decoding warnings attached to the class records they occur in.
func NewDiscoverer() *Discoverer {
	col := &annotate.Collector{}
	return &Discoverer{Decoder: annotate.New(col.Warn), warnings: col}
}

// class accumulates the declarations of one class while walking a package.
type class struct {
	name  string
	obj   *types.TypeName
	ctor  *contract.Declaration
	funcs []contract.Declaration
}

// Classes returns the classes in units in package, file and declaration
// order.
func (d *Discoverer) Classes(units *Units) []contract.ClassRecord {
	var records []contract.ClassRecord
	for _, pkg := range units.Packages {
		records = append(records, d.packageClasses(units, pkg)...)
	}
	slog.Debug("discovery complete", "classes", len(records))
	return records
}

func (d *Discoverer) packageClasses(units *Units, pkg *packages.Package) []contract.ClassRecord {
	var (
		order   []*class
		byName  = make(map[string]*class)
		free    = &class{name: pkg.Name}
		scope   = pkg.Types.Scope()
		newDecl = func(kind contract.Kind, fn *ast.FuncDecl, file *ast.File) contract.Declaration {
			return contract.Declaration{
				Kind:    kind,
				Name:    fn.Name.Name,
				Func:    fn,
				File:    file,
				Package: pkg.PkgPath,
				Pos:     units.position(fn.Pos()),
			}
		}
	)

	syntax := units.Syntax(pkg)

	// Classes first, so functions can be associated regardless of file order.
	for _, file := range syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				if ts.Assign.IsValid() || ts.TypeParams != nil {
					continue
				}
				tn, ok := scope.Lookup(ts.Name.Name).(*types.TypeName)
				if !ok || types.IsInterface(tn.Type()) {
					continue
				}
				c := &class{name: ts.Name.Name, obj: tn}
				order = append(order, c)
				byName[c.name] = c
			}
		}
	}

	for _, file := range syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Type.TypeParams != nil {
				continue
			}

			if fn.Recv != nil {
				c := byName[receiverName(fn)]
				if c == nil {
					continue
				}
				units.Facility.bind(fn, c.obj)
				c.funcs = append(c.funcs, newDecl(contract.KindMethod, fn, file))
				continue
			}

			name := fn.Name.Name
			if name == "init" || (name == "main" && pkg.Name == "main") {
				continue
			}
			if c := byName[strings.TrimPrefix(name, "New")]; c != nil && name == "New"+c.name && c.ctor == nil {
				ctor := newDecl(contract.KindConstructor, fn, file)
				units.Facility.bind(fn, c.obj)
				c.ctor = &ctor
				continue
			}
			if c := byName[resultClass(pkg, fn)]; c != nil {
				units.Facility.bind(fn, c.obj)
				c.funcs = append(c.funcs, newDecl(contract.KindFunction, fn, file))
				continue
			}
			free.funcs = append(free.funcs, newDecl(contract.KindFunction, fn, file))
		}
	}

	var records []contract.ClassRecord
	for _, c := range append(order, free) {
		if rec, ok := d.record(pkg, c); ok {
			records = append(records, rec)
		}
	}
	return records
}

// record decodes the metadata of c. Classes without fixtures or scenarios
// are dropped.
func (d *Discoverer) record(pkg *packages.Package, c *class) (contract.ClassRecord, bool) {
	rec := contract.ClassRecord{Name: c.name, Package: pkg.PkgPath}

	if c.ctor != nil {
		rec.Decl = *c.ctor
		rec.Fixtures = append(rec.Fixtures, d.Decoder.Fixtures(*c.ctor)...)
	}

	for _, decl := range c.funcs {
		static := decl.Kind == contract.KindFunction
		fixtures := d.Decoder.Fixtures(decl)
		switch {
		case static && c.obj != nil:
			for _, f := range fixtures {
				rec.Fixtures = append(rec.Fixtures, f.WithFactory(decl.Name))
			}
		case len(fixtures) > 0:
			d.warn(decl, fmt.Sprintf("ignoring %d fixture(s): fixtures belong on a constructor or a function returning the class", len(fixtures)))
		}

		scenarios := d.Decoder.Scenarios(decl)
		if len(scenarios) == 0 {
			continue
		}
		m := contract.NewMethodRecord(decl.Name, scenarios, decl, static)
		if reason, ok := d.Decoder.Skip(decl); ok {
			m = m.WithSkip(reason)
		}
		rec.Methods = append(rec.Methods, m)
	}

	if d.warnings != nil {
		rec.Warnings = d.warnings.Drain()
	}

	if len(rec.Fixtures) == 0 && len(rec.Methods) == 0 {
		for _, w := range rec.Warnings {
			slog.Warn("annotation warning", "class", c.name, "warning", w)
		}
		return rec, false
	}

	slog.Debug("class discovered",
		"class", rec.Name,
		"package", rec.Package,
		"fixtures", len(rec.Fixtures),
		"methods", len(rec.Methods),
	)
	return rec, true
}

func (d *Discoverer) warn(decl contract.Declaration, msg string) {
	if d.warnings == nil {
		slog.Warn("annotation warning", "declaration", decl.Name, "warning", msg)
		return
	}
	d.warnings.Warn(decl, msg)
}

func receiverName(fn *ast.FuncDecl) string {
	if len(fn.Recv.List) == 0 {
		return ""
	}
	t := fn.Recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	if id, ok := t.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// resultClass names the package-local type returned first by fn, with
// pointers removed, or "" when there is none.
func resultClass(pkg *packages.Package, fn *ast.FuncDecl) string {
	obj, ok := pkg.TypesInfo.Defs[fn.Name].(*types.Func)
	if !ok {
		return ""
	}
	res := obj.Type().(*types.Signature).Results()
	if res.Len() == 0 {
		return ""
	}
	t := types.Unalias(res.At(0).Type())
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() != pkg.Types {
		return ""
	}
	return named.Obj().Name()
}
