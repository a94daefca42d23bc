package discover

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Units is the set of packages found under a scan root.
type Units struct {
	// Root is the absolute scan root.
	Root string

	// Packages are sorted by import path. Files within a package are
	// sorted by file name.
	Packages []*packages.Package

	Fset *token.FileSet

	// Facility answers type questions about declarations in Packages.
	Facility *Facility

	// file is set when the root is a single .go file. Its package is loaded
	// in full for type information, but only that file is discovered.
	file os.FileInfo
}

// Scan loads the Go packages under root. root may be a directory, scanned
// recursively, or a single .go file.
//
// Packages with type errors are kept: discovery only needs the declarations
// that did type-check, and execution runs against registered code.
func Scan(ctx context.Context, root string) (*Units, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &InvalidPathError{Path: root, Reason: "cannot resolve", Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &InvalidPathError{Path: root, Reason: "does not exist", Err: err}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     abs,
	}
	pattern := "./..."
	if !info.IsDir() {
		if !strings.HasSuffix(abs, ".go") {
			return nil, &InvalidPathError{Path: root, Reason: "not a directory or .go file"}
		}
		cfg.Dir = filepath.Dir(abs)
		pattern = "file=" + abs
	}

	slog.Debug("loading packages", "dir", cfg.Dir, "pattern", pattern)

	pkgs, err := packages.Load(cfg, pattern)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, &InvalidPathError{Path: root, Reason: "cannot load packages", Err: err}
	}

	var kept []*packages.Package
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			slog.Warn("package error", "package", pkg.PkgPath, "error", e.Msg)
		}
		if len(pkg.Syntax) == 0 || pkg.Types == nil || pkg.TypesInfo == nil {
			continue
		}
		kept = append(kept, pkg)
	}
	if len(kept) == 0 {
		return nil, &InvalidPathError{Path: root, Reason: "no Go packages found"}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].PkgPath < kept[j].PkgPath })

	fset := kept[0].Fset
	for _, pkg := range kept {
		sortSyntax(pkg)
	}

	slog.Debug("packages loaded", "count", len(kept))

	units := &Units{
		Root:     abs,
		Packages: kept,
		Fset:     fset,
		Facility: newFacility(kept),
	}
	if !info.IsDir() {
		units.file = info
	}
	return units, nil
}

// Syntax returns the files of pkg that discovery walks: every file, or only
// the root file when the scan root is a single .go file.
func (u *Units) Syntax(pkg *packages.Package) []*ast.File {
	if u.file == nil {
		return pkg.Syntax
	}
	var files []*ast.File
	for _, f := range pkg.Syntax {
		name := pkg.Fset.Position(f.Pos()).Filename
		if name == u.Root {
			files = append(files, f)
			continue
		}
		if info, err := os.Stat(name); err == nil && os.SameFile(info, u.file) {
			files = append(files, f)
		}
	}
	return files
}

func sortSyntax(pkg *packages.Package) {
	name := func(f *ast.File) string {
		return pkg.Fset.Position(f.Pos()).Filename
	}
	sort.SliceStable(pkg.Syntax, func(i, j int) bool {
		return name(pkg.Syntax[i]) < name(pkg.Syntax[j])
	})
}

// position resolves pos with the file name made relative to Root.
func (u *Units) position(pos token.Pos) token.Position {
	p := u.Fset.Position(pos)
	dir := u.Root
	if strings.HasSuffix(dir, ".go") {
		dir = filepath.Dir(dir)
	}
	if rel, err := filepath.Rel(dir, p.Filename); err == nil && !strings.HasPrefix(rel, "..") {
		p.Filename = filepath.ToSlash(rel)
	}
	return p
}

// String summarises the scan for logs.
func (u *Units) String() string {
	return fmt.Sprintf("%d packages under %s", len(u.Packages), u.Root)
}
