package annotate

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/sure/internal/contract"
)

// parseDecls parses src and returns its function declarations by name.
// Methods are keyed Receiver.Name.
func parseDecls(t *testing.T, src string) map[string]contract.Declaration {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "calc.go", src, parser.ParseComments)
	require.NoError(t, err)

	decls := make(map[string]contract.Declaration)
	for _, d := range file.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		decl := contract.Declaration{
			Kind:    contract.KindFunction,
			Name:    fn.Name.Name,
			Func:    fn,
			File:    file,
			Package: "example.com/calc",
			Pos:     fset.Position(fn.Pos()),
		}
		key := fn.Name.Name
		if fn.Recv != nil {
			decl.Kind = contract.KindMethod
			recv := fn.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			key = recv.(*ast.Ident).Name + "." + key
		}
		decls[key] = decl
	}
	return decls
}

type recorder struct {
	msgs []string
}

func (r *recorder) warn(_ contract.Declaration, msg string) {
	r.msgs = append(r.msgs, msg)
}
