// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package abort

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"

	"github.com/go4org/hashtriemap"
	"golang.org/x/tools/go/ast/inspector"

	"go.astrophena.name/cmnutil/syncx"
)

const unknown = "?"

// callSite describes the caller of the function that called callSite,
// skipping skip additional frames. name is the name of the check function,
// used to find its call in the source.
func callSite(skip int, name string) Site {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+2, pcs) == 0 {
		return Site{Expr: unknown, Func: unknown, File: unknown}
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return Site{
		Expr: exprAt(frame.File, frame.Line, name),
		Line: frame.Line,
		Func: funcName(frame.Function),
		File: frame.File,
	}
}

// funcName strips the import path and package name from a fully qualified
// function name, so "example.com/pkg.(*T).Close" becomes "(*T).Close".
func funcName(full string) string {
	if full == "" {
		return unknown
	}
	name := full[strings.LastIndexByte(full, '/')+1:]
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

type source struct {
	fset *token.FileSet
	tf   *token.File
	src  []byte
	insp *inspector.Inspector
}

// Parsed source files, keyed by path. Each file is read at most once.
var sources hashtriemap.HashTrieMap[string, *syncx.Lazy[*source]]

func loadSource(filename string) (*source, error) {
	l, _ := sources.LoadOrStore(filename, new(syncx.Lazy[*source]))
	return l.GetErr(func() (*source, error) {
		src, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		return &source{
			fset: fset,
			tf:   fset.File(f.Pos()),
			src:  src,
			insp: inspector.New([]*ast.File{f}),
		}, nil
	})
}

// exprAt returns the source text of the arguments of the call to name on
// line of filename. It returns "?" if the source is not available or if
// several such calls share the line, since the runtime reports no column to
// pick between them.
func exprAt(filename string, line int, name string) string {
	s, err := loadSource(filename)
	if err != nil {
		return unknown
	}

	// The reported line of a call spanning several lines is not always the
	// line of its opening parenthesis, so fall back to calls covering it.
	var exact, covering []*ast.CallExpr
	s.insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if calleeName(call.Fun) != name || len(call.Args) == 0 {
			return
		}
		start, end := s.tf.Line(call.Pos()), s.tf.Line(call.End())
		switch {
		case s.tf.Line(call.Lparen) == line:
			exact = append(exact, call)
		case start <= line && line <= end:
			covering = append(covering, call)
		}
	})

	calls := exact
	if len(calls) == 0 {
		calls = covering
	}
	if len(calls) != 1 {
		return unknown
	}
	call := calls[0]
	from := s.tf.Offset(call.Args[0].Pos())
	to := s.tf.Offset(call.Args[len(call.Args)-1].End())
	return string(s.src[from:to])
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}
