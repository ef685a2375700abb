package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"symexec/internal/ast"
	"symexec/internal/interp"
	"symexec/internal/report"
)

// TestReportStatesFormat lives in its own external test package because
// internal/report imports internal/interp: a same-package test file
// here that also imported internal/report would be an import cycle.
func TestReportStatesFormat(t *testing.T) {
	cond := &ast.BinOp{Op: ">", Left: &ast.Var{Name: "x"}, Right: &ast.Const{Value: "0"}}
	fn := &ast.Function{
		Name:   "f",
		Params: []ast.Param{{Type: "int", Name: "x"}},
		Body: []ast.Stmt{
			&ast.If{
				Cond: cond,
				Then: []ast.Stmt{&ast.Assign{Var: "y", Expr: &ast.Const{Value: "1"}}},
				Else: []ast.Stmt{&ast.Assign{Var: "y", Expr: &ast.Neg{Inner: &ast.Const{Value: "1"}}}},
			},
		},
		RetExpr: &ast.Var{Name: "y"},
	}

	out := report.States(interp.Execute(fn))
	assert.Contains(t, out, "pc = 'x' > 0")
	assert.Contains(t, out, "pc = 'x' <= 0")
	assert.Contains(t, out, "result = 1")
	assert.Contains(t, out, "result = -1")
}
