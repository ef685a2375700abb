package interp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symexec/internal/ast"
	"symexec/internal/simplify"
)

func intParam(name string) ast.Param { return ast.Param{Type: "int", Name: name} }

func TestExecuteStraightLineAssignment(t *testing.T) {
	// f(int x): int { y = x + 1 return y }
	fn := &ast.Function{
		Name:   "f",
		Params: []ast.Param{intParam("x")},
		Body: []ast.Stmt{
			&ast.Assign{Var: "y", Expr: &ast.BinOp{Op: "+", Left: &ast.Var{Name: "x"}, Right: &ast.Const{Value: "1"}}},
		},
		RetExpr: &ast.Var{Name: "y"},
	}

	states := Execute(fn)
	require.Len(t, states, 1)
	s := states[0]
	assert.Equal(t, "'x' + 1", ast.Render(simplify.Expr(s.Memory["y"])))
	assert.Equal(t, "'x' + 1", ast.Render(simplify.Expr(s.Result)))
	assert.Empty(t, s.PathCondition)
}

// TestExecuteForksAtBranch checks spec.md's example: an if/else on x>0
// produces exactly two states with inverted, simplified path conditions.
func TestExecuteForksAtBranch(t *testing.T) {
	// f(int x): int { if (x > 0) { y = 1 } else { y = -1 } return y }
	cond := &ast.BinOp{Op: ">", Left: &ast.Var{Name: "x"}, Right: &ast.Const{Value: "0"}}
	fn := &ast.Function{
		Name:   "f",
		Params: []ast.Param{intParam("x")},
		Body: []ast.Stmt{
			&ast.If{
				Cond: cond,
				Then: []ast.Stmt{&ast.Assign{Var: "y", Expr: &ast.Const{Value: "1"}}},
				Else: []ast.Stmt{&ast.Assign{Var: "y", Expr: &ast.Neg{Inner: &ast.Const{Value: "1"}}}},
			},
		},
		RetExpr: &ast.Var{Name: "y"},
	}

	states := Execute(fn)
	require.Len(t, states, 2)

	then, els := states[0], states[1]
	assert.Equal(t, "1", ast.Render(simplify.Expr(then.Result)))
	assert.Equal(t, "'x' > 0", ast.Render(simplify.Expr(then.PathCondition[0])))

	assert.Equal(t, "-1", ast.Render(simplify.Expr(els.Result)))
	// Not(x>0) simplifies to x<=0 via comparison inversion.
	assert.Equal(t, "'x' <= 0", ast.Render(simplify.Expr(els.PathCondition[0])))
}

// TestChainedBranchesProduceExponentiallyManyStates checks spec.md's
// 2^n-states property for a straight chain of n independent ifs.
func TestChainedBranchesProduceExponentiallyManyStates(t *testing.T) {
	for n := 1; n <= 4; n++ {
		t.Run(fmt.Sprintf("depth_%d", n), func(t *testing.T) {
			fn := chainedIfFunction(n)
			states := Execute(fn)
			assert.Equal(t, 1<<uint(n), len(states))
		})
	}
}

// chainedIfFunction builds f(int x0 ... ): int { if (x0>0) {} else {}
// if (x1>0) {} else {} ... return 0 } with n independent, unnested ifs.
func chainedIfFunction(n int) *ast.Function {
	var params []ast.Param
	var body []ast.Stmt
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("x%d", i)
		params = append(params, intParam(name))
		body = append(body, &ast.If{
			Cond: &ast.BinOp{Op: ">", Left: &ast.Var{Name: name}, Right: &ast.Const{Value: "0"}},
			Then: nil,
			Else: nil,
		})
	}
	return &ast.Function{Name: "f", Params: params, Body: body, RetExpr: &ast.Const{Value: "0"}}
}

func TestResultIsOverwrittenByTrailingReturn(t *testing.T) {
	// A Return inside the body sets Result, but Execute unconditionally
	// overwrites every state's Result with the trailing return
	// expression afterward — this is documented, preserved behaviour.
	fn := &ast.Function{
		Name: "f",
		Body: []ast.Stmt{
			&ast.Return{Expr: &ast.Const{Value: "1"}},
		},
		RetExpr: &ast.Const{Value: "2"},
	}
	states := Execute(fn)
	require.Len(t, states, 1)
	assert.Equal(t, "2", ast.Render(simplify.Expr(states[0].Result)))
}

func TestCloneDoesNotShareMutableState(t *testing.T) {
	s := newState()
	s.Memory["x"] = &ast.Const{Value: "1"}
	s.PathCondition = append(s.PathCondition, &ast.Const{Value: "true"})

	clone := s.clone()
	clone.Memory["x"] = &ast.Const{Value: "2"}
	clone.PathCondition = append(clone.PathCondition, &ast.Const{Value: "false"})

	assert.Equal(t, "1", s.Memory["x"].(*ast.Const).Value)
	assert.Len(t, s.PathCondition, 1)
}
