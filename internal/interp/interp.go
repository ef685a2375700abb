// Package interp implements symbolic execution of a parsed Function: it
// walks the statement list, forks a fresh State at every branch, and
// returns the list of final states reached at every feasible path. No
// path is ever pruned — both branches of every If are explored
// unconditionally, and nothing here calls the simplifier: states carry
// residual expression trees exactly as substitution produced them.
package interp

import "symexec/internal/ast"

// State is the symbolic state at one point in the exploration. Memory
// maps a variable name to its current symbolic expression; PathCondition
// is the ordered conjunction of branch predicates taken to reach this
// state; Result is the symbolic value of the returned expression, or nil
// if nothing has set it yet.
type State struct {
	Memory        map[string]ast.Expr
	PathCondition []ast.Expr
	Result        ast.Expr
}

func newState() *State {
	return &State{Memory: make(map[string]ast.Expr)}
}

// clone value-copies a state so that forked siblings share no mutable
// structure; the expression trees referenced from Memory and
// PathCondition are immutable and safe to share by reference.
func (s *State) clone() *State {
	memory := make(map[string]ast.Expr, len(s.Memory))
	for k, v := range s.Memory {
		memory[k] = v
	}
	pathCondition := make([]ast.Expr, len(s.PathCondition))
	copy(pathCondition, s.PathCondition)
	return &State{Memory: memory, PathCondition: pathCondition, Result: s.Result}
}

// Execute runs symbolic execution over fn and returns the final state of
// every feasible control-flow path, in depth-first, then-before-else
// order. Every returned state's Result is overwritten with the value of
// fn's trailing return expression evaluated in that state, even if a
// Return statement already set one inside the body — this mirrors the
// behaviour of the interpreter this package is modelled on, which is
// likely unintentional for functions that return mid-block but is the
// documented, preserved-by-default behaviour.
func Execute(fn *ast.Function) []*State {
	init := newState()
	for _, p := range fn.Params {
		init.Memory[p.Name] = &ast.Var{Name: p.Name}
	}

	states := executeBlock(fn.Body, init)
	for _, s := range states {
		s.Result = evalExpr(fn.RetExpr, s)
	}
	return states
}

func executeBlock(stmts []ast.Stmt, initial *State) []*State {
	states := []*State{initial}
	for _, stmt := range stmts {
		var next []*State
		for _, s := range states {
			next = append(next, executeStatement(stmt, s)...)
		}
		states = next
	}
	return states
}

func executeStatement(stmt ast.Stmt, s *State) []*State {
	switch st := stmt.(type) {
	case *ast.Assign:
		next := s.clone()
		next.Memory[st.Var] = evalExpr(st.Expr, s)
		return []*State{next}

	case *ast.If:
		cond := evalExpr(st.Cond, s)

		thenInitial := s.clone()
		thenInitial.PathCondition = append(thenInitial.PathCondition, cond)
		thenStates := executeBlock(st.Then, thenInitial)

		elseInitial := s.clone()
		elseInitial.PathCondition = append(elseInitial.PathCondition, &ast.Not{Inner: cond})
		elseStates := executeBlock(st.Else, elseInitial)

		return append(thenStates, elseStates...)

	case *ast.Return:
		next := s.clone()
		next.Result = evalExpr(st.Expr, s)
		return []*State{next}

	default:
		return []*State{s}
	}
}

// evalExpr substitutes free variables with their current symbolic value
// and rebuilds the rest of the tree; it never simplifies and never
// re-evaluates a stored expression (it was evaluated when it was
// stored).
func evalExpr(e ast.Expr, s *State) ast.Expr {
	switch v := e.(type) {
	case *ast.Var:
		if val, ok := s.Memory[v.Name]; ok {
			return val
		}
		return v
	case *ast.Const:
		return v
	case *ast.BinOp:
		return &ast.BinOp{Op: v.Op, Left: evalExpr(v.Left, s), Right: evalExpr(v.Right, s)}
	case *ast.Not:
		return &ast.Not{Inner: evalExpr(v.Inner, s)}
	case *ast.Neg:
		return &ast.Neg{Inner: evalExpr(v.Inner, s)}
	default:
		return e
	}
}
