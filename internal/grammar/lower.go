package grammar

import "symexec/internal/ast"

// ToFunction lowers a successful parse into the ast.Function the core
// consumes, the same "parse tree in, typed tree out" shape as the
// teacher's internal/ir.BuildProgram.
func ToFunction(p *Program) *ast.Function {
	fd := p.Func

	params := make([]ast.Param, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = ast.Param{Type: p.Type, Name: p.Name}
	}

	return &ast.Function{
		Name:    fd.Name,
		Params:  params,
		RetType: fd.RetType,
		Body:    buildStmts(fd.Stmts),
		RetExpr: buildExpr(fd.RetExpr),
	}
}

func buildStmts(stmts []*Stmt) []ast.Stmt {
	out := make([]ast.Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = buildStmt(s)
	}
	return out
}

func buildStmt(s *Stmt) ast.Stmt {
	switch {
	case s.If != nil:
		return &ast.If{
			Cond: buildExpr(s.If.Cond),
			Then: buildStmts(s.If.Then),
			Else: buildStmts(s.If.Else),
		}
	case s.Assign != nil:
		return &ast.Assign{Var: s.Assign.Name, Expr: buildExpr(s.Assign.Expr)}
	default:
		panic("grammar: statement with no alternative populated")
	}
}

func buildExpr(e *Expr) ast.Expr {
	return buildLogical(e.Logical)
}

func buildLogical(l *Logical) ast.Expr {
	left := buildRelational(l.Left)
	for _, op := range l.Ops {
		left = &ast.BinOp{Op: op.Op, Left: left, Right: buildRelational(op.Right)}
	}
	return left
}

func buildRelational(r *Relational) ast.Expr {
	left := buildAdditive(r.Left)
	for _, op := range r.Ops {
		left = &ast.BinOp{Op: op.Op, Left: left, Right: buildAdditive(op.Right)}
	}
	return left
}

func buildAdditive(a *Additive) ast.Expr {
	left := buildMultiplicative(a.Left)
	for _, op := range a.Ops {
		left = &ast.BinOp{Op: op.Op, Left: left, Right: buildMultiplicative(op.Right)}
	}
	return left
}

func buildMultiplicative(m *Multiplicative) ast.Expr {
	left := buildUnary(m.Left)
	for _, op := range m.Ops {
		left = &ast.BinOp{Op: op.Op, Left: left, Right: buildUnary(op.Right)}
	}
	return left
}

func buildUnary(u *Unary) ast.Expr {
	if u.Operand != nil {
		inner := buildUnary(u.Operand)
		if u.Op == "!" {
			return &ast.Not{Inner: inner}
		}
		return &ast.Neg{Inner: inner}
	}
	return buildPrimary(u.Primary)
}

func buildPrimary(p *Primary) ast.Expr {
	switch {
	case p.Number != nil:
		return &ast.Const{Value: *p.Number}
	case p.Bool != nil:
		return &ast.Const{Value: *p.Bool}
	case p.Ident != nil:
		return &ast.Var{Name: *p.Ident}
	case p.Paren != nil:
		return buildExpr(p.Paren)
	default:
		panic("grammar: primary with no alternative populated")
	}
}
