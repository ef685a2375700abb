// Package simplify rewrites a residual expression tree using constant
// folding, boolean identities, comparison inversion, and multiplicative
// distribution. It is a pure, total function over the ast expression
// algebra: every pattern that does not match falls through to rebuilding
// the node unchanged.
package simplify

import (
	"strconv"

	"symexec/internal/ast"
)

// Expr recurses into children first, then attempts the local rewrites
// documented for the node's shape. It is idempotent on a fully-reduced
// tree but is not guaranteed to reach a single canonical form: it does
// not sort commutative operands, does not fold x-x or x*0, and does not
// apply De Morgan across & and |.
func Expr(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case *ast.Var:
		return v
	case *ast.Const:
		return v
	case *ast.BinOp:
		left := Expr(v.Left)
		right := Expr(v.Right)
		return binOp(v.Op, left, right)
	case *ast.Not:
		return not(Expr(v.Inner))
	case *ast.Neg:
		return neg(Expr(v.Inner))
	default:
		return e
	}
}

func binOp(op string, left, right ast.Expr) ast.Expr {
	if op == "&" || op == "|" {
		return logical(op, left, right)
	}

	if lc, ok := left.(*ast.Const); ok {
		if rc, ok2 := right.(*ast.Const); ok2 {
			if a, aok := parseInt(lc.Value); aok {
				if b, bok := parseInt(rc.Value); bok {
					if folded, ok3 := foldInt(op, a, b); ok3 {
						return folded
					}
				}
			}
		}
	}

	if op == "*" || op == "/" {
		if lb, ok := left.(*ast.BinOp); ok && (lb.Op == "+" || lb.Op == "-") {
			distributed := &ast.BinOp{
				Op:   lb.Op,
				Left: &ast.BinOp{Op: op, Left: lb.Left, Right: right},
				Right: &ast.BinOp{
					Op:    op,
					Left:  lb.Right,
					Right: right,
				},
			}
			return Expr(distributed)
		}
		if rb, ok := right.(*ast.BinOp); ok && (rb.Op == "+" || rb.Op == "-") {
			distributed := &ast.BinOp{
				Op:   rb.Op,
				Left: &ast.BinOp{Op: op, Left: left, Right: rb.Left},
				Right: &ast.BinOp{
					Op:    op,
					Left:  left,
					Right: rb.Right,
				},
			}
			return Expr(distributed)
		}
	}

	return &ast.BinOp{Op: op, Left: left, Right: right}
}

// logical folds & and | over boolean constants and applies the identity
// laws (false|x=x, true|x=true, false&x=false, true&x=x) when exactly
// one side is a boolean constant, whichever side it is on.
func logical(op string, left, right ast.Expr) ast.Expr {
	lc, lIsConst := left.(*ast.Const)
	rc, rIsConst := right.(*ast.Const)

	if lIsConst && rIsConst && isBoolLiteral(lc.Value) && isBoolLiteral(rc.Value) {
		a := lc.Value == "true"
		b := rc.Value == "true"
		var res bool
		if op == "&" {
			res = a && b
		} else {
			res = a || b
		}
		return boolConst(res)
	}

	if lIsConst && isBoolLiteral(lc.Value) {
		if v, ok := identity(op, lc.Value, right); ok {
			return v
		}
	}
	if rIsConst && isBoolLiteral(rc.Value) {
		if v, ok := identity(op, rc.Value, left); ok {
			return v
		}
	}

	return &ast.BinOp{Op: op, Left: left, Right: right}
}

func identity(op, constSide string, other ast.Expr) (ast.Expr, bool) {
	switch {
	case op == "|" && constSide == "false":
		return other, true
	case op == "|" && constSide == "true":
		return boolConst(true), true
	case op == "&" && constSide == "false":
		return boolConst(false), true
	case op == "&" && constSide == "true":
		return other, true
	default:
		return nil, false
	}
}

func not(inner ast.Expr) ast.Expr {
	if bin, ok := inner.(*ast.BinOp); ok {
		if negated, ok2 := invertRelation(bin.Op); ok2 {
			return Expr(&ast.BinOp{Op: negated, Left: bin.Left, Right: bin.Right})
		}
	}
	if c, ok := inner.(*ast.Const); ok {
		if c.Value == "true" {
			return boolConst(false)
		}
		if c.Value == "false" {
			return boolConst(true)
		}
	}
	return &ast.Not{Inner: inner}
}

func neg(inner ast.Expr) ast.Expr {
	if c, ok := inner.(*ast.Const); ok {
		if n, ok2 := parseInt(c.Value); ok2 {
			return &ast.Const{Value: strconv.FormatInt(int64(-n), 10)}
		}
	}
	return &ast.Neg{Inner: inner}
}

func invertRelation(op string) (string, bool) {
	switch op {
	case ">":
		return "<=", true
	case "<":
		return ">=", true
	case ">=":
		return "<", true
	case "<=":
		return ">", true
	default:
		return "", false
	}
}

// foldInt evaluates a binary operator over two integer constants using
// two's-complement, 32-bit machine arithmetic (Go's int32 arithmetic
// wraps the same way a C int does). Division and division-derived
// relations by a zero divisor are reported as not-folded so the caller
// leaves the expression unsimplified rather than panicking.
func foldInt(op string, a, b int32) (ast.Expr, bool) {
	switch op {
	case "+":
		return intConst(a + b), true
	case "-":
		return intConst(a - b), true
	case "*":
		return intConst(a * b), true
	case "/":
		if b == 0 {
			return nil, false
		}
		return intConst(a / b), true
	case "<":
		return boolFlag(a < b), true
	case ">":
		return boolFlag(a > b), true
	case "<=":
		return boolFlag(a <= b), true
	case ">=":
		return boolFlag(a >= b), true
	default:
		return nil, false
	}
}

func isBoolLiteral(v string) bool {
	return v == "true" || v == "false"
}

func parseInt(v string) (int32, bool) {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func boolConst(v bool) *ast.Const {
	if v {
		return &ast.Const{Value: "true"}
	}
	return &ast.Const{Value: "false"}
}

func intConst(v int32) *ast.Const {
	return &ast.Const{Value: strconv.FormatInt(int64(v), 10)}
}

// boolFlag renders a relational fold result as "1"/"0", not "true"/
// "false" — an intentional asymmetry with logical folding that the
// source implementation preserves.
func boolFlag(v bool) *ast.Const {
	if v {
		return &ast.Const{Value: "1"}
	}
	return &ast.Const{Value: "0"}
}
