// Package grammar defines the participle struct grammar for the source
// language and lowers a successful parse into an *ast.Function. Every
// precedence tier in the language's BNF (logical, relational, additive,
// multiplicative, unary, primary) gets its own struct, the same way the
// teacher's grammar.go nests one struct per grammar production — here
// the nesting also encodes operator precedence, so left-associative
// chains and binding order fall out of the grammar shape instead of a
// hand-written precedence climber.
package grammar

// Program is the parse root: a single function definition.
type Program struct {
	Func *FunctionDecl `@@`
}

// FunctionDecl mirrors: IDENT "(" params? ")" ":" type "{" stmt* "return" expr "}"
type FunctionDecl struct {
	Name    string       `@Ident "("`
	Params  []*ParamDecl `[ @@ { "," @@ } ] ")" ":"`
	RetType string       `@( "int" | "bool" ) "{"`
	Stmts   []*Stmt      `@@*`
	RetExpr *Expr        `"return" @@ "}"`
}

// ParamDecl mirrors: type IDENT
type ParamDecl struct {
	Type string `@( "int" | "bool" )`
	Name string `@Ident`
}

// Stmt mirrors: assign | if
type Stmt struct {
	If     *IfStmt     `  @@`
	Assign *AssignStmt `| @@`
}

// AssignStmt mirrors: IDENT "=" expr
type AssignStmt struct {
	Name string `@Ident "="`
	Expr *Expr  `@@`
}

// IfStmt mirrors: "if" "(" expr ")" "{" stmt* "}" "else" "{" stmt* "}"
type IfStmt struct {
	Cond *Expr   `"if" "(" @@ ")"`
	Then []*Stmt `"{" @@* "}"`
	Else []*Stmt `"else" "{" @@* "}"`
}

// Expr mirrors: expr := logical
type Expr struct {
	Logical *Logical `@@`
}

// Logical mirrors: logical := relational (("&" | "|") relational)*
type Logical struct {
	Left *Relational  `@@`
	Ops  []*LogicalOp `{ @@ }`
}

type LogicalOp struct {
	Op    string      `@( "&" | "|" )`
	Right *Relational `@@`
}

// Relational mirrors: relational := additive (("<" | ">") additive)*
type Relational struct {
	Left *Additive       `@@`
	Ops  []*RelationalOp `{ @@ }`
}

type RelationalOp struct {
	Op    string    `@( "<" | ">" )`
	Right *Additive `@@`
}

// Additive mirrors: additive := mult (("+" | "-") mult)*
type Additive struct {
	Left *Multiplicative `@@`
	Ops  []*AdditiveOp   `{ @@ }`
}

type AdditiveOp struct {
	Op    string          `@( "+" | "-" )`
	Right *Multiplicative `@@`
}

// Multiplicative mirrors: mult := unary (("*" | "/") unary)*
type Multiplicative struct {
	Left *Unary              `@@`
	Ops  []*MultiplicativeOp `{ @@ }`
}

type MultiplicativeOp struct {
	Op    string `@( "*" | "/" )`
	Right *Unary `@@`
}

// Unary mirrors: unary := "!" unary | "-" unary | primary
type Unary struct {
	Op      string   `(  @( "!" | "-" )`
	Operand *Unary   `   @@ )`
	Primary *Primary `|  @@`
}

// Primary mirrors: primary := NUMBER | "true" | "false" | IDENT | "(" expr ")"
type Primary struct {
	Number *string `  @Integer`
	Bool   *string `| @( "true" | "false" )`
	Ident  *string `| @Ident`
	Paren  *Expr   `| "(" @@ ")"`
}
