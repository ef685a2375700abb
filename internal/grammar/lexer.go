package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the source language. Keywords (if, else, return, int,
// bool, true, false) are not a separate token class: they ride on the
// Ident rule and are matched as string literals directly in the
// grammar tags in grammar.go. <= and >= never appear in source text — the
// simplifier is the only thing that produces them — so the Symbol rule
// only needs single-character operators.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Symbol", `[(){}:,&|<>+\-*/!=]`, nil},
	},
})
