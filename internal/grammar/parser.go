package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"symexec/internal/ast"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("grammar: failed to build parser: %w", err))
	}
	return p
}

// ParseFile reads path and parses it as a single function definition.
func ParseFile(path string) (*ast.Function, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}

// ParseSource parses source (named sourceName for diagnostics) and
// lowers it into an ast.Function. It reads no file, so any returned
// error comes from the parser: a participle.Error carrying a source
// position — see internal/diag for turning it into a one-line,
// caret-annotated diagnostic.
func ParseSource(sourceName, source string) (*ast.Function, error) {
	program, err := parser.ParseString(sourceName, source)
	if err != nil {
		return nil, err
	}
	return ToFunction(program), nil
}
