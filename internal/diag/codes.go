package diag

// Error codes for the symbolic execution toolchain.
//
// E0001: I/O errors
// E0002-E0099: semantic findings (defined in internal/sema)
// E0100-E0199: parser errors
const (
	// CodeIO covers any failure to open, read, or write a file.
	CodeIO = "E0001"

	// CodeSyntax covers an unexpected token during parsing.
	CodeSyntax = "E0100"
)
