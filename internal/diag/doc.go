// Package diag carries diagnostics across the compilation pipeline.
//
// Lexer and parser stay tolerant by design: skipped characters and
// statements surface here as warnings, never as hard failures. The only
// hard failures of the compiler (missing function name, malformed type
// string) are ordinary Go errors, not diagnostics.
package diag
