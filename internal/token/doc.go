// Package token defines lexical token kinds for the veriscript compiler.
// Invariants:
//   - Token.Text is the exact source slice for the token.
//   - Token.Span matches Text exactly (Start..End).
//   - A TYPE token carries the whole compact type string: base, optional
//     width, optional sync-mode suffix ("int.32::concurrent" is one token).
//   - Ordering in the token stream is significant; the AST builder consumes
//     a flat token sequence with no nesting.
package token
