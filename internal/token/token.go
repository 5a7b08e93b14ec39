package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"

	STRING   TokenType = "STRING"
	INT      TokenType = "INT"
	BOOLEAN  TokenType = "BOOLEAN"
	NAME     TokenType = "NAME"
	UNDEF    TokenType = "UNDEF"
	VARIABLE TokenType = "VARIABLE"
	REGEX    TokenType = "REGEX"
	LBRACKET TokenType = "["
	LBRACE   TokenType = "{"
	ASSIGN   TokenType = "="

	CASE    TokenType = "CASE"
	DEFAULT TokenType = "DEFAULT"
)

// Token carries the position of a tree node in its source document.
// Nodes assembled in Go code may leave it zero.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}
