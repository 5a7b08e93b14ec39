package diagnostics

import (
	"fmt"

	"github.com/funvibe/caselang/internal/token"
)

type ErrorCode string

const (
	// Loader errors
	ErrL001 ErrorCode = "L001" // malformed document
	ErrL002 ErrorCode = "L002" // unknown node tag
	ErrL003 ErrorCode = "L003" // invalid node shape
	ErrL004 ErrorCode = "L004" // invalid variable name

	// Runtime errors
	ErrR001 ErrorCode = "R001"
)

// DiagnosticError is a positioned error collected by pipeline processors.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

func NewError(code ErrorCode, tok token.Token, format string, a ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, a...),
	}
}

func (e *DiagnosticError) Error() string {
	loc := e.File
	if e.Token.Line > 0 {
		if loc != "" {
			loc += ":"
		}
		loc += fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
	}
	if loc == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", loc, e.Code, e.Message)
}
