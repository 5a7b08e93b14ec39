package ast

import (
	"iter"
	"sync"

	"github.com/funvibe/caselang/internal/token"
)

// CaseOpt is one option of a case statement: a value (or an array of
// values) to match against the test, and the statements to run on a match.
type CaseOpt struct {
	Token token.Token // The ':' token
	Value Expression
	Body  *BlockStatement

	defaultOnce sync.Once
	isDefault   bool
}

// NewCaseOpt builds an option and settles its default-ness up front.
func NewCaseOpt(value Expression, body *BlockStatement) *CaseOpt {
	opt := &CaseOpt{
		Token: token.Token{Type: token.CASE, Lexeme: ":"},
		Value: value,
		Body:  body,
	}
	opt.IsDefault()
	return opt
}

func (co *CaseOpt) Accept(v Visitor)      { v.VisitCaseOpt(co) }
func (co *CaseOpt) TokenLiteral() string  { return co.Token.Lexeme }
func (co *CaseOpt) GetToken() token.Token { return co.Token }

// IsDefault reports whether the option value is the default marker or an
// array holding one. Only one level of array is looked into.
func (co *CaseOpt) IsDefault() bool {
	co.defaultOnce.Do(func() {
		switch v := co.Value.(type) {
		case *Default:
			co.isDefault = true
		case *ArrayConstructor:
			for _, el := range v.Elements {
				if _, ok := el.(*Default); ok {
					co.isDefault = true
					break
				}
			}
		}
	})
	return co.isDefault
}

// Candidates yields the expressions the test is matched against, in order:
// the elements of an array value, or the value itself.
func (co *CaseOpt) Candidates() iter.Seq[Expression] {
	return func(yield func(Expression) bool) {
		if arr, ok := co.Value.(*ArrayConstructor); ok {
			for _, el := range arr.Elements {
				if !yield(el) {
					return
				}
			}
			return
		}
		yield(co.Value)
	}
}
