package ast

import (
	"github.com/funvibe/caselang/internal/token"
)

// StringLiteral is a quoted string, e.g. 'value'
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(bl) }
func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

// Name is a bareword. It denotes the string of its own text.
type Name struct {
	Token token.Token
	Value string
}

func (n *Name) Accept(v Visitor)      { v.VisitName(n) }
func (n *Name) expressionNode()       {}
func (n *Name) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Name) GetToken() token.Token { return n.Token }

// UndefLiteral denotes the absence of a value.
type UndefLiteral struct {
	Token token.Token
}

func (ul *UndefLiteral) Accept(v Visitor)      { v.VisitUndefLiteral(ul) }
func (ul *UndefLiteral) expressionNode()       {}
func (ul *UndefLiteral) TokenLiteral() string  { return ul.Token.Lexeme }
func (ul *UndefLiteral) GetToken() token.Token { return ul.Token }

// Variable is a variable reference without the leading '$'.
// Numeric names ($0, $1, ...) refer to regex captures of the enclosing match.
type Variable struct {
	Token token.Token
	Value string
}

func (va *Variable) Accept(v Visitor)      { v.VisitVariable(va) }
func (va *Variable) expressionNode()       {}
func (va *Variable) TokenLiteral() string  { return va.Token.Lexeme }
func (va *Variable) GetToken() token.Token { return va.Token }

// RegexLiteral is a /pattern/ in RE2 syntax.
type RegexLiteral struct {
	Token   token.Token
	Pattern string
}

func (rl *RegexLiteral) Accept(v Visitor)      { v.VisitRegexLiteral(rl) }
func (rl *RegexLiteral) expressionNode()       {}
func (rl *RegexLiteral) TokenLiteral() string  { return rl.Token.Lexeme }
func (rl *RegexLiteral) GetToken() token.Token { return rl.Token }

// ArrayConstructor is a bracketed list of expressions, e.g. ['a', /b/, default]
type ArrayConstructor struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (ac *ArrayConstructor) Accept(v Visitor)      { v.VisitArrayConstructor(ac) }
func (ac *ArrayConstructor) expressionNode()       {}
func (ac *ArrayConstructor) TokenLiteral() string  { return ac.Token.Lexeme }
func (ac *ArrayConstructor) GetToken() token.Token { return ac.Token }

// Default is the `default` marker of a case option.
type Default struct {
	Token token.Token
}

func (d *Default) Accept(v Visitor)      { v.VisitDefault(d) }
func (d *Default) expressionNode()       {}
func (d *Default) TokenLiteral() string  { return d.Token.Lexeme }
func (d *Default) GetToken() token.Token { return d.Token }

// CaseStatement selects the first option whose value matches the test.
// case $test { 'a', /b/: { ... } default: { ... } }
type CaseStatement struct {
	Token   token.Token // The 'case' token
	Test    Expression
	Options []*CaseOpt
}

func (cs *CaseStatement) Accept(v Visitor)      { v.VisitCaseStatement(cs) }
func (cs *CaseStatement) statementNode()        {}
func (cs *CaseStatement) expressionNode()       {}
func (cs *CaseStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CaseStatement) GetToken() token.Token { return cs.Token }
