package evaluator

import (
	"github.com/funvibe/caselang/internal/ast"
	"github.com/wasilibs/go-re2"
)

const maxEvalDepth = 10000

// MatchOptions is passed to every match attempt.
type MatchOptions struct {
	// Sensitive compares strings with case.
	Sensitive bool
}

// MatchObserver is called after every match attempt with the candidate,
// the test value, the options used and the result (TRUE, FALSE or *Error).
type MatchObserver func(candidate ast.Expression, value Object, opts MatchOptions, result Object)

type Evaluator struct {
	// MatchObserver, when set, sees every match attempt of case statements
	MatchObserver MatchObserver

	// regexCache holds compiled patterns keyed by source
	regexCache map[string]*re2.Regexp
	// evalDepth tracks the current nesting depth of Eval calls to prevent stack overflow
	evalDepth int
}

func New() *Evaluator {
	return &Evaluator{
		regexCache: make(map[string]*re2.Regexp),
	}
}

// Eval returns the denotation of node under env. Failures come back as
// *Error values.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > maxEvalDepth {
		return newError("maximum nesting depth exceeded")
	}

	obj := e.evalCore(node, env)
	if err, ok := obj.(*Error); ok {
		if err.Line == 0 && node != nil {
			if provider, ok := node.(ast.TokenProvider); ok {
				tok := provider.GetToken()
				err.Line = tok.Line
				err.Column = tok.Column
			}
		}
	}
	return obj
}

func (e *Evaluator) evalCore(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalStatements(node.Statements, env)
	case *ast.BlockStatement:
		return e.evalStatements(node.Statements, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.AssignStatement:
		return e.evalAssignStatement(node, env)

	// Expressions
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.Name:
		return &String{Value: node.Value}
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.BooleanLiteral:
		return e.nativeBoolToBooleanObject(node.Value)
	case *ast.UndefLiteral:
		return UNDEF
	case *ast.Default:
		return &DefaultValue{}
	case *ast.Variable:
		return e.evalVariable(node, env)
	case *ast.RegexLiteral:
		return e.evalRegexLiteral(node)
	case *ast.ArrayConstructor:
		return e.evalArrayConstructor(node, env)
	case *ast.CaseStatement:
		return e.evalCaseStatement(node, env)
	case nil:
		return newError("cannot evaluate a missing expression")
	}
	return newError("unknown node type: %T", node)
}
