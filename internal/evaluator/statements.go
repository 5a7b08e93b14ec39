package evaluator

import (
	"github.com/funvibe/caselang/internal/ast"
)

// evalStatements returns the value of the last statement, or UNDEF for none.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *Environment) Object {
	var result Object = UNDEF
	for _, stmt := range stmts {
		result = e.Eval(stmt, env)
		if isError(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalAssignStatement(node *ast.AssignStatement, env *Environment) Object {
	if node.Name == nil {
		return newError("assignment without a variable")
	}
	name := node.Name.Value
	if IsEphemeralName(name) {
		return newError("cannot assign to match variable $%s", name)
	}
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	if !env.Define(name, val) {
		return newError("cannot reassign variable $%s", name)
	}
	return val
}
