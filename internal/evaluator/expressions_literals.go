package evaluator

import (
	"github.com/funvibe/caselang/internal/ast"
	"github.com/wasilibs/go-re2"
)

func (e *Evaluator) evalVariable(node *ast.Variable, env *Environment) Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	// Captures a pattern did not produce read as undef.
	if IsEphemeralName(node.Value) {
		return UNDEF
	}
	return newError("unknown variable: $%s", node.Value)
}

func (e *Evaluator) evalRegexLiteral(node *ast.RegexLiteral) Object {
	re, err := e.compileRegex(node.Pattern)
	if err != nil {
		return newError("invalid regex /%s/: %v", node.Pattern, err)
	}
	return &Regexp{Pattern: node.Pattern, re: re}
}

func (e *Evaluator) compileRegex(pattern string) (*re2.Regexp, error) {
	if re, ok := e.regexCache[pattern]; ok {
		return re, nil
	}
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if e.regexCache == nil {
		e.regexCache = make(map[string]*re2.Regexp)
	}
	e.regexCache[pattern] = re
	return re, nil
}

func (e *Evaluator) evalArrayConstructor(node *ast.ArrayConstructor, env *Environment) Object {
	elements := make([]Object, 0, len(node.Elements))
	for _, el := range node.Elements {
		val := e.Eval(el, env)
		if isError(val) {
			return val
		}
		elements = append(elements, val)
	}
	return &Array{Elements: elements}
}
