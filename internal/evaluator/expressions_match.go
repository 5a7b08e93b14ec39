package evaluator

import (
	"github.com/funvibe/caselang/internal/ast"
	"github.com/wasilibs/go-re2"
)

// EvalMatch tests value against a case candidate. It returns TRUE, FALSE
// or an *Error. A successful regex match leaves its captures in env as a
// new ephemeral level; the caller owns their removal.
func (e *Evaluator) EvalMatch(candidate ast.Expression, value Object, env *Environment, opts MatchOptions) Object {
	result := e.evalMatch(candidate, value, env, opts)
	if err, ok := result.(*Error); ok && err.Line == 0 && candidate != nil {
		tok := candidate.GetToken()
		err.Line = tok.Line
		err.Column = tok.Column
	}
	if e.MatchObserver != nil {
		e.MatchObserver(candidate, value, opts, result)
	}
	return result
}

func (e *Evaluator) evalMatch(candidate ast.Expression, value Object, env *Environment, opts MatchOptions) Object {
	switch c := candidate.(type) {
	case *ast.Default:
		return TRUE
	case *ast.RegexLiteral:
		re, err := e.compileRegex(c.Pattern)
		if err != nil {
			return newError("invalid regex /%s/: %v", c.Pattern, err)
		}
		return e.matchRegexp(re, value, env)
	}

	expected := e.Eval(candidate, env)
	if isError(expected) {
		return expected
	}
	// A variable may hold a regex.
	if rx, ok := expected.(*Regexp); ok && rx.re != nil {
		return e.matchRegexp(rx.re, value, env)
	}
	return e.nativeBoolToBooleanObject(objectsEqual(expected, value, opts.Sensitive))
}

func (e *Evaluator) matchRegexp(re *re2.Regexp, value Object, env *Environment) Object {
	subject := matchString(value)
	loc := re.FindStringSubmatchIndex(subject)
	if loc == nil {
		return FALSE
	}
	groups := make([]Object, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			groups[i] = UNDEF
			continue
		}
		groups[i] = &String{Value: subject[start:end]}
	}
	env.EphemeralFromMatch(groups)
	return TRUE
}
