package evaluator

import (
	"iter"

	"github.com/funvibe/caselang/internal/ast"
	"github.com/funvibe/caselang/internal/config"
)

// evalCaseStatement evaluates the test once and runs the body of the first
// option with a matching candidate. Default options are skipped during the
// scan; the first one seen runs only when nothing matched. Without a match
// or a default the result is UNDEF.
func (e *Evaluator) evalCaseStatement(node *ast.CaseStatement, env *Environment) Object {
	value := e.Eval(node.Test, env)
	if isError(value) {
		return value
	}

	level := env.EphemeralLevel()
	var fallback *ast.CaseOpt

	for _, opt := range node.Options {
		if opt.IsDefault() {
			if fallback == nil {
				fallback = opt
			}
			continue
		}
		for candidate := range opt.Candidates() {
			matched := e.EvalMatch(candidate, value, env, MatchOptions{Sensitive: config.CaseSensitive})
			if isError(matched) {
				env.UnsetEphemeral(level)
				return matched
			}
			if e.isTruthy(matched) {
				return e.evalMatchedOption(opt, env, level)
			}
		}
	}

	if fallback != nil {
		return e.evalCaseOptBody(fallback, env)
	}
	return UNDEF
}

// evalMatchedOption runs the body of the winning option. Match variables
// pushed since level are gone when it returns, whatever the outcome.
func (e *Evaluator) evalMatchedOption(opt *ast.CaseOpt, env *Environment, level int) Object {
	defer env.UnsetEphemeral(level)
	return e.evalCaseOptBody(opt, env)
}

func (e *Evaluator) evalCaseOptBody(opt *ast.CaseOpt, env *Environment) Object {
	if opt.Body == nil {
		return UNDEF
	}
	return e.Eval(opt.Body, env)
}

// OptionValues yields the evaluated candidates of opt in match order. An
// evaluation failure is yielded as an *Error and ends the sequence.
func (e *Evaluator) OptionValues(opt *ast.CaseOpt, env *Environment) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for candidate := range opt.Candidates() {
			val := e.Eval(candidate, env)
			if !yield(val) || isError(val) {
				return
			}
		}
	}
}
