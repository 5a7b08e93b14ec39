package evaluator

import (
	"github.com/funvibe/caselang/internal/diagnostics"
	"github.com/funvibe/caselang/internal/pipeline"
	"github.com/funvibe/caselang/internal/token"
)

// EvaluatorProcessor evaluates ctx.AstRoot in a fresh environment and
// stores the denotation in ctx.Result.
type EvaluatorProcessor struct {
	// MatchObserver is handed to the evaluator
	MatchObserver MatchObserver
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	eval := New()
	eval.MatchObserver = ep.MatchObserver

	env := NewEnvironment()
	result := eval.Eval(ctx.AstRoot, env)
	if err, ok := result.(*Error); ok {
		diag := diagnostics.NewError(
			diagnostics.ErrR001,
			token.Token{Line: err.Line, Column: err.Column},
			"%s",
			err.Message,
		)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
		return ctx
	}

	ctx.Result = result
	return ctx
}
