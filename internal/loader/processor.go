package loader

import (
	"github.com/funvibe/caselang/internal/pipeline"
)

// LoaderProcessor builds ctx.AstRoot from ctx.Source.
type LoaderProcessor struct{}

func (lp *LoaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, errs := Load(ctx.Source, ctx.FilePath)
	if len(errs) > 0 {
		ctx.Errors = append(ctx.Errors, errs...)
		return ctx
	}
	ctx.AstRoot = prog
	return ctx
}
