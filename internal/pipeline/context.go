package pipeline

import (
	"github.com/funvibe/caselang/internal/ast"
	"github.com/funvibe/caselang/internal/diagnostics"
)

// Processor is one stage of a pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries a document through the stages.
type PipelineContext struct {
	FilePath string
	Source   []byte
	AstRoot  ast.Node
	// Result is the denotation of the program (an evaluator.Object).
	Result interface{}
	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(source []byte) *PipelineContext {
	return &PipelineContext{Source: source}
}
