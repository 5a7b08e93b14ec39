package main

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/caselang/internal/config"
	"github.com/funvibe/caselang/internal/evaluator"
	"github.com/funvibe/caselang/internal/pipeline"
	"github.com/funvibe/caselang/internal/prettyprinter"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiGray  = "\x1b[90m"
)

type painter struct {
	enabled bool
}

// newPainter decides on color once. auto colors only a terminal and
// honors NO_COLOR and TERM=dumb.
func newPainter(mode string, fd uintptr) painter {
	switch mode {
	case config.ColorAlways:
		return painter{enabled: true}
	case config.ColorNever:
		return painter{}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return painter{}
	}
	if os.Getenv("TERM") == "dumb" {
		return painter{}
	}
	return painter{enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

func (p painter) wrap(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + ansiReset
}

func (p painter) err(s string) string { return p.wrap(ansiRed, s) }

func (p painter) value(obj evaluator.Object) string {
	if obj.Type() == evaluator.UNDEF_OBJ {
		return p.wrap(ansiGray, obj.Inspect())
	}
	return p.wrap(ansiGreen, obj.Inspect())
}

// printProcessor writes the loaded program as source text.
type printProcessor struct {
	out io.Writer
}

func (pp *printProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}
	fmt.Fprintln(pp.out, prettyprinter.Print(ctx.AstRoot))
	return ctx
}
