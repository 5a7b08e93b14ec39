package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/caselang/internal/ast"
	"github.com/funvibe/caselang/internal/config"
	"github.com/funvibe/caselang/internal/evaluator"
	"github.com/funvibe/caselang/internal/loader"
	"github.com/funvibe/caselang/internal/pipeline"
	"github.com/funvibe/caselang/internal/prettyprinter"

	"github.com/google/uuid"
)

type options struct {
	configPath string
	sensitive  bool
	trace      bool
	print      bool
	color      string
	document   string
	// set holds the flags given on the command line
	set map[string]bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("caselang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := &options{set: make(map[string]bool)}
	fs.StringVar(&opts.configPath, "config", "", "settings file (default: caselang.yaml found from the document directory up)")
	fs.BoolVar(&opts.sensitive, "sensitive", false, "compare case option values with case")
	fs.BoolVar(&opts.trace, "trace", false, "log every match attempt to stderr")
	fs.BoolVar(&opts.print, "print", false, "print the loaded program before evaluating it")
	fs.StringVar(&opts.color, "color", "", "colorize output: auto, always or never")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: caselang [flags] <document.yaml | ->\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one document, got %d", fs.NArg())
	}
	opts.document = fs.Arg(0)
	if opts.document != "-" && !isDocumentFile(opts.document) {
		return nil, fmt.Errorf("%s: not a tree document (want one of %s)",
			opts.document, strings.Join(config.DocumentFileExtensions, ", "))
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadSettings reads the explicit settings file or the nearest
// caselang.yaml, folds in the environment, then lets command line flags
// override both.
func loadSettings(opts *options) (*config.Settings, error) {
	path := opts.configPath
	if path == "" {
		dir := "."
		if opts.document != "-" {
			dir = filepath.Dir(opts.document)
		}
		found, err := config.FindSettings(dir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	settings := &config.Settings{Color: config.ColorAuto}
	if path != "" {
		loaded, err := config.LoadSettings(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}

	if opts.set["sensitive"] {
		settings.CaseSensitive = &opts.sensitive
	}
	if opts.set["trace"] {
		settings.Trace = opts.trace
	}
	if opts.set["color"] {
		switch opts.color {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
		default:
			return nil, fmt.Errorf("-color must be one of %s, %s, %s, got %q",
				config.ColorAuto, config.ColorAlways, config.ColorNever, opts.color)
		}
		settings.Color = opts.color
	}
	return settings, nil
}

// isDocumentFile checks if a file has a recognized document extension
func isDocumentFile(path string) bool {
	for _, ext := range config.DocumentFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func readDocument(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// traceObserver logs match attempts tagged with the run id.
func traceObserver(logger *log.Logger, runID string) evaluator.MatchObserver {
	return func(candidate ast.Expression, value evaluator.Object, opts evaluator.MatchOptions, result evaluator.Object) {
		if candidate == nil {
			logger.Printf("[%s] match <missing> against %q: %s", runID, value.Inspect(), result.Inspect())
			return
		}
		tok := candidate.GetToken()
		logger.Printf("[%s] %d:%d match %s against %q (sensitive=%t): %s",
			runID, tok.Line, tok.Column, prettyprinter.Print(candidate), value.Inspect(), opts.Sensitive, result.Inspect())
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, stdoutFd uintptr) int {
	logger := log.New(stderr, "", 0)

	opts, err := parseArgs(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		logger.Println(err)
		return 2
	}
	settings, err := loadSettings(opts)
	if err != nil {
		logger.Println(err)
		return 2
	}
	settings.Apply()
	paint := newPainter(settings.Color, stdoutFd)

	source, err := readDocument(opts.document, stdin)
	if err != nil {
		logger.Println(err)
		return 1
	}

	filePath := opts.document
	if filePath == "-" {
		filePath = "<stdin>"
	}
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = filePath

	evalProcessor := &evaluator.EvaluatorProcessor{}
	if settings.Trace {
		evalProcessor.MatchObserver = traceObserver(logger, uuid.NewString())
	}

	stages := []pipeline.Processor{&loader.LoaderProcessor{}}
	if opts.print {
		stages = append(stages, &printProcessor{out: stdout})
	}
	stages = append(stages, evalProcessor)

	ctx = pipeline.New(stages...).Run(ctx)
	if len(ctx.Errors) > 0 {
		for _, diag := range ctx.Errors {
			logger.Println(paint.err(diag.Error()))
		}
		return 1
	}

	if result, ok := ctx.Result.(evaluator.Object); ok {
		fmt.Fprintln(stdout, paint.value(result))
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Stdout.Fd()))
}
