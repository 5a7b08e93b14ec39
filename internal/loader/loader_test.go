package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/caselang/internal/ast"
	"github.com/funvibe/caselang/internal/diagnostics"
)

const hostDocument = `
vars:
  host: web042
program:
  - case:
      test: {var: host}
      options:
        - match: [{regex: '^web(\d+)'}, db01]
          body:
            - {set: kind, value: web}
            - {var: "1"}
        - match: default
          body: [unknown]
`

func TestLoadDocument(t *testing.T) {
	prog, errs := Load([]byte(hostDocument), "hosts.yaml")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if prog.File != "hosts.yaml" {
		t.Errorf("File = %q, want hosts.yaml", prog.File)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}

	assign, ok := prog.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.AssignStatement", prog.Statements[0])
	}
	if assign.Name.Value != "host" {
		t.Errorf("name = %q, want host", assign.Name.Value)
	}
	if lit, ok := assign.Value.(*ast.StringLiteral); !ok || lit.Value != "web042" {
		t.Errorf("value = %#v, want string web042", assign.Value)
	}

	cs, ok := prog.Statements[1].(*ast.CaseStatement)
	if !ok {
		t.Fatalf("statement 1 is %T, want *ast.CaseStatement", prog.Statements[1])
	}
	if cs.Token.Line != 5 {
		t.Errorf("case line = %d, want 5", cs.Token.Line)
	}
	if v, ok := cs.Test.(*ast.Variable); !ok || v.Value != "host" {
		t.Errorf("test = %#v, want $host", cs.Test)
	}
	if len(cs.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(cs.Options))
	}

	first := cs.Options[0]
	if first.IsDefault() {
		t.Error("first option should not be default")
	}
	arr, ok := first.Value.(*ast.ArrayConstructor)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("first match = %#v, want two-element array", first.Value)
	}
	if rx, ok := arr.Elements[0].(*ast.RegexLiteral); !ok || rx.Pattern != `^web(\d+)` {
		t.Errorf("first candidate = %#v", arr.Elements[0])
	}
	if len(first.Body.Statements) != 2 {
		t.Errorf("first body has %d statements, want 2", len(first.Body.Statements))
	}
	if !cs.Options[1].IsDefault() {
		t.Error("second option should be default")
	}
}

func TestLoadVarsAfterProgram(t *testing.T) {
	prog, errs := Load([]byte("program:\n  - {var: host}\nvars:\n  host: web01\n"), "late.yaml")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	assign, ok := prog.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.AssignStatement", prog.Statements[0])
	}
	if assign.Name.Value != "host" {
		t.Errorf("name = %q, want host", assign.Name.Value)
	}
	if _, ok := prog.Statements[1].(*ast.ExpressionStatement); !ok {
		t.Errorf("statement 1 is %T, want *ast.ExpressionStatement", prog.Statements[1])
	}
}

func TestLoadScalars(t *testing.T) {
	doc := `
program:
  - plain
  - 'default'
  - default
  - 42
  - true
  - ~
  - {name: bare}
  - {int: "7"}
  - {undef: true}
  - [a, {array: [b]}]
`
	prog, errs := Load([]byte(doc), "scalars.yaml")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []string{
		"*ast.StringLiteral",
		"*ast.StringLiteral",
		"*ast.Default",
		"*ast.IntegerLiteral",
		"*ast.BooleanLiteral",
		"*ast.UndefLiteral",
		"*ast.Name",
		"*ast.IntegerLiteral",
		"*ast.UndefLiteral",
		"*ast.ArrayConstructor",
	}
	if len(prog.Statements) != len(want) {
		t.Fatalf("got %d statements, want %d", len(prog.Statements), len(want))
	}
	for i, stmt := range prog.Statements {
		expr := stmt.(*ast.ExpressionStatement).Expression
		if got := typeName(expr); got != want[i] {
			t.Errorf("statement %d: got %s, want %s", i, got, want[i])
		}
	}
	if n := prog.Statements[7].(*ast.ExpressionStatement).Expression.(*ast.IntegerLiteral); n.Value != 7 {
		t.Errorf("int tag = %d, want 7", n.Value)
	}
}

func typeName(expr ast.Expression) string {
	switch expr.(type) {
	case *ast.StringLiteral:
		return "*ast.StringLiteral"
	case *ast.Default:
		return "*ast.Default"
	case *ast.IntegerLiteral:
		return "*ast.IntegerLiteral"
	case *ast.BooleanLiteral:
		return "*ast.BooleanLiteral"
	case *ast.UndefLiteral:
		return "*ast.UndefLiteral"
	case *ast.Name:
		return "*ast.Name"
	case *ast.ArrayConstructor:
		return "*ast.ArrayConstructor"
	}
	return "other"
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code diagnostics.ErrorCode
		line int
	}{
		{"not yaml", "program: [", diagnostics.ErrL001, 0},
		{"not a mapping", "- a\n", diagnostics.ErrL003, 1},
		{"unknown section", "extra: 1\n", diagnostics.ErrL002, 1},
		{"unknown tag", "program:\n  - {regexp: a}\n", diagnostics.ErrL002, 2},
		{"float", "program:\n  - 1.5\n", diagnostics.ErrL003, 2},
		{"bad var name", "vars:\n  Host: a\n", diagnostics.ErrL004, 2},
		{"capture assignment", "program:\n  - {set: \"1\", value: a}\n", diagnostics.ErrL004, 2},
		{"case without test", "program:\n  - case: {options: []}\n", diagnostics.ErrL003, 2},
		{"option without match", "program:\n  - case:\n      test: a\n      options:\n        - body: [b]\n", diagnostics.ErrL003, 5},
		{"two tags", "program:\n  - {string: a, name: b}\n", diagnostics.ErrL003, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, errs := Load([]byte(tt.doc), "bad.yaml")
			if prog != nil {
				t.Error("expected nil program")
			}
			if len(errs) == 0 {
				t.Fatal("expected errors")
			}
			if errs[0].Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", errs[0].Code, tt.code, errs[0].Error())
			}
			if errs[0].Token.Line != tt.line {
				t.Errorf("line = %d, want %d", errs[0].Token.Line, tt.line)
			}
			if errs[0].File != "bad.yaml" {
				t.Errorf("file = %q, want bad.yaml", errs[0].File)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte(hostDocument), 0644); err != nil {
		t.Fatal(err)
	}
	prog, errs := LoadFile(path)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if prog.File != path {
		t.Errorf("File = %q, want %q", prog.File, path)
	}

	_, errs = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "missing.yaml") {
		t.Errorf("errors = %v, want one reading error", errs)
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	prog, errs := Load(nil, "empty.yaml")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Statements) != 0 {
		t.Errorf("expected no statements, got %d", len(prog.Statements))
	}
}
