package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/caselang/internal/config"
	"github.com/funvibe/caselang/internal/evaluator"
)

const hostsDocument = `
vars:
  host: WEB042
program:
  - case:
      test: {var: host}
      options:
        - match: default
          body: [unknown]
        - match: [db01, {regex: '^web(\d+)$'}]
          body: [{var: "1"}]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	old := config.CaseSensitive
	t.Cleanup(func() { config.CaseSensitive = old })

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr, ^uintptr(0))
	return code, stdout.String(), stderr.String()
}

func TestRunEvaluatesDocument(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "hosts.yaml", strings.ReplaceAll(hostsDocument, "WEB042", "web042"))

	code, out, errOut := runCLI(t, "", "-color=never", doc)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != "042\n" {
		t.Errorf("stdout = %q, want %q", out, "042\n")
	}
}

func TestRunFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "hosts.yaml", hostsDocument)

	code, out, errOut := runCLI(t, "", "-color=never", doc)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != "unknown\n" {
		t.Errorf("stdout = %q, want %q", out, "unknown\n")
	}
}

func TestRunSettingsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "caselang.yaml", "case_sensitive: false\n")
	doc := writeFile(t, dir, "doc.yaml", `
program:
  - case:
      test: WEB
      options:
        - match: web
          body: [folded]
`)

	code, out, _ := runCLI(t, "", "-color=never", doc)
	if code != 0 || out != "folded\n" {
		t.Errorf("got %d %q, want 0 %q", code, out, "folded\n")
	}

	code, out, _ = runCLI(t, "", "-color=never", "-sensitive", doc)
	if code != 0 || out != "undef\n" {
		t.Errorf("with -sensitive got %d %q, want 0 %q", code, out, "undef\n")
	}
}

func TestRunSensitiveFlagBeatsEnvironment(t *testing.T) {
	t.Setenv(config.CaseSensitiveEnvVar, "false")
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.yaml", `
program:
  - case:
      test: Value
      options:
        - match: VALUE
          body: [folded]
        - match: default
          body: [exact]
`)

	code, out, _ := runCLI(t, "", "-color=never", doc)
	if code != 0 || out != "folded\n" {
		t.Errorf("env only: got %d %q, want 0 %q", code, out, "folded\n")
	}

	code, out, _ = runCLI(t, "", "-sensitive", "-color=never", doc)
	if code != 0 || out != "exact\n" {
		t.Errorf("-sensitive: got %d %q, want 0 %q", code, out, "exact\n")
	}
}

func TestRunEnvironmentBeatsSettingsFile(t *testing.T) {
	t.Setenv(config.CaseSensitiveEnvVar, "true")
	dir := t.TempDir()
	writeFile(t, dir, "caselang.yaml", "case_sensitive: false\n")
	doc := writeFile(t, dir, "doc.yaml", "program: [{case: {test: A, options: [{match: a, body: [folded]}]}}]\n")

	code, out, _ := runCLI(t, "", "-color=never", doc)
	if code != 0 || out != "undef\n" {
		t.Errorf("got %d %q, want 0 %q", code, out, "undef\n")
	}
}

func TestTraceObserverMissingCandidate(t *testing.T) {
	var buf bytes.Buffer
	observe := traceObserver(log.New(&buf, "", 0), "run")
	observe(nil, &evaluator.String{Value: "v"}, evaluator.MatchOptions{}, evaluator.FALSE)

	want := "[run] match <missing> against \"v\": false\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRunTraceAndStdin(t *testing.T) {
	code, out, errOut := runCLI(t, hostsDocument, "-trace", "-color=never", "-")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != "unknown\n" {
		t.Errorf("stdout = %q", out)
	}
	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	if len(lines) != 2 {
		t.Fatalf("trace lines = %d, want 2:\n%s", len(lines), errOut)
	}
	if !strings.Contains(lines[0], "match 'db01' against \"WEB042\" (sensitive=false): false") {
		t.Errorf("unexpected trace line %q", lines[0])
	}
	if !strings.Contains(lines[1], `match /^web(\d+)$/`) {
		t.Errorf("unexpected trace line %q", lines[1])
	}
}

func TestRunPrint(t *testing.T) {
	code, out, _ := runCLI(t, "program: [{case: {test: a, options: [{match: a, body: [b]}]}}]", "-print", "-color=never", "-")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "case 'a' {\n  'a': {\n    'b'\n  }\n}\nb\n"
	if out != want {
		t.Errorf("stdout =\n%s\nwant\n%s", out, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		args []string
		code int
		msg  string
	}{
		{"runtime", "program: [{var: missing}]", []string{"-"}, 1, "[R001] unknown variable: $missing"},
		{"load", "program: [1.5]", []string{"-"}, 1, "[L003]"},
		{"bad color", "program: []", []string{"-color=pink", "-"}, 2, "-color must be one of"},
		{"no document", "", []string{}, 2, "expected exactly one document"},
		{"not a document", "", []string{"notes.txt"}, 2, "not a tree document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.doc, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(errOut, tt.msg) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.msg)
			}
		})
	}
}
