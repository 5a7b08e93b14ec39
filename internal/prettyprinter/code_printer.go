package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/caselang/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// Print renders node as source text.
func Print(node ast.Node) string {
	p := NewCodePrinter()
	if node != nil {
		node.Accept(p)
	}
	return p.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for i, stmt := range n.Statements {
		if i > 0 {
			p.write("\n")
		}
		stmt.Accept(p)
	}
}

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n.Expression != nil {
		n.Expression.Accept(p)
	}
}

func (p *CodePrinter) VisitAssignStatement(n *ast.AssignStatement) {
	n.Name.Accept(p)
	p.write(" = ")
	n.Value.Accept(p)
}

// VisitBlockStatement prints { ... } with one statement per line.
func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		stmt.Accept(p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(quote(n.Value))
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.write(strconv.FormatInt(n.Value, 10))
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.write(strconv.FormatBool(n.Value))
}

func (p *CodePrinter) VisitName(n *ast.Name) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitUndefLiteral(n *ast.UndefLiteral) {
	p.write("undef")
}

func (p *CodePrinter) VisitVariable(n *ast.Variable) {
	p.write("$" + n.Value)
}

func (p *CodePrinter) VisitRegexLiteral(n *ast.RegexLiteral) {
	p.write("/" + strings.ReplaceAll(n.Pattern, "/", `\/`) + "/")
}

func (p *CodePrinter) VisitArrayConstructor(n *ast.ArrayConstructor) {
	p.write("[")
	p.elements(n.Elements)
	p.write("]")
}

func (p *CodePrinter) VisitDefault(n *ast.Default) {
	p.write("default")
}

func (p *CodePrinter) VisitCaseStatement(n *ast.CaseStatement) {
	p.write("case ")
	if n.Test != nil {
		n.Test.Accept(p)
	}
	if len(n.Options) == 0 {
		p.write(" {}")
		return
	}
	p.write(" {\n")
	p.indent++
	for _, opt := range n.Options {
		p.writeIndent()
		opt.Accept(p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

// VisitCaseOpt prints the candidates of an array value without brackets,
// the way options are written: 'a', /b/: { ... }
func (p *CodePrinter) VisitCaseOpt(n *ast.CaseOpt) {
	if arr, ok := n.Value.(*ast.ArrayConstructor); ok {
		p.elements(arr.Elements)
	} else if n.Value != nil {
		n.Value.Accept(p)
	}
	p.write(": ")
	if n.Body == nil {
		p.write("{}")
		return
	}
	n.Body.Accept(p)
}

func (p *CodePrinter) elements(exprs []ast.Expression) {
	for i, el := range exprs {
		if i > 0 {
			p.write(", ")
		}
		el.Accept(p)
	}
}

// quote uses single quotes, escaping backslashes and quotes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
