// Package loader assembles evaluation trees from YAML tree documents.
//
// A document has two optional sections:
//
//	vars:               # initial variables, bound in order
//	  host: web01
//	program:            # statements; the last one's value is the result
//	  - case:
//	      test: {var: host}
//	      options:
//	        - match: [{regex: '^web(\d+)'}, db01]
//	          body: [{var: "1"}]
//	        - match: default
//	          body: [unknown]
//
// Expressions are tagged single-key mappings ({string: ..}, {int: ..},
// {bool: ..}, {name: ..}, {undef: ..}, {var: ..}, {regex: ..}, {array: [..]},
// {case: {..}}) or shorthands: scalars denote literals of their YAML type,
// null denotes undef, sequences denote arrays and the plain scalar
// `default` is the default marker. A statement is an expression or
// {set: name, value: expr}.
package loader

import (
	"os"
	"strconv"

	"github.com/funvibe/caselang/internal/ast"
	"github.com/funvibe/caselang/internal/config"
	"github.com/funvibe/caselang/internal/diagnostics"
	"github.com/funvibe/caselang/internal/token"

	"gopkg.in/yaml.v3"
)

type Loader struct {
	file   string
	errors []*diagnostics.DiagnosticError
}

// LoadFile reads and loads a tree document.
func LoadFile(path string) (*ast.Program, []*diagnostics.DiagnosticError) {
	data, err := os.ReadFile(path)
	if err != nil {
		diag := diagnostics.NewError(diagnostics.ErrL001, token.Token{}, "reading %s: %v", path, err)
		diag.File = path
		return nil, []*diagnostics.DiagnosticError{diag}
	}
	return Load(data, path)
}

// Load builds a program from document bytes. The path is used for
// diagnostics only. The program is nil when any diagnostic is returned.
func Load(data []byte, path string) (*ast.Program, []*diagnostics.DiagnosticError) {
	l := &Loader{file: path}
	prog := l.load(data)
	if len(l.errors) > 0 {
		return nil, l.errors
	}
	prog.File = path
	return prog, nil
}

func (l *Loader) errorf(code diagnostics.ErrorCode, node *yaml.Node, format string, a ...interface{}) {
	tok := token.Token{}
	if node != nil {
		tok = tokenOf(node, token.ILLEGAL)
	}
	diag := diagnostics.NewError(code, tok, format, a...)
	diag.File = l.file
	l.errors = append(l.errors, diag)
}

func tokenOf(node *yaml.Node, typ token.TokenType) token.Token {
	return token.Token{Type: typ, Lexeme: node.Value, Line: node.Line, Column: node.Column}
}

func (l *Loader) load(data []byte) *ast.Program {
	prog := &ast.Program{}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		l.errorf(diagnostics.ErrL001, nil, "parsing document: %v", err)
		return prog
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return prog
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		l.errorf(diagnostics.ErrL003, root, "document must be a mapping with %q and %q", config.VarsKey, config.ProgramKey)
		return prog
	}

	// vars come first whatever the section order
	var vars, body []ast.Statement
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case config.VarsKey:
			vars = append(vars, l.loadVars(value)...)
		case config.ProgramKey:
			body = append(body, l.loadStatements(value)...)
		default:
			l.errorf(diagnostics.ErrL002, key, "unknown section %q", key.Value)
		}
	}
	prog.Statements = append(vars, body...)
	return prog
}

// loadVars turns the vars mapping into assignments, in document order.
func (l *Loader) loadVars(node *yaml.Node) []ast.Statement {
	if node.Kind != yaml.MappingNode {
		l.errorf(diagnostics.ErrL003, node, "%s must be a mapping", config.VarsKey)
		return nil
	}
	var stmts []ast.Statement
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if stmt := l.assignment(key, value); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (l *Loader) loadStatements(node *yaml.Node) []ast.Statement {
	if node.Kind != yaml.SequenceNode {
		if stmt := l.loadStatement(node); stmt != nil {
			return []ast.Statement{stmt}
		}
		return nil
	}
	stmts := make([]ast.Statement, 0, len(node.Content))
	for _, child := range node.Content {
		if stmt := l.loadStatement(child); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (l *Loader) loadStatement(node *yaml.Node) ast.Statement {
	if isSet(node) {
		var nameNode, valueNode *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			switch key.Value {
			case config.SetTag:
				nameNode = value
			case config.ValueKey:
				valueNode = value
			default:
				l.errorf(diagnostics.ErrL002, key, "unknown %s entry %q", config.SetTag, key.Value)
				return nil
			}
		}
		if valueNode == nil {
			l.errorf(diagnostics.ErrL003, node, "%s needs a %q entry", config.SetTag, config.ValueKey)
			return nil
		}
		return l.assignment(nameNode, valueNode)
	}

	expr := l.loadExpression(node)
	if expr == nil {
		return nil
	}
	if cs, ok := expr.(*ast.CaseStatement); ok {
		return cs
	}
	return &ast.ExpressionStatement{Token: expr.GetToken(), Expression: expr}
}

func isSet(node *yaml.Node) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == config.SetTag {
			return true
		}
	}
	return false
}

func (l *Loader) assignment(key, value *yaml.Node) ast.Statement {
	if key.Kind != yaml.ScalarNode || !isVariableName(key.Value) {
		l.errorf(diagnostics.ErrL004, key, "invalid variable name %q", key.Value)
		return nil
	}
	expr := l.loadExpression(value)
	if expr == nil {
		return nil
	}
	return &ast.AssignStatement{
		Token: tokenOf(key, token.ASSIGN),
		Name:  &ast.Variable{Token: tokenOf(key, token.VARIABLE), Value: key.Value},
		Value: expr,
	}
}

func (l *Loader) loadExpression(node *yaml.Node) ast.Expression {
	switch node.Kind {
	case yaml.AliasNode:
		return l.loadExpression(node.Alias)
	case yaml.ScalarNode:
		return l.loadScalar(node)
	case yaml.SequenceNode:
		return l.loadArray(node, node.Content)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			l.errorf(diagnostics.ErrL003, node, "expression must be a mapping with a single tag")
			return nil
		}
		return l.loadTagged(node.Content[0], node.Content[1])
	}
	l.errorf(diagnostics.ErrL003, node, "unexpected node")
	return nil
}

func (l *Loader) loadScalar(node *yaml.Node) ast.Expression {
	switch node.ShortTag() {
	case "!!null":
		return &ast.UndefLiteral{Token: tokenOf(node, token.UNDEF)}
	case "!!bool":
		return l.boolLiteral(node)
	case "!!int":
		return l.intLiteral(node)
	case "!!str":
		if node.Style == 0 && node.Value == config.DefaultTag {
			return &ast.Default{Token: tokenOf(node, token.DEFAULT)}
		}
		return &ast.StringLiteral{Token: tokenOf(node, token.STRING), Value: node.Value}
	}
	l.errorf(diagnostics.ErrL003, node, "unsupported scalar %s %q", node.ShortTag(), node.Value)
	return nil
}

func (l *Loader) boolLiteral(node *yaml.Node) ast.Expression {
	b, err := strconv.ParseBool(node.Value)
	if err != nil {
		l.errorf(diagnostics.ErrL003, node, "invalid boolean %q", node.Value)
		return nil
	}
	return &ast.BooleanLiteral{Token: tokenOf(node, token.BOOLEAN), Value: b}
}

func (l *Loader) intLiteral(node *yaml.Node) ast.Expression {
	n, err := strconv.ParseInt(node.Value, 0, 64)
	if err != nil {
		l.errorf(diagnostics.ErrL003, node, "invalid integer %q", node.Value)
		return nil
	}
	return &ast.IntegerLiteral{Token: tokenOf(node, token.INT), Value: n}
}

func (l *Loader) loadArray(node *yaml.Node, items []*yaml.Node) ast.Expression {
	arr := &ast.ArrayConstructor{Token: tokenOf(node, token.LBRACKET)}
	arr.Token.Lexeme = "["
	ok := true
	for _, item := range items {
		el := l.loadExpression(item)
		if el == nil {
			ok = false
			continue
		}
		arr.Elements = append(arr.Elements, el)
	}
	if !ok {
		return nil
	}
	return arr
}

func (l *Loader) loadTagged(tag, value *yaml.Node) ast.Expression {
	scalar := func() bool {
		if value.Kind != yaml.ScalarNode {
			l.errorf(diagnostics.ErrL003, value, "%s takes a scalar", tag.Value)
			return false
		}
		return true
	}

	switch tag.Value {
	case config.StringTag:
		if !scalar() {
			return nil
		}
		return &ast.StringLiteral{Token: tokenOf(value, token.STRING), Value: value.Value}
	case config.NameTag:
		if !scalar() {
			return nil
		}
		return &ast.Name{Token: tokenOf(value, token.NAME), Value: value.Value}
	case config.IntTag:
		if !scalar() {
			return nil
		}
		return l.intLiteral(value)
	case config.BoolTag:
		if !scalar() {
			return nil
		}
		return l.boolLiteral(value)
	case config.UndefTag:
		return &ast.UndefLiteral{Token: tokenOf(tag, token.UNDEF)}
	case config.DefaultTag:
		return &ast.Default{Token: tokenOf(tag, token.DEFAULT)}
	case config.VarTag:
		if !scalar() {
			return nil
		}
		if !isVariableName(value.Value) && !isCaptureName(value.Value) {
			l.errorf(diagnostics.ErrL004, value, "invalid variable name %q", value.Value)
			return nil
		}
		return &ast.Variable{Token: tokenOf(value, token.VARIABLE), Value: value.Value}
	case config.RegexTag:
		if !scalar() {
			return nil
		}
		return &ast.RegexLiteral{Token: tokenOf(value, token.REGEX), Pattern: value.Value}
	case config.ArrayTag:
		if value.Kind != yaml.SequenceNode {
			l.errorf(diagnostics.ErrL003, value, "%s takes a sequence", tag.Value)
			return nil
		}
		return l.loadArray(tag, value.Content)
	case config.CaseTag:
		return l.loadCase(tag, value)
	}
	l.errorf(diagnostics.ErrL002, tag, "unknown tag %q", tag.Value)
	return nil
}

func (l *Loader) loadCase(tag, node *yaml.Node) ast.Expression {
	if node.Kind != yaml.MappingNode {
		l.errorf(diagnostics.ErrL003, node, "%s takes a mapping with %q and %q", config.CaseTag, config.TestKey, config.OptionsKey)
		return nil
	}
	cs := &ast.CaseStatement{Token: tokenOf(tag, token.CASE)}
	var testNode, optionsNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case config.TestKey:
			testNode = value
		case config.OptionsKey:
			optionsNode = value
		default:
			l.errorf(diagnostics.ErrL002, key, "unknown %s entry %q", config.CaseTag, key.Value)
		}
	}
	if testNode == nil {
		l.errorf(diagnostics.ErrL003, node, "%s needs a %q entry", config.CaseTag, config.TestKey)
		return nil
	}
	cs.Test = l.loadExpression(testNode)

	if optionsNode != nil {
		if optionsNode.Kind != yaml.SequenceNode {
			l.errorf(diagnostics.ErrL003, optionsNode, "%s must be a sequence", config.OptionsKey)
			return nil
		}
		for _, optNode := range optionsNode.Content {
			if opt := l.loadCaseOpt(optNode); opt != nil {
				cs.Options = append(cs.Options, opt)
			}
		}
	}
	if cs.Test == nil {
		return nil
	}
	return cs
}

func (l *Loader) loadCaseOpt(node *yaml.Node) *ast.CaseOpt {
	if node.Kind != yaml.MappingNode {
		l.errorf(diagnostics.ErrL003, node, "option must be a mapping with %q and %q", config.MatchKey, config.BodyKey)
		return nil
	}
	var matchNode, bodyNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case config.MatchKey:
			matchNode = value
		case config.BodyKey:
			bodyNode = value
		default:
			l.errorf(diagnostics.ErrL002, key, "unknown option entry %q", key.Value)
		}
	}
	if matchNode == nil {
		l.errorf(diagnostics.ErrL003, node, "option needs a %q entry", config.MatchKey)
		return nil
	}
	value := l.loadExpression(matchNode)
	if value == nil {
		return nil
	}

	body := &ast.BlockStatement{Token: tokenOf(node, token.LBRACE)}
	body.Token.Lexeme = "{"
	if bodyNode != nil {
		body.Statements = l.loadStatements(bodyNode)
	}
	opt := ast.NewCaseOpt(value, body)
	opt.Token = tokenOf(matchNode, token.CASE)
	opt.Token.Lexeme = ":"
	return opt
}

// isVariableName accepts a lowercase letter or underscore followed by
// letters, digits and underscores.
func isVariableName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z'):
		case i > 0 && ((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return s != ""
}

func isCaptureName(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}
