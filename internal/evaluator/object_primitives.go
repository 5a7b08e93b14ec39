package evaluator

import (
	"strconv"
	"strings"

	"github.com/wasilibs/go-re2"
)

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// Undef is the absence of a value.
type Undef struct{}

func (u *Undef) Type() ObjectType { return UNDEF_OBJ }
func (u *Undef) Inspect() string  { return "undef" }

type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Regexp is the value of a regex literal.
type Regexp struct {
	Pattern string
	re      *re2.Regexp
}

func (r *Regexp) Type() ObjectType { return REGEXP_OBJ }
func (r *Regexp) Inspect() string  { return "/" + r.Pattern + "/" }

// DefaultValue is the value of the default marker.
type DefaultValue struct{}

func (d *DefaultValue) Type() ObjectType { return DEFAULT_OBJ }
func (d *DefaultValue) Inspect() string  { return "default" }

var (
	UNDEF = &Undef{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)
