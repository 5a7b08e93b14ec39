package evaluator

import (
	"fmt"
	"strings"
)

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func (e *Evaluator) isTruthy(obj Object) bool {
	if b, ok := obj.(*Boolean); ok {
		return b.Value
	}
	return false
}

func (e *Evaluator) nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// objectsEqual compares two values. Without sensitive, strings (also
// inside arrays) compare case-insensitively.
func objectsEqual(a, b Object, sensitive bool) bool {
	switch av := a.(type) {
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return false
		}
		if sensitive {
			return av.Value == bv.Value
		}
		return strings.EqualFold(av.Value, bv.Value)
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Undef:
		_, ok := b.(*Undef)
		return ok
	case *DefaultValue:
		_, ok := b.(*DefaultValue)
		return ok
	case *Regexp:
		bv, ok := b.(*Regexp)
		return ok && av.Pattern == bv.Pattern
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !objectsEqual(av.Elements[i], bv.Elements[i], sensitive) {
				return false
			}
		}
		return true
	}
	return false
}

// matchString renders a value as the subject of a regex match.
func matchString(obj Object) string {
	switch v := obj.(type) {
	case *String:
		return v.Value
	case *Undef:
		return ""
	}
	return obj.Inspect()
}
