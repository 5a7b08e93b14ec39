package evaluator

type ObjectType string

const (
	STRING_OBJ  = "STRING"
	INTEGER_OBJ = "INTEGER"
	BOOLEAN_OBJ = "BOOLEAN"
	UNDEF_OBJ   = "UNDEF"
	ARRAY_OBJ   = "ARRAY"
	REGEXP_OBJ  = "REGEXP"
	DEFAULT_OBJ = "DEFAULT"
	ERROR_OBJ   = "ERROR"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}
