package config

// DocumentFileExtensions are all recognized tree document extensions
var DocumentFileExtensions = []string{".yaml", ".yml"}

// SettingsFileNames are looked up, in order, by FindSettings.
var SettingsFileNames = []string{"caselang.yaml", "caselang.yml"}

// CaseSensitiveEnvVar overrides the case sensitivity of settings files.
const CaseSensitiveEnvVar = "CASELANG_CASESENSITIVE"

// CaseSensitive controls whether case option values are compared with case.
// It is read once per match attempt. Regex options are not affected.
var CaseSensitive = false

// Node tags of tree documents
const (
	StringTag  = "string"
	IntTag     = "int"
	BoolTag    = "bool"
	NameTag    = "name"
	UndefTag   = "undef"
	VarTag     = "var"
	RegexTag   = "regex"
	ArrayTag   = "array"
	DefaultTag = "default"
	CaseTag    = "case"
	SetTag     = "set"
)

// Document sections
const (
	VarsKey    = "vars"
	ProgramKey = "program"
	TestKey    = "test"
	OptionsKey = "options"
	MatchKey   = "match"
	BodyKey    = "body"
	ValueKey   = "value"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
