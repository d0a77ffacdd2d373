package scanner

import (
	"sort"
	"strings"
)

// Grammar holds the per-language token tables. Rule order is fixed by the
// scan engine; a grammar only supplies the data the rules consult.
type Grammar struct {
	Name        string
	LineComment string
	Quotes      string
	Keywords    map[string]bool
	Builtins    map[string]bool
	Operators   map[string]bool
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// commonOperators is the minimal operator set shared by every grammar,
// including the fallback.
func commonOperators() map[string]bool {
	return set(
		"==", "!=", "<=", ">=", "&&", "||",
		"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~", ".",
	)
}

func merge(dst map[string]bool, extra ...string) map[string]bool {
	for _, op := range extra {
		dst[op] = true
	}
	return dst
}

var grammars = map[string]*Grammar{
	"python": {
		Name:        "python",
		LineComment: "#",
		Quotes:      `"'`,
		Keywords: set(
			"False", "None", "True", "and", "as", "assert", "async", "await",
			"break", "class", "continue", "def", "del", "elif", "else",
			"except", "finally", "for", "from", "global", "if", "import",
			"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
			"return", "try", "while", "with", "yield",
		),
		Builtins: set(
			"abs", "bool", "bytes", "dict", "enumerate", "filter", "float",
			"input", "int", "isinstance", "len", "list", "map", "max", "min",
			"open", "print", "range", "set", "sorted", "str", "sum", "super",
			"tuple", "type", "zip",
		),
		Operators: merge(commonOperators(),
			"**=", "//=", ">>=", "<<=",
			"**", "//", "+=", "-=", "*=", "/=", "%=", "<<", ">>", "@",
		),
	},
	"go": {
		Name:        "go",
		LineComment: "//",
		Quotes:      "\"'`",
		Keywords: set(
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return",
			"select", "struct", "switch", "type", "var",
		),
		Builtins: set(
			"append", "bool", "byte", "cap", "close", "complex", "copy",
			"delete", "error", "false", "float32", "float64", "imag", "int",
			"int16", "int32", "int64", "int8", "iota", "len", "make", "new",
			"nil", "panic", "print", "println", "real", "recover", "rune",
			"string", "true", "uint", "uint16", "uint32", "uint64", "uint8",
			"uintptr",
		),
		Operators: merge(commonOperators(),
			"<<=", ">>=", "&^=", "...",
			"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", ":=", "<-",
			"++", "--", "<<", ">>", "&^",
		),
	},
	"javascript": {
		Name:        "javascript",
		LineComment: "//",
		Quotes:      "\"'`",
		Keywords: set(
			"async", "await", "break", "case", "catch", "class", "const",
			"continue", "debugger", "default", "delete", "do", "else",
			"export", "extends", "finally", "for", "function", "if",
			"import", "in", "instanceof", "let", "new", "of", "return",
			"static", "super", "switch", "this", "throw", "try", "typeof",
			"var", "void", "while", "with", "yield",
		),
		Builtins: set(
			"Array", "Boolean", "Infinity", "JSON", "Math", "NaN", "Number",
			"Object", "Promise", "String", "console", "false", "module",
			"null", "parseFloat", "parseInt", "require", "true", "undefined",
		),
		Operators: merge(commonOperators(),
			"===", "!==", "**=", ">>>", "<<=", ">>=",
			"**", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
			"++", "--", "<<", ">>", "=>", "?",
		),
	},
	"c": {
		Name:        "c",
		LineComment: "//",
		Quotes:      `"'`,
		Keywords: set(
			"auto", "break", "case", "char", "const", "continue", "default",
			"do", "double", "else", "enum", "extern", "float", "for", "goto",
			"if", "inline", "int", "long", "register", "restrict", "return",
			"short", "signed", "sizeof", "static", "struct", "switch",
			"typedef", "union", "unsigned", "void", "volatile", "while",
		),
		Builtins: set(
			"FILE", "NULL", "calloc", "free", "malloc", "memcpy", "memset",
			"printf", "realloc", "scanf", "size_t", "strcmp", "strcpy",
			"strlen",
		),
		Operators: merge(commonOperators(),
			"<<=", ">>=", "...",
			"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
			"++", "--", "<<", ">>", "->", "?",
		),
	},
}

var aliases = map[string]string{
	"py":     "python",
	"python3": "python",
	"golang": "go",
	"js":     "javascript",
	"node":   "javascript",
	"h":      "c",
}

// fallback carries no keyword or builtin tables: an unknown language can only
// produce identifiers, operators and punctuation.
var fallback = &Grammar{
	Name:      "plain",
	Quotes:    `"'`,
	Keywords:  map[string]bool{},
	Builtins:  map[string]bool{},
	Operators: commonOperators(),
}

// Lookup returns the grammar registered for language, case-insensitively,
// following aliases such as "py" and "js".
func Lookup(language string) (*Grammar, bool) {
	name := strings.ToLower(strings.TrimSpace(language))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	if name == "plain" || name == "text" {
		return fallback, true
	}
	g, ok := grammars[name]
	return g, ok
}

// Fallback returns the generic grammar used for unrecognized languages.
func Fallback() *Grammar { return fallback }

// Languages lists the registered grammar names.
func Languages() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
