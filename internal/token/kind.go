package token

// Kind classifies a lexical token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident
	IntLit
	FloatLit
	StringLit

	// Keywords.
	KwLet
	KwVar
	KwFunc
	KwInit
	KwIf
	KwElse
	KwGuard
	KwSwitch
	KwCase
	KwDefault
	KwWhere
	KwReturn
	KwThrow
	KwThrows
	KwRethrows
	KwTry
	KwImport
	KwStruct
	KwClass
	KwEnum
	KwExtension
	KwProtocol
	KwTypealias
	KwFor
	KwWhile
	KwRepeat
	KwIn
	KwBreak
	KwContinue
	KwDefer
	KwAs
	KwIs
	KwNil
	KwTrue
	KwFalse
	KwSelf
	KwStatic
	KwPublic
	KwPrivate
	KwInternal
	KwFileprivate
	KwOpen
	KwOverride
	KwMutating
	KwFinal

	// Conditional-compilation directives.
	PoundIf
	PoundElseif
	PoundElse
	PoundEndif

	// Punctuation and structural operators.
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	Semicolon
	Dot
	Arrow
	At
	Assign
	Question
	Bang
	Lt
	Gt
	Operator // any other operator-character run (==, +, ??, &&, ...)
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Ident:         "ident",
	IntLit:        "int",
	FloatLit:      "float",
	StringLit:     "string",
	KwLet:         "let",
	KwVar:         "var",
	KwFunc:        "func",
	KwInit:        "init",
	KwIf:          "if",
	KwElse:        "else",
	KwGuard:       "guard",
	KwSwitch:      "switch",
	KwCase:        "case",
	KwDefault:     "default",
	KwWhere:       "where",
	KwReturn:      "return",
	KwThrow:       "throw",
	KwThrows:      "throws",
	KwRethrows:    "rethrows",
	KwTry:         "try",
	KwImport:      "import",
	KwStruct:      "struct",
	KwClass:       "class",
	KwEnum:        "enum",
	KwExtension:   "extension",
	KwProtocol:    "protocol",
	KwTypealias:   "typealias",
	KwFor:         "for",
	KwWhile:       "while",
	KwRepeat:      "repeat",
	KwIn:          "in",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwDefer:       "defer",
	KwAs:          "as",
	KwIs:          "is",
	KwNil:         "nil",
	KwTrue:        "true",
	KwFalse:       "false",
	KwSelf:        "self",
	KwStatic:      "static",
	KwPublic:      "public",
	KwPrivate:     "private",
	KwInternal:    "internal",
	KwFileprivate: "fileprivate",
	KwOpen:        "open",
	KwOverride:    "override",
	KwMutating:    "mutating",
	KwFinal:       "final",
	PoundIf:       "#if",
	PoundElseif:   "#elseif",
	PoundElse:     "#else",
	PoundEndif:    "#endif",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Comma:         ",",
	Colon:         ":",
	Semicolon:     ";",
	Dot:           ".",
	Arrow:         "->",
	At:            "@",
	Assign:        "=",
	Question:      "?",
	Bang:          "!",
	Lt:            "<",
	Gt:            ">",
	Operator:      "operator",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsClosing reports whether the token closes a bracketed construct. Closing
// tokens are rewritten at the enclosing (outer) indentation level.
func (k Kind) IsClosing() bool {
	switch k {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}

// IsDirective reports whether the token is a conditional-compilation marker.
func (k Kind) IsDirective() bool {
	switch k {
	case PoundIf, PoundElseif, PoundElse, PoundEndif:
		return true
	default:
		return false
	}
}
