package token

// keywords maps identifier spellings to keyword kinds.
// Контекстные слова (modifiers) тоже здесь: парсер сам решает, когда они
// выступают в роли идентификаторов.
var keywords = map[string]Kind{
	"let":         KwLet,
	"var":         KwVar,
	"func":        KwFunc,
	"init":        KwInit,
	"if":          KwIf,
	"else":        KwElse,
	"guard":       KwGuard,
	"switch":      KwSwitch,
	"case":        KwCase,
	"default":     KwDefault,
	"where":       KwWhere,
	"return":      KwReturn,
	"throw":       KwThrow,
	"throws":      KwThrows,
	"rethrows":    KwRethrows,
	"try":         KwTry,
	"import":      KwImport,
	"struct":      KwStruct,
	"class":       KwClass,
	"enum":        KwEnum,
	"extension":   KwExtension,
	"protocol":    KwProtocol,
	"typealias":   KwTypealias,
	"for":         KwFor,
	"while":       KwWhile,
	"repeat":      KwRepeat,
	"in":          KwIn,
	"break":       KwBreak,
	"continue":    KwContinue,
	"defer":       KwDefer,
	"as":          KwAs,
	"is":          KwIs,
	"nil":         KwNil,
	"true":        KwTrue,
	"false":       KwFalse,
	"self":        KwSelf,
	"static":      KwStatic,
	"public":      KwPublic,
	"private":     KwPrivate,
	"internal":    KwInternal,
	"fileprivate": KwFileprivate,
	"open":        KwOpen,
	"override":    KwOverride,
	"mutating":    KwMutating,
	"final":       KwFinal,
}

// directives maps #-spellings to directive kinds.
var directives = map[string]Kind{
	"#if":     PoundIf,
	"#elseif": PoundElseif,
	"#else":   PoundElse,
	"#endif":  PoundEndif,
}

// LookupKeyword returns the keyword kind for an identifier spelling, or Ident.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}

// LookupDirective returns the directive kind for a #-spelling, or Invalid.
func LookupDirective(text string) Kind {
	if k, ok := directives[text]; ok {
		return k
	}
	return Invalid
}

// IsModifier reports whether the kind is a declaration modifier
// (access control, static, override, ...).
func IsModifier(k Kind) bool {
	switch k {
	case KwStatic, KwPublic, KwPrivate, KwInternal, KwFileprivate,
		KwOpen, KwOverride, KwMutating, KwFinal:
		return true
	default:
		return false
	}
}

// IsDeclIntroducer reports whether the kind can begin a declaration.
func IsDeclIntroducer(k Kind) bool {
	switch k {
	case KwLet, KwVar, KwFunc, KwInit, KwImport, KwStruct, KwClass,
		KwEnum, KwExtension, KwProtocol, KwTypealias:
		return true
	default:
		return false
	}
}
