package diag

import "fmt"

// Code identifies a diagnostic category. Лексические коды в 1xxx,
// синтаксические в 2xxx.
type Code uint16

const (
	UnknownCode Code = 0

	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2002
	SynUnclosedBrace     Code = 2003
	SynUnclosedBracket   Code = 2004
	SynDanglingDirective Code = 2005
	SynExpectToken       Code = 2006
)

func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}
