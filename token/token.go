// Package token defines the lexical vocabulary shared by the lexer, parser,
// and diagnostics: token kinds, source positions, and the small look-ahead
// buffer sitting between the lexer and the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token. There is exactly one
// Illegal kind for any input byte outside the accepted alphabet; the lexer
// never panics on such input, it just emits an Illegal token and keeps going.
type Kind int

const (
	Illegal Kind = iota
	EOF

	Ident
	IntLit
	FloatLit
	BoolLit

	KeywordInt
	KeywordFloat
	KeywordBool
	KeywordVoid
	KeywordExtern
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordReturn

	LBrace
	RBrace
	LParen
	RParen
	Semi
	Comma

	Assign

	Plus
	Minus
	Star
	Slash
	Percent

	Not

	EqEq
	NotEq
	Lt
	LtEq
	Gt
	GtEq

	AndAnd
	OrOr
)

var kindNames = map[Kind]string{
	Illegal: "illegal",
	EOF:     "eof",

	Ident:    "identifier",
	IntLit:   "int literal",
	FloatLit: "float literal",
	BoolLit:  "bool literal",

	KeywordInt:    "int",
	KeywordFloat:  "float",
	KeywordBool:   "bool",
	KeywordVoid:   "void",
	KeywordExtern: "extern",
	KeywordIf:     "if",
	KeywordElse:   "else",
	KeywordWhile:  "while",
	KeywordReturn: "return",

	LBrace: "{",
	RBrace: "}",
	LParen: "(",
	RParen: ")",
	Semi:   ";",
	Comma:  ",",

	Assign: "=",

	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Percent: "%",

	Not: "!",

	EqEq:  "==",
	NotEq: "!=",
	Lt:    "<",
	LtEq:  "<=",
	Gt:    ">",
	GtEq:  ">=",

	AndAnd: "&&",
	OrOr:   "||",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Keywords maps reserved words to their Kind. Anything not found here (and
// not a bool literal) becomes an Ident token.
var Keywords = map[string]Kind{
	"int":    KeywordInt,
	"float":  KeywordFloat,
	"bool":   KeywordBool,
	"void":   KeywordVoid,
	"extern": KeywordExtern,
	"if":     KeywordIf,
	"else":   KeywordElse,
	"while":  KeywordWhile,
	"return": KeywordReturn,
}

// BoolLiterals holds the two reserved bool literal spellings and their value.
var BoolLiterals = map[string]bool{
	"true":  true,
	"false": false,
}

// IsVarType reports whether k spells one of the three scalar var_type
// keywords (int, float, bool). void is a type_spec keyword but never a
// var_type: it only ever appears as a return type or the elided parameter
// list marker.
func (k Kind) IsVarType() bool {
	return k == KeywordInt || k == KeywordFloat || k == KeywordBool
}

// Pos is the position of the first character of a token's lexeme.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is one lexical unit: its kind, exact source text, and position.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Pos)
}

// IsEOF is a shorthand for t.Kind == EOF.
func (t Token) IsEOF() bool { return t.Kind == EOF }
