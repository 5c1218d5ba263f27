// Package token defines the lexical tokens of the compiled language and an
// ordered keyword table whose index is an external contract for token dumps.
package token

import "strconv"

// Token is the set of lexical tokens produced by the lexer.
type Token int

const (
	// Special tokens
	Illegal Token = iota // unknown
	EOF

	// Identifiers and literals
	literalA
	Ident  // x
	Number // 42, 0xFF, 0b10, 1.5e+3
	String // "abc"
	Char   // 'a'
	literalZ

	// Operators and delimiters
	operatorA
	Add // +
	Sub // -
	Mul // *
	Quo // /
	Rem // %

	Assign    // =
	AddAssign // +=
	SubAssign // -=
	MulAssign // *=
	QuoAssign // /=
	RemAssign // %=

	LogicAnd // &&
	LogicOr  // ||
	LogicNot // !

	Equal        // ==
	NotEqual     // !=
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=

	Inc   // ++ (lexical only, unused in the grammar)
	Dec   // -- (lexical only, unused in the grammar)
	Amp   // &  (lexical only, unused in the grammar)
	Pipe  // |  (lexical only, unused in the grammar)
	Period // .  (lexical only, unused in the grammar)

	Semicolon
	Comma
	Colon
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBrack
	RightBrack
	operatorZ

	// Keywords. The first fifteen (Fn..False) form the legacy indexed table
	// described by the token dump format; the type-name keywords added by
	// this grammar (I32..CharKw) are recognized the same way but carry no
	// legacy dump index.
	keywordA
	Fn
	Let
	Mut
	If
	Else
	Match
	While
	Loop
	For
	In
	Break
	Continue
	Return
	True
	False

	I32
	F64
	BoolKw
	CharKw
	keywordZ

	tokenMax
)

var tokens = [...]string{
	Illegal: "ILLEGAL",
	EOF:     "EOF",

	Ident:  "IDENT",
	Number: "NUMBER",
	String: "STRING",
	Char:   "CHAR",

	Add: "+",
	Sub: "-",
	Mul: "*",
	Quo: "/",
	Rem: "%",

	Assign:    "=",
	AddAssign: "+=",
	SubAssign: "-=",
	MulAssign: "*=",
	QuoAssign: "/=",
	RemAssign: "%=",

	LogicAnd: "&&",
	LogicOr:  "||",
	LogicNot: "!",

	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",

	Inc:    "++",
	Dec:    "--",
	Amp:    "&",
	Pipe:   "|",
	Period: ".",

	Semicolon:  ";",
	Comma:      ",",
	Colon:      ":",
	LeftParen:  "(",
	RightParen: ")",
	LeftBrace:  "{",
	RightBrace: "}",
	LeftBrack:  "[",
	RightBrack: "]",

	Fn:       "fn",
	Let:      "let",
	Mut:      "mut",
	If:       "if",
	Else:     "else",
	Match:    "match",
	While:    "while",
	Loop:     "loop",
	For:      "for",
	In:       "in",
	Break:    "break",
	Continue: "continue",
	Return:   "return",
	True:     "true",
	False:    "false",

	I32:    "i32",
	F64:    "f64",
	BoolKw: "bool",
	CharKw: "char",
}

// String returns the display form of tok, e.g. "+" or "IDENT".
func (tok Token) String() string {
	if 0 <= tok && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return "Token(" + strconv.Itoa(int(tok)) + ")"
}

// IsLiteral reports whether tok is an identifier or basic literal kind.
func (tok Token) IsLiteral() bool {
	return literalA < tok && tok < literalZ
}

// IsOperator reports whether tok is an operator or punctuation delimiter.
func (tok Token) IsOperator() bool {
	return operatorA < tok && tok < operatorZ
}

// IsKeyword reports whether tok is a reserved word, including the type names.
func (tok Token) IsKeyword() bool {
	return keywordA < tok && tok < keywordZ
}

// Category is the coarse external classification used by the token dump
// format: IDENTIFIER, NUMBER, STRING, OPERATOR, DELIMITER, KEYWORD, UNKNOWN,
// or EOF. It collapses finer internal kinds (one per operator, one per
// keyword) to the eight-member legacy contract; Char collapses into STRING
// since the legacy format has no dedicated bucket for character literals.
type Category int

const (
	CategoryIdentifier Category = iota
	CategoryNumber
	CategoryString
	CategoryOperator
	CategoryDelimiter
	CategoryKeyword
	CategoryUnknown
	CategoryEOF
)

var categoryNames = [...]string{
	CategoryIdentifier: "IDENTIFIER",
	CategoryNumber:     "NUMBER",
	CategoryString:     "STRING",
	CategoryOperator:   "OPERATOR",
	CategoryDelimiter:  "DELIMITER",
	CategoryKeyword:    "KEYWORD",
	CategoryUnknown:    "UNKNOWN",
	CategoryEOF:        "EOF",
}

// String returns the legacy category name, e.g. "KEYWORD".
func (c Category) String() string {
	if 0 <= c && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "CATEGORY(" + strconv.Itoa(int(c)) + ")"
}

var delimiterTokens = map[Token]bool{
	Semicolon: true, Comma: true, Colon: true,
	LeftParen: true, RightParen: true,
	LeftBrace: true, RightBrace: true,
	LeftBrack: true, RightBrack: true,
}

// Category classifies tok into the eight-member legacy token-dump contract.
func (tok Token) Category() Category {
	switch {
	case tok == EOF:
		return CategoryEOF
	case tok == Illegal:
		return CategoryUnknown
	case tok == Ident:
		return CategoryIdentifier
	case tok == Number:
		return CategoryNumber
	case tok == String || tok == Char:
		return CategoryString
	case tok.IsKeyword():
		return CategoryKeyword
	case delimiterTokens[tok]:
		return CategoryDelimiter
	case tok.IsOperator():
		return CategoryOperator
	default:
		return CategoryUnknown
	}
}

// IsExported reports whether name starts with an upper-case letter.
func IsExported(name string) bool {
	return name != "" && ('A' <= name[0] && name[0] <= 'Z')
}

// IsIdentifier reports whether name is a legal identifier: a non-empty
// string of ASCII letters, digits, and underscores, not starting with a
// digit, and not a keyword. Unicode identifiers are not supported.
func IsIdentifier(name string) bool {
	if name == "" || IsKeyword(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case i != 0 && '0' <= c && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := keywordIndex[name]
	return ok
}

// Lookup maps an identifier-shaped lexeme to its keyword token, or to
// [Ident] if it is not a keyword.
func Lookup(ident string) Token {
	if tok, ok := keywordIndex[ident]; ok {
		return tok
	}
	return Ident
}

// keywords is the ordered keyword table. The first fifteen entries
// (fn..false) are the legacy-indexed set described by the token dump
// format in their declared order; the type-name keywords that follow carry
// no legacy index.
var keywords = []struct {
	text string
	tok  Token
}{
	{"fn", Fn},
	{"let", Let},
	{"mut", Mut},
	{"if", If},
	{"else", Else},
	{"match", Match},
	{"while", While},
	{"loop", Loop},
	{"for", For},
	{"in", In},
	{"break", Break},
	{"continue", Continue},
	{"return", Return},
	{"true", True},
	{"false", False},

	{"i32", I32},
	{"f64", F64},
	{"bool", BoolKw},
	{"char", CharKw},
}

// legacyKeywordCount is the size of the external dump's keyword index
// table; keywords beyond it (the type names) have no stable legacy index.
const legacyKeywordCount = 15

var keywordIndex map[string]Token

func init() {
	keywordIndex = make(map[string]Token, len(keywords))
	for _, kw := range keywords {
		keywordIndex[kw.text] = kw.tok
	}
}

// LegacyIndex returns the stable keyword-table index used by the token dump
// format for tok, and true if tok has one. Type-name keywords (i32, f64,
// bool, char) return false: they are not part of the original fifteen-entry
// indexed table the dump format documents.
func LegacyIndex(tok Token) (int, bool) {
	for i, kw := range keywords {
		if i >= legacyKeywordCount {
			break
		}
		if kw.tok == tok {
			return i, true
		}
	}
	return 0, false
}
