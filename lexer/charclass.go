package lexer

// class partitions a byte into the few categories the scanner actually
// needs to distinguish before it dispatches on the literal byte value. The
// only ambiguity classify has to resolve is a-f/A-F, which are letters
// everywhere except inside a 0x/0X literal, where they are also legal hex
// digits; classify always reports classHexLetter for them and leaves the
// context-dependent choice to isLetter/isHexDigit. Everything Scan,
// scanOperatorOrDelimiter and skipIgnorable care about (quotes, operators,
// whitespace, ...) is
// dispatched by direct byte comparison instead, since each of those bytes
// already maps to exactly one scanning rule and a class layer would add
// nothing.
type class int

const (
	classLetter class = iota
	classHexLetter
	classDigit
	classEOF
	classOther
)

const eof = 0

// classify maps a single source byte to its character class. The null byte
// is classified as end-of-input.
func classify(c byte) class {
	switch {
	case c == eof:
		return classEOF
	case 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return classHexLetter
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return classLetter
	case '0' <= c && c <= '9':
		return classDigit
	default:
		return classOther
	}
}

// isLetter reports whether c starts or continues an identifier outside of
// a hex-digit context: both the plain-letter and hex-letter classes count.
func isLetter(c byte) bool {
	cl := classify(c)
	return cl == classLetter || cl == classHexLetter
}

func isDigit(c byte) bool {
	return classify(c) == classDigit
}

func isHexDigit(c byte) bool {
	switch classify(c) {
	case classDigit, classHexLetter:
		return true
	default:
		return false
	}
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
