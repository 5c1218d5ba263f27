package token

import "testing"

func TestTokenPredicate(t *testing.T) {
	for tok := Token(0); tok <= tokenMax; tok++ {
		wantLiteral := literalA < tok && tok < literalZ
		wantOperator := operatorA < tok && tok < operatorZ
		wantKeyword := keywordA < tok && tok < keywordZ

		if tok.IsLiteral() != wantLiteral {
			t.Errorf("unexpected literal result: %d / %q", int(tok), tok.String())
		}
		if tok.IsOperator() != wantOperator {
			t.Errorf("unexpected operator result: %d / %q", int(tok), tok.String())
		}
		if tok.IsKeyword() != wantKeyword {
			t.Errorf("unexpected keyword result: %d / %q", int(tok), tok.String())
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		str  string
		want bool
	}{
		{"Empty", "", false},
		{"Space", " ", false},
		{"SpaceSuffix", "foo ", false},
		{"Number", "123", false},
		{"Keyword", "fn", false},
		{"TypeKeyword", "i32", false},

		{"LettersASCII", "foo", true},
		{"MixedASCII", "_bar123", true},
		{"UppercaseKeyword", "Fn", true},
		{"LettersUnicode", "fóö", false},
		{"Emojis", "\U0001f914", false},
	}

	for _, test := range tests {
		have := IsIdentifier(test.str)
		if have != test.want {
			t.Errorf("IsIdentifier(%q) = %t, want %v", test.str, have, test.want)
		}
	}
}

func TestLegacyIndex(t *testing.T) {
	tests := []struct {
		tok   Token
		index int
	}{
		{Fn, 0}, {Let, 1}, {Mut, 2}, {If, 3}, {Else, 4},
		{Match, 5}, {While, 6}, {Loop, 7}, {For, 8}, {In, 9},
		{Break, 10}, {Continue, 11}, {Return, 12}, {True, 13}, {False, 14},
	}
	for _, tt := range tests {
		i, ok := LegacyIndex(tt.tok)
		if !ok || i != tt.index {
			t.Errorf("LegacyIndex(%s) = %d, %t; want %d, true", tt.tok, i, ok, tt.index)
		}
	}

	for _, tok := range []Token{I32, F64, BoolKw, CharKw} {
		if _, ok := LegacyIndex(tok); ok {
			t.Errorf("LegacyIndex(%s) should not have a legacy index", tok)
		}
	}
}

func TestLookup(t *testing.T) {
	if Lookup("fn") != Fn {
		t.Errorf("Lookup(fn) should be the Fn keyword")
	}
	if Lookup("i32") != I32 {
		t.Errorf("Lookup(i32) should be the I32 keyword")
	}
	if Lookup("foo") != Ident {
		t.Errorf("Lookup(foo) should be Ident")
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		tok Token
		cat Category
	}{
		{Ident, CategoryIdentifier},
		{Number, CategoryNumber},
		{String, CategoryString},
		{Char, CategoryString},
		{Add, CategoryOperator},
		{Semicolon, CategoryDelimiter},
		{Fn, CategoryKeyword},
		{Illegal, CategoryUnknown},
		{EOF, CategoryEOF},
	}
	for _, tt := range tests {
		if got := tt.tok.Category(); got != tt.cat {
			t.Errorf("%s.Category() = %s, want %s", tt.tok, got, tt.cat)
		}
	}
}
