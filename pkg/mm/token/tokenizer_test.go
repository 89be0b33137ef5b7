package token

import "testing"

func texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}

	return out
}

func assertTokens(t *testing.T, got []Token, want ...string) {
	gotTexts := texts(got)

	if len(gotTexts) != len(want) {
		t.Fatalf("expected %d tokens %v, got %d %v", len(want), want, len(gotTexts), gotTexts)
	}

	for i := range want {
		if gotTexts[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q (%v)", i, want[i], gotTexts[i], gotTexts)
		}
	}
}

func TestTokenizer_Basic(t *testing.T) {
	toks, err := Tokenize("db.mm", []byte("$c 0 + = -> ( ) term wff |- $."), NoIncludeResolver{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	assertTokens(t, toks, "$c", "0", "+", "=", "->", "(", ")", "term", "wff", "|-", "$.")
}

// P1: tokenization is whitespace-insensitive.
func TestTokenizer_WhitespaceInsensitive(t *testing.T) {
	a, err := Tokenize("db.mm", []byte("$c a b $."), NoIncludeResolver{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Tokenize("db.mm", []byte("$c\t\ta\n\n\n b  \r\n$."), NoIncludeResolver{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	assertTokens(t, b, texts(a)...)
}

// P2: comment transparency.
func TestTokenizer_CommentStripped(t *testing.T) {
	toks, err := Tokenize("db.mm", []byte("$c $( a comment about wff $) wff $."), NoIncludeResolver{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	assertTokens(t, toks, "$c", "wff", "$.")
}

func TestTokenizer_UnterminatedComment(t *testing.T) {
	_, err := Tokenize("db.mm", []byte("$( oops"), NoIncludeResolver{}, nil)
	if err == nil {
		t.Fatal("expected an unclosed-comment error")
	}
}

func TestTokenizer_ForbiddenCharsInComment(t *testing.T) {
	_, err := Tokenize("db.mm", []byte("$( a $( nested $) $)"), NoIncludeResolver{}, nil)
	if err == nil {
		t.Fatal("expected a forbidden-characters-in-comment error")
	}
}

func TestTokenizer_Include(t *testing.T) {
	resolver := MapResolver{
		"child.mm": []byte("$c wff $."),
	}

	toks, err := Tokenize("root.mm", []byte("$[ child.mm $] $v x $."), resolver, nil)
	if err != nil {
		t.Fatal(err)
	}

	assertTokens(t, toks, "$c", "wff", "$.", "$v", "x", "$.")
}

// P7: including the same file twice has the same effect as once.
func TestTokenizer_IncludeIdempotent(t *testing.T) {
	resolver := MapResolver{
		"child.mm": []byte("$c wff $."),
	}

	toks, err := Tokenize("root.mm", []byte("$[ child.mm $] $[ child.mm $] $v x $."), resolver, nil)
	if err != nil {
		t.Fatal(err)
	}

	assertTokens(t, toks, "$c", "wff", "$.", "$v", "x", "$.")
}

func TestTokenizer_DisabledIncludesIsHardError(t *testing.T) {
	_, err := Tokenize("root.mm", []byte("$[ child.mm $] $."), NoIncludeResolver{}, nil)
	if err == nil {
		t.Fatal("expected disabled includes to error")
	}
}

func TestTokenizer_InvalidByte(t *testing.T) {
	_, err := Tokenize("db.mm", []byte("$c wff\x01 $."), NoIncludeResolver{}, nil)
	if err == nil {
		t.Fatal("expected an invalid-byte error")
	}
}
