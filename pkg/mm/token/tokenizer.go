package token

import (
	"strings"

	"github.com/pkeir/ctcheckmm/pkg/source"
)

// Tokenize turns a database into its ordered token queue, stripping
// "$( ... $)" comments and recursively expanding "$[ path $]" includes via
// resolver. If initialText is non-nil, tokenization starts from it under
// rootName; otherwise resolver.Resolve(rootName) supplies the root text.
//
// included, if non-nil, is populated with every filename pulled in (by any
// path) over the course of this call, so a caller (e.g. the CLI's
// include-graph command) can inspect it afterwards.
func Tokenize(rootName string, initialText []byte, resolver FileResolver, included map[string]struct{}) ([]Token, error) {
	if included == nil {
		included = make(map[string]struct{})
	}

	var (
		root *source.File
		out  []Token
	)

	if initialText != nil {
		root = source.NewFile(rootName, initialText)
	} else {
		contents, ok := resolver.Resolve(rootName)
		if !ok {
			return nil, &UnresolvedFileError{rootName}
		}

		root = source.NewFile(rootName, contents)
	}

	included[rootName] = struct{}{}

	if err := tokenizeFile(root, resolver, included, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UnresolvedFileError reports that a FileResolver could not supply the
// contents of a named file (the root database, or a "$[ $]" include).
type UnresolvedFileError struct {
	Name string
}

func (e *UnresolvedFileError) Error() string {
	return "could not resolve file: " + e.Name
}

func tokenizeFile(file *source.File, resolver FileResolver, included map[string]struct{}, out *[]Token) error {
	sc := newRawScanner(file)

	for {
		tok, ok, err := sc.next()
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		switch tok.Text {
		case "$(":
			if err := skipComment(sc, tok); err != nil {
				return err
			}
		case "$[":
			if err := processInclude(sc, tok, resolver, included, out); err != nil {
				return err
			}
		default:
			*out = append(*out, tok)
		}
	}
}

// skipComment consumes tokens following an opening "$(" until the closing
// "$)" is read. Any token read in between (other than the closer itself)
// that contains "$(" or "$)" as a substring is an error, as is reaching
// end-of-file before the comment closes.
func skipComment(sc *rawScanner, open Token) error {
	for {
		tok, ok, err := sc.next()
		if err != nil {
			return err
		}

		if !ok {
			return open.SyntaxError("unclosed comment")
		}

		if tok.Text == "$)" {
			return nil
		}

		if strings.Contains(tok.Text, "$(") || strings.Contains(tok.Text, "$)") {
			return tok.SyntaxError("forbidden characters inside comment")
		}
	}
}

// processInclude parses the filename and closing "$]" of an inclusion
// directive, then recursively tokenizes the named file unless it has
// already been included by some earlier path through the database.
func processInclude(sc *rawScanner, open Token, resolver FileResolver, included map[string]struct{}, out *[]Token) error {
	nameTok, ok, err := sc.next()
	if err != nil {
		return err
	}

	if !ok {
		return open.SyntaxError("malformed include directive")
	}

	if strings.Contains(nameTok.Text, "$") {
		return nameTok.SyntaxError("malformed include filename")
	}

	closeTok, ok, err := sc.next()
	if err != nil {
		return err
	}

	if !ok || closeTok.Text != "$]" {
		return open.SyntaxError("malformed include directive")
	}

	name := nameTok.Text
	if _, seen := included[name]; seen {
		// Already included by some path through the database: a silent
		// no-op, matching Metamath's include semantics.
		return nil
	}

	included[name] = struct{}{}

	contents, ok := resolver.Resolve(name)
	if !ok {
		return nameTok.SyntaxError("cannot resolve included file: " + name)
	}

	return tokenizeFile(source.NewFile(name, contents), resolver, included, out)
}
