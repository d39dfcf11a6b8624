// Package cssvalue is the TokenParser: it turns raw CSS value strings
// (the right-hand side of a declaration, or one Tailwind utility's value
// portion) into the typed value domains style.go defines — colors,
// lengths, gradients, transforms, shadows, grid tracks, clip-path shapes
// (spec.md §4.1 TokenParser).
package cssvalue

import (
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssscan "github.com/tdewolff/parse/v2/css"
)

// token is a flattened, already-decoded css.Token: the same tokenizer the
// teacher's css.Parser drives (github.com/tdewolff/parse/v2/css), reused
// here one value-string at a time instead of over a whole stylesheet.
type token struct {
	Type cssscan.TokenType
	Data string
}

// tokenizeValue splits one CSS value string into tdewolff css tokens,
// skipping whitespace and comments.
func tokenizeValue(value string) ([]token, error) {
	l := cssscan.NewLexer(parse.NewInputString(value))
	var out []token
	for {
		tt, data := l.Next()
		if tt == cssscan.ErrorToken {
			if err := l.Err(); err != nil && err.Error() != "EOF" {
				return out, fmt.Errorf("cssvalue: tokenize %q: %w", value, err)
			}
			return out, nil
		}
		if tt == cssscan.WhitespaceToken || tt == cssscan.CommentToken {
			continue
		}
		out = append(out, token{Type: tt, Data: string(data)})
	}
}

// splitTopLevelCommas splits a function's argument token stream on commas
// that are not nested inside parentheses, mirroring how the teacher's
// css.Parser walks nested grammar without a recursive-descent grammar.
func splitTopLevelCommas(toks []token) [][]token {
	var groups [][]token
	var cur []token
	depth := 0
	for _, t := range toks {
		switch t.Type {
		case cssscan.LeftParenthesisToken, cssscan.FunctionToken:
			depth++
		case cssscan.RightParenthesisToken:
			depth--
		}
		if t.Type == cssscan.CommaToken && depth == 0 {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	groups = append(groups, cur)
	return groups
}

func isIdent(t token, name string) bool {
	return t.Type == cssscan.IdentToken && strings.EqualFold(t.Data, name)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
