package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
	"golang.org/x/net/http/httpguts"
)

// NewTokenizer creates a tokenizer that recognizes a single method token.
// Whitespace is significant in a request line, so the default skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		MethodMatcher(),
	)
}

// MethodMatcher matches the longest run of tchar characters (RFC 9110 §5.6.2).
// It returns nil when the stream does not start with a tchar.
func MethodMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !httpguts.IsTokenRune(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenMethod, value)
	}
}

// LongestPrefix returns the length in bytes of the longest token run in s
// starting at start. Out-of-range offsets yield 0.
func LongestPrefix(s string, start int) int {
	if start < 0 || start >= len(s) {
		return 0
	}
	tok := MethodMatcher()(tokenizer.NewStream(s[start:]))
	if tok == nil {
		return 0
	}
	// tchar is ASCII only, so runes and bytes line up.
	return len(tok.ValueString())
}
