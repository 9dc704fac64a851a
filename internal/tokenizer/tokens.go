// Package tokenizer recognizes HTTP tokens using Shape's tokenizer framework.
package tokenizer

// Token type constants emitted by the matchers in this package.
const (
	TokenMethod = "Method" // GET, POST, PURGE, etc.
)
