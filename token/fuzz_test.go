package token_test

import (
	"testing"

	"github.com/dpotapov/htmlharvest/token"
)

// FuzzTokenizerTerminates pins the universal invariant from spec §8:
// next() repeatedly over any byte input eventually returns EOF in at most
// len(input)+1 calls and never loops forever.
func FuzzTokenizerTerminates(f *testing.F) {
	seeds := []string{
		"",
		"<div><p>Hello</p></div>",
		"<div><p>Hi</div>",
		`<a href="x" class='y'>t</a>`,
		"<!-- unterminated",
		"<!DOCTYPE html>",
		"</>",
		"<<<<<<<",
		"plain text with no tags",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		z := token.New([]byte(src))
		limit := len(src) + 1
		for i := 0; i < limit; i++ {
			tok := z.Next()
			if tok.Kind == token.EOF {
				return
			}
		}
		t.Fatalf("tokenizer did not terminate within %d calls for %q", limit, src)
	})
}
