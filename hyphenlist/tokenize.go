package hyphenlist

import (
	"sort"
	"strings"
	"unicode"
)

// wordSeparators are the marks that end a word token, on top of whitespace.
// Both hyphen and maqaf are separators: a compound like שבת־צו־נאַכטס
// tokenizes into its members, which are hyphenated independently.
var wordSeparators = ",.?!\u201e\u201c\u05be-;:()\u2013\u2014\u05f3\u2018\u2019"

// Tokenize splits text into its sorted set of unique word tokens.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(wordSeparators, r)
	})
	seen := make(map[string]struct{}, len(words))
	tokens := words[:0]
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}
	sort.Strings(tokens)
	return tokens
}
