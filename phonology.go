package traf

import "unicode"

// Placeholder tokens for phonemes the orthography writes with an ambiguous
// letter. They are single runes outside the Hebrew block, so they can never
// collide with input graphemes, and they are translated back before output.
const (
	consonantalYud   = "j"      // yud acting as a consonant before a vowel
	syllabicNun      = "\u0146" // ņ, syllabic nun
	syllabicNunFinal = "\u0145" // Ņ, syllabic final nun
	syllabicLamed    = "\u013c" // ļ, syllabic lamed
)

const (
	yud      = "\u05d9" // י
	nun      = "\u05e0" // נ
	nunFinal = "\u05df" // ן
	lamed    = "\u05dc" // ל
)

// jVowels are the graphemes a yud must precede to be read as the consonant
// /j/. Melupm vov is not among them, a yud ahead of וּ keeps its vowel
// reading.
var jVowels = map[string]bool{
	"\ufb2e": true, // אַ
	"\ufb2f": true, // אָ
	"\u05d5": true, // ו
	"\u05e2": true, // ע
	"\ufb1d": true, // יִ
	"\ufb1f": true, // ײַ
	"\u05f2": true, // ײ
	"\u05f1": true, // ױ
}

// nucleusContext are the graphemes that count as a vowel when deciding
// whether a nun or lamed is syllabic. A sonorant with one of these on either
// side keeps its consonant reading.
var nucleusContext = map[string]bool{
	"\ufb2e": true, // אַ
	"\u05e2": true, // ע
	"\u05d9": true, // י
	"\ufb2f": true, // אָ
	"\u05d5": true, // ו
	"\u05f2": true, // ײ
	"\ufb1f": true, // ײַ
	"\u05f1": true, // ױ
	"\ufb1d": true, // יִ
	"\ufb35": true, // וּ
}

// graphemes splits a canonicalized string into single-rune tokens.
func graphemes(s string) []string {
	tokens := make([]string, 0, len(s))
	for _, r := range s {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// Preprocess turns a canonicalized word (see Combine) into the phoneme token
// stream the syllabifier consumes. Three rewrites happen, in this order:
//
//  1. a yud directly before a vowel grapheme becomes the consonant token "j";
//  2. a nun or lamed with no vowel on either side becomes a syllabic nucleus
//     token (ņ, Ņ, ļ); a final nun only checks its left side;
//  3. a word-initial ņ or ļ is taken back, an initial sonorant is always
//     consonantal.
//
// The sonorant check looks at single graphemes only, so it sees the word
// boundary, a space, or the immediate neighbor token. Tokens keep their
// placeholder form until output assembly translates them back.
func Preprocess(word string) []string {
	tokens := graphemes(word)
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == yud && jVowels[tokens[i+1]] {
			tokens[i] = consonantalYud
		}
	}
	for i, tok := range tokens {
		switch tok {
		case nun:
			if !vowelOrSpaceBefore(tokens, i) && !vowelAfter(tokens, i) {
				tokens[i] = syllabicNun
			}
		case nunFinal:
			if !vowelOrSpaceBefore(tokens, i) {
				tokens[i] = syllabicNunFinal
			}
		case lamed:
			if !vowelOrSpaceBefore(tokens, i) && !vowelAfter(tokens, i) {
				tokens[i] = syllabicLamed
			}
		}
	}
	if len(tokens) > 0 {
		switch tokens[0] {
		case syllabicNun:
			tokens[0] = nun
		case syllabicLamed:
			tokens[0] = lamed
		}
	}
	return tokens
}

func vowelOrSpaceBefore(tokens []string, i int) bool {
	if i == 0 {
		return false
	}
	prev := tokens[i-1]
	return nucleusContext[prev] || isSpaceToken(prev)
}

func vowelAfter(tokens []string, i int) bool {
	return i+1 < len(tokens) && nucleusContext[tokens[i+1]]
}

func isSpaceToken(tok string) bool {
	for _, r := range tok {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return tok != ""
}
