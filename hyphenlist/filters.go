package hyphenlist

import (
	"strings"

	"github.com/yidlit/traf"
)

// loshnKoydesh lists the graphemes that only occur in Hebrew- or
// Aramaic-origin spellings, in canonicalized form: khes, kof, sin, tof and
// sof. A word containing one keeps its traditional unbroken form.
var loshnKoydesh = []string{
	"\u05d7", // ח
	"\ufb3b", // כּ
	"\ufb2b", // שׂ
	"\ufb4a", // תּ
	"\u05ea", // ת
}

func containsLoshnKoydesh(word string) bool {
	c := traf.Combine(word)
	for _, marker := range loshnKoydesh {
		if strings.Contains(c, marker) {
			return true
		}
	}
	return false
}

// applyFilters drops the breaks of a hyphenated word that typesetting
// convention rejects, in order:
//
//  1. a leading fragment of fewer than 2 graphemes keeps no break after it;
//  2. a trailing fragment of fewer than 3 graphemes keeps no break before
//     it, judged after rule 1 has run;
//  3. a loshn-koydesh word keeps no breaks at all.
//
// Fragment lengths are counted in canonical graphemes, so a pasekh alef is
// one letter no matter the representation.
func applyFilters(word string) string {
	if i := strings.Index(word, "-"); i >= 0 && traf.GraphemeCount(word[:i]) < 2 {
		word = word[:i] + word[i+1:]
	}
	if i := strings.LastIndex(word, "-"); i >= 0 && traf.GraphemeCount(word[i+1:]) < 3 {
		word = word[:i] + word[i+1:]
	}
	if strings.Contains(word, "-") && containsLoshnKoydesh(word) {
		tracer().Debugf("loshn-koydesh word %q keeps no breaks", word)
		word = strings.ReplaceAll(word, "-", "")
	}
	return word
}
