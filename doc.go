/*
Package traf syllabifies Yiddish words written in the YIVO orthography.

Words are first rewritten to a canonical Unicode representation (precombined
Hebrew presentation forms, Yiddish digraph ligatures), then to a stream of
phoneme tokens: a yud before a vowel becomes consonantal, and the sonorants
nun and lamed become syllable nuclei between consonants. Syllable boundaries
are assigned by the maximum onset principle against an inventory of attested
Yiddish onsets, following the cluster tables in Jacobs (2005:115-7). A second,
restrictive inventory after Yankev Viler is available as an alternative.

The subpackages build on this: hyphenlist turns running text into a
hyphenation exception list for typesetting, and tex writes such lists as TeX
\hyphenation blocks.

Further Reading

	Neil G. Jacobs: Yiddish: A Linguistic Introduction, CUP 2005
	https://www.yivo.org/yiddish-alphabet   (YIVO romanization and alphabet)
	https://sourceforge.net/projects/p2tk/   (Penn Phonetics Toolkit syllabifier)

----------------------------------------------------------------------

# BSD License

Copyright (c) Yidlit contributors

All rights reserved.

License information is available in the LICENSE file.
*/
package traf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'traf'
func tracer() tracing.Trace {
	return tracing.Select("traf")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
