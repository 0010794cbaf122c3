package traf

import (
	"strings"
	"unicode/utf8"
)

// combinations rewrites decomposed YIVO letter sequences to their precombined
// presentation forms. The table is applied as ordered passes, and the order is
// load-bearing: khirik yud must fuse before the tsvey-yudn ligature so that
// the yud carrying a khirik is never swallowed by a neighboring yud, and tsvey
// yudn must fuse before pasekh tsvey yudn so that a fully decomposed
// yud-yud-pasekh reaches the precombined form.
var combinations = [...][2]string{
	{"\u05d0\u05b7", "\ufb2e"}, // אַ pasekh alef
	{"\u05d0\u05b8", "\ufb2f"}, // אָ komets alef
	{"\u05d1\u05bf", "\ufb4c"}, // בֿ veys
	{"\u05d5\u05bc", "\ufb35"}, // וּ melupm vov
	{"\u05d5\u05d5", "\u05f0"}, // װ tsvey vovn
	{"\u05d5\u05d9", "\u05f1"}, // ױ vov yud
	{"\u05d9\u05b4", "\ufb1d"}, // יִ khirik yud
	{"\u05d9\u05d9", "\u05f2"}, // ײ tsvey yudn
	{"\u05f2\u05b7", "\ufb1f"}, // ײַ pasekh tsvey yudn
	{"\u05db\u05bc", "\ufb3b"}, // כּ kof
	{"\u05e4\u05bc", "\ufb44"}, // פּ pey
	{"\u05e4\u05bf", "\ufb4e"}, // פֿ fey
	{"\u05e9\u05c2", "\ufb2b"}, // שׂ sin
	{"\u05ea\u05bc", "\ufb4a"}, // תּ tof
}

// separations undoes combinations for the letter-plus-mark forms. The three
// digraph ligatures װ, ױ and ײ stay fused: YIVO texts carry them as single
// characters and splitting them back would change vov-yud readings.
var separations = [...][2]string{
	{"\ufb2e", "\u05d0\u05b7"}, // אַ pasekh alef
	{"\ufb2f", "\u05d0\u05b8"}, // אָ komets alef
	{"\ufb4c", "\u05d1\u05bf"}, // בֿ veys
	{"\ufb35", "\u05d5\u05bc"}, // וּ melupm vov
	{"\ufb1d", "\u05d9\u05b4"}, // יִ khirik yud
	{"\ufb1f", "\u05f2\u05b7"}, // ײַ pasekh tsvey yudn
	{"\ufb3b", "\u05db\u05bc"}, // כּ kof
	{"\ufb44", "\u05e4\u05bc"}, // פּ pey
	{"\ufb4e", "\u05e4\u05bf"}, // פֿ fey
	{"\ufb2b", "\u05e9\u05c2"}, // שׂ sin
	{"\ufb4a", "\u05ea\u05bc"}, // תּ tof
}

// Combine canonicalizes s so that every YIVO grapheme is a single rune.
// Letter-plus-diacritic sequences become Hebrew presentation forms and the
// digraphs vov-vov, vov-yud and yud-yud become their Yiddish ligatures.
// Combine is idempotent. Note that this is not Unicode NFC: the presentation
// forms are composition exclusions and normalization would leave the
// sequences decomposed.
func Combine(s string) string {
	for _, c := range &combinations {
		s = strings.ReplaceAll(s, c[0], c[1])
	}
	return s
}

// Separate rewrites s to the decomposed convention used by most keyboard
// layouts and fonts: presentation forms become letter plus diacritic, while
// the ligatures װ, ױ and ײ are kept.
func Separate(s string) string {
	for _, c := range &separations {
		s = strings.ReplaceAll(s, c[0], c[1])
	}
	return s
}

// GraphemeCount returns the number of canonical graphemes in s, i.e. the
// rune count after Combine. A pasekh alef counts as one grapheme regardless
// of the representation it arrived in.
func GraphemeCount(s string) int {
	return utf8.RuneCountInString(Combine(s))
}
