package traf

import "strings"

// segmentPunctuation lists the marks that cut a word into independently
// syllabified segments. The marks survive untouched between segments, so a
// boundary hyphen is never confused with one the algorithm inserted.
var segmentPunctuation = map[string]bool{
	"\"":     true,
	"'":      true,
	".":      true,
	"-":      true,
	"\\":     true,
	"/":      true,
	"!":      true,
	"?":      true,
	"\u05be": true, // ־ maqaf
	"\u201e": true, // „
	"\u05f4": true, // ״ gershayim
	"\u201c": true, // “
	"\u201d": true, // ”
	"\u2032": true, // ′
	"\u2033": true, // ″
	";":      true,
}

// SegmentKind tells how a Segment was produced.
type SegmentKind uint8

const (
	// Syllabified segments carry divisions found by the maximum onset
	// principle.
	Syllabified SegmentKind = iota
	// Punctuation segments are single pass-through marks.
	Punctuation
	// PassThrough segments contained a token outside the phoneme alphabet
	// and were left undivided.
	PassThrough
)

// Segment is one punctuation-delimited piece of a syllabified word.
type Segment struct {
	Kind      SegmentKind
	Text      string   // segment text without division hyphens
	Syllables []string // filled for Syllabified segments
}

// String renders the segment with hyphens at the syllable boundaries.
func (seg Segment) String() string {
	if seg.Kind == Syllabified {
		return strings.Join(seg.Syllables, "-")
	}
	return seg.Text
}

// restoreTokens translates placeholder tokens back to their orthographic
// letters. The mappings are disjoint single runes, order does not matter.
var restoreTokens = strings.NewReplacer(
	consonantalYud, yud,
	syllabicNun, nun,
	syllabicNunFinal, nunFinal,
	syllabicLamed, lamed,
)

// Syllabify divides a preprocessed token stream (see Preprocess) into
// segments. Punctuation marks split the stream and are emitted as their own
// segments; every other stretch is divided independently. A stretch holding
// a token that is neither nucleus nor consonant is emitted undivided.
func (inv *Inventory) Syllabify(tokens []string) []Segment {
	var segments []Segment
	start := 0
	flush := func(end int) {
		if end > start {
			segments = append(segments, inv.syllabifySegment(tokens[start:end]))
		}
	}
	for i, tok := range tokens {
		if segmentPunctuation[tok] {
			flush(i)
			segments = append(segments, Segment{Kind: Punctuation, Text: tok})
			start = i + 1
		}
	}
	flush(len(tokens))
	return segments
}

func (inv *Inventory) syllabifySegment(tokens []string) Segment {
	// spaces separate phonemes but are not phonemes themselves
	phonemes := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isSpaceToken(tok) {
			continue
		}
		phonemes = append(phonemes, tok)
	}
	syllables, ok := inv.maximumOnset(phonemes)
	if !ok {
		return Segment{Kind: PassThrough, Text: restoreTokens.Replace(strings.Join(tokens, ""))}
	}
	out := make([]string, len(syllables))
	for i, syllable := range syllables {
		out[i] = restoreTokens.Replace(strings.Join(syllable, ""))
	}
	return Segment{Kind: Syllabified, Text: strings.Join(out, ""), Syllables: out}
}

// maximumOnset assigns syllable boundaries over a phoneme sequence. Every
// consonant run between two nuclei is split so that the onset handed to the
// right nucleus is the longest legal one; the remainder becomes the coda of
// the left nucleus. A word-initial run always goes to the first onset, legal
// or not, and a word-final run always joins the last coda. A sequence with
// no nucleus at all is returned as a single unsplit syllable. ok is false
// when a phoneme outside the alphabet is found.
func (inv *Inventory) maximumOnset(phonemes []string) (syllables [][]string, ok bool) {
	var internuclei []string
	for _, phoneme := range phonemes {
		switch {
		case inv.IsVowel(phoneme):
			coda, onset := inv.splitCluster(internuclei, len(syllables) == 0)
			if len(syllables) > 0 {
				last := len(syllables) - 1
				syllables[last] = append(syllables[last], coda...)
			}
			syllables = append(syllables, append(onset, phoneme))
			internuclei = internuclei[:0]
		case inv.IsConsonant(phoneme):
			internuclei = append(internuclei, phoneme)
		default:
			return nil, false
		}
	}
	if len(internuclei) > 0 {
		if len(syllables) == 0 {
			syllables = append(syllables, append([]string(nil), internuclei...))
		} else {
			last := len(syllables) - 1
			syllables[last] = append(syllables[last], internuclei...)
		}
	}
	count := 0
	for _, syllable := range syllables {
		count += len(syllable)
	}
	assert(count == len(phonemes), "syllabification must cover every phoneme")
	return syllables, true
}

// splitCluster divides a consonant run into coda and onset. The split point
// is the leftmost one whose suffix is a legal onset; the empty onset is
// always legal, so the loop terminates with the whole run as coda at the
// latest. At the start of a word there is no syllable to take a coda, the
// whole run becomes the onset.
func (inv *Inventory) splitCluster(cluster []string, wordInitial bool) (coda, onset []string) {
	split := 0
	if !wordInitial {
		for split < len(cluster) && !inv.LegalOnset(cluster[split:]) {
			split++
		}
	}
	coda = append([]string(nil), cluster[:split]...)
	onset = append([]string(nil), cluster[split:]...)
	return coda, onset
}

// SyllableString returns word with hyphens inserted at all syllable
// boundaries, in the decomposed Unicode convention:
//
//	אָװנטברױט  ⟶  אָ-װנט-ברױט
//
// It runs the full pipeline over one word or line: canonicalize, rewrite to
// phoneme tokens, divide, translate placeholders back, decompose.
func (inv *Inventory) SyllableString(word string) string {
	var b strings.Builder
	for _, seg := range inv.Syllabify(Preprocess(Combine(word))) {
		b.WriteString(seg.String())
	}
	return Separate(b.String())
}
