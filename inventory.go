package traf

import (
	"errors"
	"fmt"
	"strings"
)

// System selects the onset phonotactics used for syllable division.
type System uint8

const (
	// Jacobs divides with the full cluster inventory from Jacobs (2005:115-7).
	Jacobs System = iota
	// Viler divides with the restrictive inventory after Yankev Viler: only
	// rising-sonority clusters (obstruent plus sonorant, and the affricates)
	// may open a syllable.
	Viler
)

// ErrUnknownSystem is returned for a system name or value outside the two
// supported inventories.
var ErrUnknownSystem = errors.New("traf: unknown syllabification system")

// ParseSystem maps the command-line names "jacobs" and "viler" to a System.
func ParseSystem(name string) (System, error) {
	switch name {
	case "jacobs":
		return Jacobs, nil
	case "viler":
		return Viler, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

func (sys System) String() string {
	switch sys {
	case Jacobs:
		return "jacobs"
	case Viler:
		return "viler"
	}
	return fmt.Sprintf("system(%d)", int(sys))
}

// transliterations maps YIVO romanization labels to the grapheme realizations
// a label may take in spelling. Onset skeletons are written with these labels
// and expanded to every realization. Non-final letters only; "Y" maps to the
// consonantal-yud token, and "Zh" to its two-letter spelling.
var transliterations = map[string][]string{
	"A":  {"\ufb2e"},                     // אַ
	"Ay": {"\ufb1f"},                     // ײַ
	"B":  {"\u05d1"},                     // ב
	"D":  {"\u05d3"},                     // ד
	"E":  {"\u05e2"},                     // ע
	"Ey": {"\u05f2"},                     // ײ
	"F":  {"\ufb4e"},                     // פֿ
	"G":  {"\u05d2"},                     // ג
	"H":  {"\u05d4"},                     // ה
	"I":  {"\u05d9", "\ufb1d"},           // י, יִ
	"K":  {"\u05e7", "\ufb3b"},           // ק, כּ
	"Kh": {"\u05db", "\u05d7"},           // כ, ח
	"L":  {"\u05dc"},                     // ל
	"M":  {"\u05de"},                     // מ
	"N":  {"\u05e0"},                     // נ
	"O":  {"\ufb2f"},                     // אָ
	"Oy": {"\u05f1"},                     // ױ
	"P":  {"\ufb44"},                     // פּ
	"R":  {"\u05e8"},                     // ר
	"S":  {"\u05e1", "\ufb2b", "\u05ea"}, // ס, שׂ, ת
	"Sh": {"\u05e9"},                     // ש
	"T":  {"\u05d8", "\ufb4a"},           // ט, תּ
	"Ts": {"\u05e6"},                     // צ
	"U":  {"\u05d5", "\ufb35"},           // ו, וּ
	"V":  {"\u05f0", "\ufb4c"},           // װ, בֿ
	"Y":  {consonantalYud},
	"Z":  {"\u05d6"},        // ז
	"Zh": {"\u05d6 \u05e9"}, // ז ש
}

// nuclei lists every grapheme that can carry a syllable, including the
// placeholder tokens for syllabic nun and lamed.
var nuclei = []string{
	"\ufb2e",         // אַ
	"\u05e2",         // ע
	"\u05d9",         // י
	"\ufb2f",         // אָ
	"\u05d5",         // ו
	"\u05f2",         // ײ
	"\ufb1f",         // ײַ
	"\u05f1",         // ױ
	"\ufb1d",         // יִ
	"\ufb35",         // וּ
	syllabicNun,      // ņ
	syllabicNunFinal, // Ņ
	syllabicLamed,    // ļ
}

// consonants lists every consonant grapheme, final forms included. Nun,
// final nun and lamed appear as plain consonants only: the syllabic readings
// were rewritten to placeholder tokens before division. Ayin is listed here
// as well as under nuclei; the vowel reading wins during classification.
var consonants = []string{
	"\u05d0",       // א
	"\u05d1",       // ב
	"\ufb4c",       // בֿ
	"\u05d2",       // ג
	"\u05d3",       // ד
	"\u05d4",       // ה
	"\u05f0",       // װ
	"\u05d6",       // ז
	"\u05d7",       // ח
	"\u05d8",       // ט
	consonantalYud, // j
	"\ufb3b",       // כּ
	"\u05db",       // כ
	"\u05da",       // ך
	"\u05dc",       // ל
	"\u05de",       // מ
	"\u05dd",       // ם
	"\u05e0",       // נ
	"\u05df",       // ן
	"\u05e1",       // ס
	"\u05e2",       // ע
	"\ufb44",       // פּ
	"\ufb4e",       // פֿ
	"\u05e3",       // ף
	"\u05e6",       // צ
	"\u05e5",       // ץ
	"\u05e7",       // ק
	"\u05e8",       // ר
	"\u05e9",       // ש
	"\ufb2b",       // שׂ
	"\ufb4a",       // תּ
	"\u05ea",       // ת
}

// jacobsOnsets are the attested Yiddish onset clusters, adapted from the
// tables in Jacobs (2005:115-7), written in romanization labels.
var jacobsOnsets = []string{
	"P T", "P L", "P R", "P N", "P S", "P Sh", "P Kh", "P K",
	"T R", "T M", "B D", "B L", "B R", "B G",
	"D L", "D N", "T N", "T L", "T K", "T V", "T F", "T Kh", "D R", "D V",
	"K N", "K T", "K D", "K L", "K S", "K R", "K V",
	"G N", "G L", "G R", "G V", "G Z", "F L", "F R", "V L", "V R",
	"S M", "S F", "S V", "S N", "S T", "S D", "S K", "S P", "S Kh", "S R", "S L",
	"Z M", "Z N", "Z G", "Z R", "Z L", "Z B",
	"Sh M", "Sh V", "Sh F", "Sh N", "Sh T", "Sh P", "Sh K", "Sh Kh", "Sh R", "Sh L",
	"Sh T Sh", "Zh M", "Zh L",
	"Kh M", "Kh V", "Kh Sh", "Kh S", "Kh L", "Kh K", "Kh Ts", "Kh N", "Kh R",
	"Ts L", "Ts N", "Ts D", "Ts V", "T Sh V", "M R", "M L",
	"Sh P R", "Sh T R", "Sh K R", "Sh P L", "Sh K L",
	"S P R", "S T R", "S K R", "S P L", "S K L",
	"T Sh", "D Zh",
}

// vilerOnsets restricts the Jacobs inventory to clusters with rising
// sonority: an obstruent followed by a liquid or nasal, plus the affricates
// tsh and dzh. Obstruent-obstruent clusters (shp, st, ks and the like) and
// the three-consonant clusters are divided instead.
var vilerOnsets = []string{
	"P L", "P R", "P N",
	"T R", "T M", "T N", "T L",
	"B L", "B R",
	"D L", "D N", "D R",
	"K N", "K L", "K R",
	"G N", "G L", "G R",
	"F L", "F R", "V L", "V R",
	"S M", "S N", "S L", "S R",
	"Z M", "Z N", "Z L", "Z R",
	"Sh M", "Sh N", "Sh L", "Sh R",
	"Zh M", "Zh L",
	"Kh M", "Kh N", "Kh L", "Kh R",
	"Ts L", "Ts N",
	"T Sh", "D Zh",
}

// Inventory is the immutable configuration driving syllable division: the
// nucleus and consonant alphabets plus every legal onset of the selected
// system, expanded from romanization labels to concrete grapheme sequences.
// An Inventory is safe for concurrent use once built.
type Inventory struct {
	system     System
	vowels     map[string]bool
	consonants map[string]bool
	onsets     onsetIndex
	maxOnset   int // graphemes in the longest onset
}

// InventoryStats reports size metrics of a built inventory.
type InventoryStats struct {
	System     string
	Onsets     int // expanded onset sequences, singletons included
	MaxOnset   int // graphemes in the longest onset
	Nuclei     int
	Consonants int
}

// NewInventory expands the onset inventory of the given system and returns
// a ready-to-use syllabifier configuration.
func NewInventory(system System) (*Inventory, error) {
	var skeletons []string
	switch system {
	case Jacobs:
		skeletons = jacobsOnsets
	case Viler:
		skeletons = vilerOnsets
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSystem, int(system))
	}
	inv := &Inventory{
		system:     system,
		vowels:     make(map[string]bool, len(nuclei)),
		consonants: make(map[string]bool, len(consonants)),
		onsets:     newTrieIndex(),
	}
	for _, n := range nuclei {
		inv.vowels[n] = true
	}
	for _, c := range consonants {
		inv.consonants[c] = true
	}
	for _, skeleton := range skeletons {
		for _, onset := range expandSkeleton(skeleton) {
			inv.addOnset(onset)
		}
	}
	for _, c := range consonants {
		inv.addOnset(c)
	}
	stats := inv.Stats()
	tracer().Infof("onset inventory (%s): %d onsets, longest %d graphemes",
		stats.System, stats.Onsets, stats.MaxOnset)
	return inv, nil
}

func (inv *Inventory) addOnset(key string) {
	if key == "" || inv.onsets.has(key) {
		return
	}
	inv.onsets.add(key)
	if n := strings.Count(key, " ") + 1; n > inv.maxOnset {
		inv.maxOnset = n
	}
}

// expandSkeleton expands a label skeleton like "S T" into every concrete
// realization: ס ט, ס תּ, שׂ ט, שׂ תּ, ת ט, ת תּ. Realizations that are
// themselves two letters (Zh) contribute both.
func expandSkeleton(skeleton string) []string {
	expanded := []string{""}
	for _, label := range strings.Split(skeleton, " ") {
		realizations := transliterations[label]
		assert(len(realizations) > 0, "onset skeleton uses unknown label "+label)
		next := make([]string, 0, len(expanded)*len(realizations))
		for _, prefix := range expanded {
			for _, r := range realizations {
				if prefix == "" {
					next = append(next, r)
				} else {
					next = append(next, prefix+" "+r)
				}
			}
		}
		expanded = next
	}
	return expanded
}

// System returns the onset system the inventory was built for.
func (inv *Inventory) System() System {
	return inv.system
}

// Stats returns size metrics, mainly for logging and tests.
func (inv *Inventory) Stats() InventoryStats {
	return InventoryStats{
		System:     inv.system.String(),
		Onsets:     inv.onsets.size(),
		MaxOnset:   inv.maxOnset,
		Nuclei:     len(inv.vowels),
		Consonants: len(inv.consonants),
	}
}

// IsVowel reports whether the token can carry a syllable. Ayin is both a
// consonant letter and a vowel; for division it always counts as a vowel.
func (inv *Inventory) IsVowel(token string) bool {
	return inv.vowels[token]
}

// IsConsonant reports whether the token is a consonant grapheme.
func (inv *Inventory) IsConsonant(token string) bool {
	return inv.consonants[token]
}

// LegalOnset reports whether the token sequence may open a syllable. The
// empty sequence is always legal: a syllable may start with its nucleus.
func (inv *Inventory) LegalOnset(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	return inv.onsets.has(strings.Join(tokens, " "))
}
