package hyphenlist

import (
	"bufio"
	"io"
	"strings"
)

// verbalPrefixes are the separable verbal particles from Jacobs (2005:210),
// supplemented by the six inseparable verbal prefixes (last entries). The
// entries use the decomposed input convention, ligatures included, and match
// against words in that same convention.
//
// Scan order is a contract: the first entry matching a word's start wins,
// even when a later entry would match more letters. The table is therefore
// arranged so that extended particles precede their bases (אַדורכ before
// דורכ, צוריק before צו), with one attested exception kept as is: פֿאָר
// precedes פֿאָרױס, so foroys-initial verbs divide after פֿאָר.
var verbalPrefixes = []string{
	"\u05d0\u05b7\u05d3\u05d5\u05e8\u05db",                               // אַדורכ
	"\u05d3\u05d5\u05e8\u05db",                                           // דורכ
	"\u05d0\u05b7\u05d4\u05d9\u05e0",                                     // אַהינ
	"\u05d0\u05b7\u05d4\u05e2\u05e8",                                     // אַהער
	"\u05d0\u05b7\u05f0\u05e2\u05e7",                                     // אַװעק
	"\u05d0\u05f1\u05e1",                                                 // אױס
	"\u05d0\u05d5\u05de",                                                 // אומ
	"\u05d0\u05d5\u05e0\u05d8\u05e2\u05e8",                               // אונטער
	"\u05d0\u05f1\u05e4\u05bf",                                           // אױפֿ
	"\u05d0\u05b7\u05e0\u05d8\u05e7\u05e2\u05d2\u05e0",                   // אַנטקעגנ
	"\u05d0\u05b7\u05e7\u05e2\u05d2\u05e0",                               // אַקעגנ
	"\u05e7\u05e2\u05d2\u05e0",                                           // קעגנ
	"\u05d0\u05d9\u05d1\u05e2\u05e8",                                     // איבער
	"\u05d0\u05f2\u05b7\u05e0",                                           // אײַנ
	"\u05d0\u05b8\u05e0",                                                 // אָנ
	"\u05d0\u05b7\u05e0\u05d9\u05d3\u05e2\u05e8",                         // אַנידער
	"\u05d0\u05b8\u05e4\u05bc",                                           // אָפּ
	"\u05d0\u05b7\u05e8\u05d0\u05b8\u05e4\u05bc",                         // אַראָפּ
	"\u05d0\u05b7\u05e8\u05f1\u05e1",                                     // אַרױס
	"\u05d0\u05b7\u05e8\u05d5\u05de",                                     // אַרומ
	"\u05d0\u05b7\u05e8\u05f1\u05e4\u05bf",                               // אַרױפֿ
	"\u05d0\u05b7\u05e8\u05d9\u05d1\u05e2\u05e8",                         // אַריבער
	"\u05d0\u05b7\u05e8\u05f2\u05b7\u05e0",                               // אַרײַנ
	"\u05d1\u05f2\u05b7",                                                 // בײַ
	"\u05de\u05d9\u05d8",                                                 // מיט
	"\u05e0\u05d0\u05b8\u05db",                                           // נאָכ
	"\u05e4\u05bf\u05d5\u05e0\u05d0\u05b7\u05e0\u05d3\u05e2\u05e8",       // פֿונאַנדער
	"\u05e4\u05bf\u05d0\u05b7\u05e0\u05d0\u05b7\u05e0\u05d3\u05e2\u05e8", // פֿאַנאַנדער
	"\u05e4\u05bf\u05d0\u05b8\u05e8",                                     // פֿאָר
	"\u05e4\u05bf\u05d0\u05b8\u05e8\u05f1\u05e1",                         // פֿאָרױס
	"\u05d0\u05b7\u05e4\u05bf\u05e2\u05e8",                               // אַפֿער
	"\u05d0\u05b7\u05e4\u05bf\u05d9\u05e8",                               // אַפֿיר
	"\u05e4\u05bf\u05d9\u05e8",                                           // פֿיר
	"\u05e6\u05d5\u05d6\u05d0\u05b7\u05de\u05e2\u05e0",                   // צוזאַמענ
	"\u05e6\u05d5\u05e0\u05f1\u05e4\u05bf",                               // צונױפֿ
	"\u05e6\u05d5\u05e8\u05d9\u05e7",                                     // צוריק
	"\u05e6\u05d5",                                                       // צו
	"\u05e7\u05e8\u05d9\u05e7",                                           // קריק
	"\u05e7\u05d0\u05b7\u05e8\u05d9\u05e7",                               // קאַריק
	"\u05e4\u05bf\u05d0\u05b7\u05e8\u05d1\u05f2\u05b7",                   // פֿאַרבײַ
	"\u05d0\u05b7\u05e0\u05d8",                                           // אַנט
	"\u05d1\u05d0\u05b7",                                                 // באַ
	"\u05d2\u05e2",                                                       // גע
	"\u05d3\u05e2\u05e8",                                                 // דער
	"\u05e4\u05bf\u05d0\u05b7\u05e8",                                     // פֿאַר
	"\u05e6\u05e2",                                                       // צע
}

// splitPrefix inserts a hyphen after the first table entry that word
// properly extends. A word equal to an entry is never split; such a word is
// the bare particle and divides by syllable structure alone.
func (g *Generator) splitPrefix(word string) string {
	for _, prefix := range g.prefixes {
		if word != prefix && strings.HasPrefix(word, prefix) {
			tracer().Debugf("prefix %q found in %q", prefix, word)
			return prefix + "-" + word[len(prefix):]
		}
	}
	return word
}

// PrefixReader streams prefix-table entries. Implementations yield entries
// in the order they are to be scanned and return io.EOF when exhausted.
type PrefixReader interface {
	Next() (string, error)
}

// LinePrefixReader reads one prefix entry per line. Blank lines and
// %-comments are skipped; file order becomes scan order.
type LinePrefixReader struct {
	scanner *bufio.Scanner
}

func NewLinePrefixReader(reader io.Reader) *LinePrefixReader {
	return &LinePrefixReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next prefix entry. It returns io.EOF when exhausted.
func (r *LinePrefixReader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// LoadPrefixes drains reader into a prefix table for WithPrefixes.
func LoadPrefixes(reader PrefixReader) ([]string, error) {
	var prefixes []string
	for {
		prefix, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, prefix)
	}
	tracer().Infof("loaded %d verbal prefixes", len(prefixes))
	return prefixes, nil
}
