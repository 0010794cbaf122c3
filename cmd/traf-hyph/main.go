// Command traf-hyph generates a LaTeX hyphenation file for Yiddish.
//
// Usage:
//
//	traf-hyph -i DOCUMENT.txt -o HYPHENATION.tex -s jacobs|viler
//
// The input is a Yiddish text document in YIVO orthography, written in the
// decomposed Unicode convention (except for װ, ײ, ױ). The output is a TeX
// \hyphenation block holding every word of the text that admits a break,
// ready to be \input{} into a LaTeX document preamble. Words are divided
// after verbal particles and prefixes first, then by syllable structure, per
// YIVO's spelling recommendations: זיך אָנעסן hyphenates as אָנ-עסן, not as
// the plain syllabification אָ-נעסן.
//
// Flags:
//
//	-prefixes FILE   replace the built-in particle table (one entry per
//	                 line, %-comments; file order is scan order)
//	-nfc             run Unicode NFC over the input first, for documents
//	                 saved by editors that decompose Hebrew points
//	-append          merge with the \hyphenation block already in the
//	                 output file, if there is one
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/yidlit/traf"
	"github.com/yidlit/traf/hyphenlist"
	"github.com/yidlit/traf/tex"
)

func main() {
	input := flag.String("i", "", "Path to a Yiddish text document")
	output := flag.String("o", "", "Path to a TeX file that will be written, with one hyphenated word per line")
	system := flag.String("s", "", `Syllabification system: "jacobs" or "viler"`)
	prefixFile := flag.String("prefixes", "", "Path to a file replacing the built-in verbal prefix table")
	nfc := flag.Bool("nfc", false, "Apply Unicode NFC normalization to the input first")
	appendMode := flag.Bool("append", false, "Merge with an existing \\hyphenation block in the output file")

	flag.Parse()

	if *input == "" || *output == "" || *system == "" {
		fmt.Fprintln(os.Stderr, "Usage: traf-hyph -i DOCUMENT.txt -o HYPHENATION.tex -s jacobs|viler [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	sys, err := traf.ParseSystem(*system)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	inv, err := traf.NewInventory(sys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var opts []hyphenlist.Option
	if *prefixFile != "" {
		f, err := os.Open(*prefixFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		prefixes, err := hyphenlist.LoadPrefixes(hyphenlist.NewLinePrefixReader(f))
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading prefix table: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, hyphenlist.WithPrefixes(prefixes))
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	text := string(data)
	if *nfc {
		text = norm.NFC.String(text)
	}

	words := hyphenlist.New(inv, opts...).Words(text)

	if *appendMode {
		existing, err := readExisting(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading existing hyphenation file: %v\n", err)
			os.Exit(1)
		}
		words = merge(existing, words)
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tex.Write(out, words); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readExisting returns the words of the \hyphenation block in path, or
// nothing if the file does not exist yet.
func readExisting(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tex.Read(bytes.NewReader(data))
}

// merge unions two word lists, dropping duplicates, sorted like Tokenize
// sorts its tokens.
func merge(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, w := range list {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			merged = append(merged, w)
		}
	}
	sort.Strings(merged)
	return merged
}
