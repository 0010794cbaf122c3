// Command traf-syl adds syllable boundaries to a Yiddish word list.
//
// Usage:
//
//	traf-syl -i WORD_LIST.txt -o WORD_LIST_SYLLABIFIED.txt [-s jacobs|viler]
//
// The input holds one YIVO-orthography word per line, in the decomposed
// Unicode convention. The output holds the same words with hyphens at every
// syllable boundary, e.g. אָװנטברױט becomes אָ-װנט-ברױט. The Unicode
// representation of the output is standardized to the decomposed convention
// (except for װ, ױ, ײ), whatever convention the input arrived in.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yidlit/traf"
)

func main() {
	input := flag.String("i", "", "Path to a text file with one word per line")
	output := flag.String("o", "", "Path to a text file that will be written, with one syllabified word per line")
	system := flag.String("s", "jacobs", `Syllabification system: "jacobs" or "viler"`)

	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: traf-syl -i WORD_LIST.txt -o OUTPUT.txt [-s jacobs|viler]")
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

	in, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if _, err := w.WriteString(inv.SyllableString(word) + "\n"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
