// Package tex writes and reads TeX \hyphenation exception blocks, the output
// format of the hyphenation-list generator.
package tex

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Write emits words as a \hyphenation block, one word per line:
//
//	\hyphenation{אָנ-עסן
//	דורכ-פֿירן
//	}
//
// The block can be \input{} directly into a LaTeX document preamble. The
// first word shares the opening line with the block header; TeX reads the
// block the same either way, and Read accepts both shapes.
func Write(w io.Writer, words []string) error {
	if _, err := io.WriteString(w, "\\hyphenation{"); err != nil {
		return err
	}
	for _, word := range words {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

// Read collects the words of the first \hyphenation block found in reader.
// Blank lines and %-comments inside the block are skipped. A reader without
// any block yields no words and no error; a block that never closes is an
// error.
func Read(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	var words []string
	inBlock := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !inBlock {
			rest, ok := strings.CutPrefix(line, "\\hyphenation{")
			if !ok {
				continue
			}
			inBlock = true
			line = rest
			if line == "" {
				continue
			}
		}
		if strings.HasPrefix(line, "}") {
			return words, nil
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if inBlock {
		return nil, errors.New("unexpected end of file (unclosed \\hyphenation block)")
	}
	return words, nil
}
