// Package hyphenlist turns Yiddish running text into a typesetting-ready
// hyphenation list: the unique words of the text, divided at morpheme and
// syllable boundaries, filtered by YIVO typesetting conventions.
//
// Division happens in two stages. A word starting with a verbal particle or
// prefix is first split after the morpheme, so that אָנעסן divides as
// אָנ-עסן and not, per plain syllabification, as אָ-נעסן. The remainder is
// then divided by the syllabifier of package traf. Post-filters drop breaks
// that typesetting rejects: fragments too short to stand at a line edge, and
// any break inside a word of Hebrew or Aramaic origin.
package hyphenlist

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/schuko/tracing"

	"github.com/yidlit/traf"
)

// tracer writes to trace with key 'traf.hyphenlist'
func tracer() tracing.Trace {
	return tracing.Select("traf.hyphenlist")
}

const defaultCacheSize = 8192

type config struct {
	prefixes  []string
	cacheSize int
	split     bool
}

func defaultConfig() config {
	return config{
		prefixes:  verbalPrefixes,
		cacheSize: defaultCacheSize,
		split:     true,
	}
}

// Option configures a Generator.
type Option func(*config)

// WithPrefixes replaces the built-in prefix table. The slice order becomes
// the scan order, so more specific entries must precede their own prefixes.
func WithPrefixes(prefixes []string) Option {
	return func(c *config) {
		c.prefixes = prefixes
	}
}

// WithoutPrefixSplitting turns off the morpheme pre-split. Words are then
// divided by syllable structure alone.
func WithoutPrefixSplitting() Option {
	return func(c *config) {
		c.split = false
	}
}

// WithCacheSize sets the capacity of the per-word result cache. A size of
// zero or less disables caching.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// Generator hyphenates words against one syllabification system. It is safe
// for concurrent use.
type Generator struct {
	inv      *traf.Inventory
	prefixes []string
	split    bool
	cache    *lru.Cache[string, string]
}

// New returns a Generator dividing words with the given inventory.
func New(inv *traf.Inventory, opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Generator{
		inv:      inv,
		prefixes: cfg.prefixes,
		split:    cfg.split,
	}
	if cfg.cacheSize > 0 {
		g.cache, _ = lru.New[string, string](cfg.cacheSize)
	}
	return g
}

// Word hyphenates a single word: morpheme pre-split, syllable division,
// typesetting filters. The result carries a hyphen at every surviving break
// and is rendered in the decomposed Unicode convention. A word that keeps no
// break comes back without hyphens.
func (g *Generator) Word(word string) string {
	if g.cache != nil {
		if hyphenated, ok := g.cache.Get(word); ok {
			return hyphenated
		}
	}
	hyphenated := g.hyphenate(word)
	if g.cache != nil {
		g.cache.Add(word, hyphenated)
	}
	return hyphenated
}

func (g *Generator) hyphenate(word string) string {
	w := word
	if g.split {
		w = g.splitPrefix(w)
	}
	w = g.inv.SyllableString(w)
	return applyFilters(w)
}

// Words hyphenates every unique word of text and returns those that kept at
// least one break, in sorted token order, ready for a \hyphenation list.
func (g *Generator) Words(text string) []string {
	tokens := Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if hyphenated := g.Word(token); strings.Contains(hyphenated, "-") {
			words = append(words, hyphenated)
		}
	}
	tracer().Infof("hyphenation list (%s): %d tokens in, %d words kept",
		g.inv.System(), len(tokens), len(words))
	return words
}
