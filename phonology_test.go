package traf

import (
	"reflect"
	"testing"
)

func TestPreprocessConsonantalYud(t *testing.T) {
	cases := []struct {
		name string
		word string // canonicalized
		want []string
	}{
		{
			"yud before komets alef",
			"\u05d9\ufb2f\u05e8", // יאָר
			[]string{"j", "\ufb2f", "\u05e8"},
		},
		{
			"yud before khirik yud",
			"\u05d9\ufb1d\u05d3\u05d9\u05e9", // ייִדיש
			[]string{"j", "\ufb1d", "\u05d3", "\u05d9", "\u05e9"},
		},
		{
			"yud before ayin",
			"\u05d9\u05e2\u05d3\u05e2\u05e8", // יעדער
			[]string{"j", "\u05e2", "\u05d3", "\u05e2", "\u05e8"},
		},
		{
			"yud before melupm vov stays a vowel",
			"\u05d9\ufb35", // יוּ
			[]string{"\u05d9", "\ufb35"},
		},
		{
			"yud before a consonant stays a vowel",
			"\u05de\u05d9\u05d8", // מיט
			[]string{"\u05de", "\u05d9", "\u05d8"},
		},
	}
	for _, c := range cases {
		if got := Preprocess(c.word); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: Preprocess(%q) = %q, want %q", c.name, c.word, got, c.want)
		}
	}
}

func TestPreprocessSyllabicSonorants(t *testing.T) {
	cases := []struct {
		name string
		word string // canonicalized
		want []string
	}{
		{
			"nun between consonants",
			"\u05e1\u05e0\u05e1", // סנס
			[]string{"\u05e1", "\u0146", "\u05e1"},
		},
		{
			"final nun after a consonant",
			"\u05dc\ufb2f\ufb4e\u05df", // לאָפֿן
			[]string{"\u05dc", "\ufb2f", "\ufb4e", "\u0145"},
		},
		{
			"final lamed after a consonant",
			"\u05de\u05d9\u05d8\u05dc", // מיטל
			[]string{"\u05de", "\u05d9", "\u05d8", "\u013c"},
		},
		{
			"nun inside a cluster",
			"\ufb2f\u05f0\u05e0\u05d8", // אָװנט
			[]string{"\ufb2f", "\u05f0", "\u0146", "\u05d8"},
		},
		{
			"final nun after a vowel stays a consonant",
			"\u05d1\ufb2e\u05df", // באַן
			[]string{"\u05d1", "\ufb2e", "\u05df"},
		},
		{
			"nun before a vowel stays a consonant",
			"\u05d2\u05e0\ufb2f", // גנאָ
			[]string{"\u05d2", "\u05e0", "\ufb2f"},
		},
	}
	for _, c := range cases {
		if got := Preprocess(c.word); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: Preprocess(%q) = %q, want %q", c.name, c.word, got, c.want)
		}
	}
}

func TestPreprocessWordBoundary(t *testing.T) {
	// A word-initial nun or lamed is always a consonant and is restored after
	// the context rewrite. A word-initial final nun has no restore.
	cases := []struct {
		name string
		word string
		want []string
	}{
		{"initial nun", "\u05e0\u05e1", []string{"\u05e0", "\u05e1"}},
		{"initial lamed", "\u05dc\u05e1", []string{"\u05dc", "\u05e1"}},
		{"bare final nun", "\u05df", []string{"\u0145"}},
	}
	for _, c := range cases {
		if got := Preprocess(c.word); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: Preprocess(%q) = %q, want %q", c.name, c.word, got, c.want)
		}
	}
}

func TestPreprocessSpaceBlocksSyllabicReading(t *testing.T) {
	// A space counts like a vowel on the left side of the sonorant check, so a
	// nun opening the second word keeps its consonant reading.
	got := Preprocess("\u05e1 \u05e0\u05e1") // ס נס
	want := []string{"\u05e1", " ", "\u05e0", "\u05e1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Preprocess(%q) = %q, want %q", "\u05e1 \u05e0\u05e1", got, want)
	}
}

func TestPreprocessEmpty(t *testing.T) {
	if got := Preprocess(""); len(got) != 0 {
		t.Errorf("Preprocess of the empty word should yield no tokens, got %q", got)
	}
}
