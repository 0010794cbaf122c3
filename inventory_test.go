package traf

import (
	"errors"
	"testing"
)

func TestParseSystem(t *testing.T) {
	cases := []struct {
		name string
		want System
	}{
		{"jacobs", Jacobs},
		{"viler", Viler},
	}
	for _, c := range cases {
		sys, err := ParseSystem(c.name)
		if err != nil {
			t.Fatalf("ParseSystem(%q) failed: %v", c.name, err)
		}
		if sys != c.want {
			t.Errorf("ParseSystem(%q) = %v, want %v", c.name, sys, c.want)
		}
		if sys.String() != c.name {
			t.Errorf("System.String() = %q, want %q", sys.String(), c.name)
		}
	}
	if _, err := ParseSystem("weinreich"); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("ParseSystem of an unknown name should wrap ErrUnknownSystem, got %v", err)
	}
}

func TestNewInventoryUnknownSystem(t *testing.T) {
	if _, err := NewInventory(System(9)); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("expected ErrUnknownSystem, got %v", err)
	}
}

func TestInventoryStats(t *testing.T) {
	jacobs, err := NewInventory(Jacobs)
	if err != nil {
		t.Fatal(err)
	}
	viler, err := NewInventory(Viler)
	if err != nil {
		t.Fatal(err)
	}
	js, vs := jacobs.Stats(), viler.Stats()
	if js.Nuclei != 13 || vs.Nuclei != 13 {
		t.Errorf("both systems should know 13 nuclei, got %d and %d", js.Nuclei, vs.Nuclei)
	}
	if js.Consonants != 32 || vs.Consonants != 32 {
		t.Errorf("both systems should know 32 consonants, got %d and %d", js.Consonants, vs.Consonants)
	}
	if js.MaxOnset != 3 || vs.MaxOnset != 3 {
		t.Errorf("longest onset should be 3 graphemes in both systems, got %d and %d", js.MaxOnset, vs.MaxOnset)
	}
	if js.Onsets <= vs.Onsets {
		t.Errorf("the jacobs inventory should be strictly larger: %d vs %d onsets", js.Onsets, vs.Onsets)
	}
}

func TestLegalOnsetJacobs(t *testing.T) {
	inv, err := NewInventory(Jacobs)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		onset []string
		want  bool
	}{
		{"empty onset", nil, true},
		{"singleton", []string{"\u05d1"}, true},                       // ב
		{"samekh tes", []string{"\u05e1", "\u05d8"}, true},            // ס ט
		{"sin tof realization", []string{"\ufb2b", "\ufb4a"}, true},   // שׂ תּ
		{"shtsh", []string{"\u05e9", "\u05d8", "\u05e9"}, true},       // ש ט ש
		{"zhm", []string{"\u05d6", "\u05e9", "\u05de"}, true},         // ז ש מ
		{"dzh", []string{"\u05d3", "\u05d6", "\u05e9"}, true},         // ד ז ש
		{"shpr", []string{"\u05e9", "\ufb44", "\u05e8"}, true},        // ש פּ ר
		{"mr", []string{"\u05de", "\u05e8"}, true},                    // מ ר
		{"sb is no onset", []string{"\u05e1", "\u05d1"}, false},       // ס ב
		{"nucleus is no onset", []string{"\ufb2e"}, false},            // אַ
		{"cluster with nucleus", []string{"\u05d1", "\ufb2e"}, false}, // ב אַ
	}
	for _, c := range cases {
		if got := inv.LegalOnset(c.onset); got != c.want {
			t.Errorf("%s: LegalOnset(%q) = %v, want %v", c.name, c.onset, got, c.want)
		}
	}
}

func TestLegalOnsetViler(t *testing.T) {
	inv, err := NewInventory(Viler)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		onset []string
		want  bool
	}{
		{"singleton", []string{"\u05d1"}, true},                                      // ב
		{"rising sonority", []string{"\u05d1", "\u05e8"}, true},                      // ב ר
		{"affricate", []string{"\u05d8", "\u05e9"}, true},                            // ט ש
		{"obstruent pair divides", []string{"\u05e1", "\u05d8"}, false},              // ס ט
		{"no three-consonant onsets", []string{"\u05e9", "\ufb44", "\u05e8"}, false}, // ש פּ ר
		{"no falling sonority", []string{"\u05de", "\u05e8"}, false},                 // מ ר
	}
	for _, c := range cases {
		if got := inv.LegalOnset(c.onset); got != c.want {
			t.Errorf("%s: LegalOnset(%q) = %v, want %v", c.name, c.onset, got, c.want)
		}
	}
}

func TestPhonemeClassification(t *testing.T) {
	inv, err := NewInventory(Jacobs)
	if err != nil {
		t.Fatal(err)
	}
	// Ayin is listed on both sides; division treats it as a vowel.
	if !inv.IsVowel("\u05e2") || !inv.IsConsonant("\u05e2") {
		t.Errorf("ayin should classify as both vowel and consonant")
	}
	if !inv.IsVowel("\u0146") {
		t.Errorf("syllabic nun should classify as a vowel")
	}
	if inv.IsVowel("\u05d1") || !inv.IsConsonant("\u05d1") {
		t.Errorf("beys should classify as a consonant only")
	}
	if !inv.IsConsonant("j") {
		t.Errorf("consonantal yud should classify as a consonant")
	}
	if inv.IsVowel("q") || inv.IsConsonant("q") {
		t.Errorf("a Latin letter should classify as neither")
	}
}

func TestExpandSkeleton(t *testing.T) {
	// S has three realizations and T two, so S T expands to their product.
	got := expandSkeleton("S T")
	if len(got) != 6 {
		t.Fatalf("S T should expand to 6 onsets, got %d: %q", len(got), got)
	}
	if got[0] != "\u05e1 \u05d8" { // ס ט
		t.Errorf("first expansion of S T should be samekh tes, got %q", got[0])
	}
	// Zh realizes as two letters and contributes both to the key.
	if got := expandSkeleton("Zh M"); len(got) != 1 || got[0] != "\u05d6 \u05e9 \u05de" {
		t.Errorf("Zh M should expand to the single key zayen shin mem, got %q", got)
	}
	if got := expandSkeleton("B"); len(got) != 1 || got[0] != "\u05d1" {
		t.Errorf("B should expand to itself, got %q", got)
	}
}
