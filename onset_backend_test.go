package traf

import "testing"

// loadOnsets fills an index with the expanded jacobs inventory, guarding
// duplicates the way NewInventory does.
func loadOnsets(idx onsetIndex) {
	for _, skeleton := range jacobsOnsets {
		for _, onset := range expandSkeleton(skeleton) {
			if !idx.has(onset) {
				idx.add(onset)
			}
		}
	}
	for _, c := range consonants {
		if !idx.has(c) {
			idx.add(c)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	ti := newTrieIndex()
	mi := newMapIndex()
	loadOnsets(ti)
	loadOnsets(mi)
	if ti.size() != mi.size() {
		t.Fatalf("backend sizes disagree: trie %d, map %d", ti.size(), mi.size())
	}
	for key := range mi {
		if !ti.has(key) {
			t.Errorf("trie backend is missing key %q", key)
		}
	}
	for _, probe := range []string{
		"\u05e1 \u05d1", // ס ב, not an onset
		"\u05b7",        // bare diacritic
		"x y",
	} {
		if ti.has(probe) != mi.has(probe) {
			t.Errorf("backends disagree on %q: trie %v, map %v", probe, ti.has(probe), mi.has(probe))
		}
		if mi.has(probe) {
			t.Errorf("probe %q should not be in the inventory", probe)
		}
	}
}

func TestTrieIndexPrefix(t *testing.T) {
	ti := newTrieIndex()
	loadOnsets(ti)
	cases := []struct {
		name   string
		prefix string
		want   bool
	}{
		{"shin starts clusters", "\u05e9", true},
		{"shin tes continues", "\u05e9 \u05d8", true},
		{"no shin shin cluster", "\u05e9 \u05e9", false},
		{"nuclei never start onsets", "\ufb2e", false},
	}
	for _, c := range cases {
		if got := ti.hasPrefix(c.prefix); got != c.want {
			t.Errorf("%s: hasPrefix(%q) = %v, want %v", c.name, c.prefix, got, c.want)
		}
	}
}
