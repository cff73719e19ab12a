package viu

import "testing"

func TestParseFilterQuery(t *testing.T) {
	t.Run("simple fuzzy", func(t *testing.T) {
		q := ParseFilterQuery("foo")
		if len(q.groups) != 1 || len(q.groups[0]) != 1 {
			t.Fatalf("expected 1 group with 1 term, got %v", q.groups)
		}
		term := q.groups[0][0]
		if term.kind != termFuzzy {
			t.Errorf("expected fuzzy, got %d", term.kind)
		}
		if string(term.runes) != "foo" {
			t.Errorf("expected 'foo', got %q", string(term.runes))
		}
		if term.negated || term.caseSensitive {
			t.Error("expected plain lowercase term")
		}
	})

	t.Run("case sensitive when uppercase", func(t *testing.T) {
		q := ParseFilterQuery("Foo")
		if !q.groups[0][0].caseSensitive {
			t.Error("uppercase pattern should be case-sensitive")
		}
	})

	t.Run("term kinds", func(t *testing.T) {
		tests := []struct {
			raw     string
			kind    termKind
			pattern string
			negated bool
		}{
			{"'exact", termExact, "exact", false},
			{"^pre", termPrefix, "pre", false},
			{"suf$", termSuffix, "suf", false},
			{"!neg", termFuzzy, "neg", true},
			{"!'nx", termExact, "nx", true},
			{"!", termFuzzy, "!", false},
		}
		for _, tt := range tests {
			term := ParseFilterQuery(tt.raw).groups[0][0]
			if term.kind != tt.kind || string(term.runes) != tt.pattern || term.negated != tt.negated {
				t.Errorf("%q: expected kind %d %q negated=%v, got kind %d %q negated=%v",
					tt.raw, tt.kind, tt.pattern, tt.negated, term.kind, string(term.runes), term.negated)
			}
		}
	})

	t.Run("and or", func(t *testing.T) {
		q := ParseFilterQuery("a b | c")
		if len(q.groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(q.groups))
		}
		if len(q.groups[0]) != 2 || len(q.groups[1]) != 1 {
			t.Errorf("expected 2 and 1 terms, got %d and %d", len(q.groups[0]), len(q.groups[1]))
		}
	})

	t.Run("empty", func(t *testing.T) {
		q := ParseFilterQuery("   ")
		if !q.Empty() {
			t.Error("expected empty query")
		}
		if !q.Match("anything") {
			t.Error("empty query should match everything")
		}
	})
}

func TestFilterQueryMatch(t *testing.T) {
	tests := []struct {
		query     string
		candidate string
		expect    bool
	}{
		{"foo", "xfxoxo", true},
		{"foo", "fxo", false},
		{"'oo", "foo", true},
		{"'oo", "fxo", false},
		{"^fo", "foo", true},
		{"^oo", "foo", false},
		{"oo$", "foo", true},
		{"fo$", "foo", false},
		{"!bar", "foo", true},
		{"!bar", "foobar", false},
		{"f o", "foo", true},
		{"f z", "foo", false},
		{"zz | fo", "foo", true},
		{"Foo", "foo", false},
		{"foo", "FOO", true},
	}
	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.candidate, func(t *testing.T) {
			q := ParseFilterQuery(tt.query)
			if got := q.Match(tt.candidate); got != tt.expect {
				t.Errorf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestFilterQueryScore(t *testing.T) {
	q := ParseFilterQuery("abc")
	tight, ok1 := q.Score("abc")
	loose, ok2 := q.Score("a_b_c")
	if !ok1 || !ok2 {
		t.Fatal("expected both to match")
	}
	if tight <= loose {
		t.Errorf("expected contiguous match to score higher, got %d <= %d", tight, loose)
	}
}
