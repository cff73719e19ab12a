package viu

import (
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Query syntax, as in fzf:
//
//	foo     fuzzy subsequence
//	'foo    exact substring
//	^foo    prefix
//	foo$    suffix
//	!foo    negation of any of the above
//	a b     all terms must match
//	a | b   either group must match
//
// A term containing an upper-case letter is matched case-sensitively.

func init() {
	algo.Init("default")
}

// filterSlab is scratch space for the matchers. Queries run on the event
// loop only.
var filterSlab = util.MakeSlab(100*1024, 2048)

// FilterQuery is a parsed query. Parse once, match many.
type FilterQuery struct {
	groups [][]filterTerm
}

type termKind uint8

const (
	termFuzzy termKind = iota
	termExact
	termPrefix
	termSuffix
)

type filterTerm struct {
	runes         []rune
	kind          termKind
	negated       bool
	caseSensitive bool
}

type matcher func(bool, bool, bool, *util.Chars, []rune, bool, *util.Slab) (algo.Result, *[]int)

var matchers = [...]matcher{
	termFuzzy:  algo.FuzzyMatchV2,
	termExact:  algo.ExactMatchNaive,
	termPrefix: algo.PrefixMatch,
	termSuffix: algo.SuffixMatch,
}

// ParseFilterQuery parses raw. An empty query matches everything.
func ParseFilterQuery(raw string) FilterQuery {
	var q FilterQuery
	for _, part := range strings.Split(strings.TrimSpace(raw), " | ") {
		var group []filterTerm
		for _, tok := range strings.Fields(part) {
			group = append(group, parseTerm(tok))
		}
		if len(group) > 0 {
			q.groups = append(q.groups, group)
		}
	}
	return q
}

func parseTerm(tok string) filterTerm {
	var t filterTerm
	if len(tok) > 1 && tok[0] == '!' {
		t.negated = true
		tok = tok[1:]
	}
	switch {
	case len(tok) > 1 && tok[0] == '\'':
		t.kind, tok = termExact, tok[1:]
	case len(tok) > 1 && tok[0] == '^':
		t.kind, tok = termPrefix, tok[1:]
	case len(tok) > 1 && tok[len(tok)-1] == '$':
		t.kind, tok = termSuffix, tok[:len(tok)-1]
	}
	t.caseSensitive = strings.IndexFunc(tok, unicode.IsUpper) >= 0
	if !t.caseSensitive {
		tok = strings.ToLower(tok)
	}
	t.runes = []rune(tok)
	return t
}

// Empty reports whether the query has no terms.
func (q FilterQuery) Empty() bool {
	return len(q.groups) == 0
}

// Score matches candidate against the query. Higher scores are better
// matches; the score of a group is the sum of its terms.
func (q FilterQuery) Score(candidate string) (int, bool) {
	if q.Empty() {
		return 0, true
	}
	chars := util.ToChars([]byte(candidate))
	best, matched := 0, false
	for _, group := range q.groups {
		score, ok := groupScore(group, &chars)
		if ok && (!matched || score > best) {
			best, matched = score, true
		}
	}
	return best, matched
}

// Match reports whether candidate satisfies the query.
func (q FilterQuery) Match(candidate string) bool {
	_, ok := q.Score(candidate)
	return ok
}

func groupScore(group []filterTerm, chars *util.Chars) (int, bool) {
	total := 0
	for _, t := range group {
		res, _ := matchers[t.kind](t.caseSensitive, false, true, chars, t.runes, false, filterSlab)
		hit := res.Start >= 0
		if t.negated {
			if hit {
				return 0, false
			}
			continue
		}
		if !hit {
			return 0, false
		}
		total += res.Score
	}
	return total, true
}
