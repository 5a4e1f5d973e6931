package chat

import "strings"

// PatternKind classifies a definition-style query prefix.
type PatternKind string

const (
	PatternWhatIs  PatternKind = "what-is"
	PatternExplain PatternKind = "explain"
	PatternDefine  PatternKind = "define"
)

// PatternMatch is a recognized definition-style query with its target term.
type PatternMatch struct {
	Kind PatternKind
	Term string
}

// DetectPattern inspects a raw query for definition-style phrasing and
// extracts the target term. Returns nil when no pattern applies. Pure
// function, no side effects.
func DetectPattern(query string) *PatternMatch {
	q := strings.ToLower(strings.TrimSpace(query))

	if rest, ok := strings.CutPrefix(q, "what is "); ok {
		term := strings.TrimSuffix(strings.TrimSpace(rest), "?")
		// Drop a leading article: "what is a stack" -> "stack"
		if cut, ok := strings.CutPrefix(term, "a "); ok {
			term = cut
		} else if cut, ok := strings.CutPrefix(term, "an "); ok {
			term = cut
		}
		return matchOrNil(PatternWhatIs, term)
	}

	if rest, ok := strings.CutPrefix(q, "explain "); ok {
		term := strings.TrimSuffix(strings.TrimSpace(rest), "?")
		// "explain what recursion is" -> "recursion"
		if inner, ok := strings.CutPrefix(term, "what "); ok {
			if inner2, ok := strings.CutSuffix(inner, " is"); ok {
				term = inner2
			}
		}
		return matchOrNil(PatternExplain, term)
	}

	if rest, ok := strings.CutPrefix(q, "define "); ok {
		term := strings.TrimSuffix(strings.TrimSpace(rest), "?")
		return matchOrNil(PatternDefine, term)
	}

	return nil
}

func matchOrNil(kind PatternKind, term string) *PatternMatch {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	return &PatternMatch{Kind: kind, Term: term}
}
