package chat

import (
	"sort"
	"strings"

	"github.com/coursechat/backend/internal/models"
)

// Scoring weights. These are the policy knobs that trade canned answers
// against the generative fallback; keep them named, never inline.
const (
	// Free-query mode
	weightExactPhrase float64 = 10
	weightKeyword     float64 = 6
	weightTopicName   float64 = 5
	weightTitleWord   float64 = 2
	weightSemanticMax float64 = 4

	// Term-lookup mode
	termWeightTitle       float64 = 10
	termWeightBody        float64 = 4
	termWeightKeyword     float64 = 3
	termWeightTopicInTerm float64 = 2
	termWeightWordOverlap float64 = 1
	termBonusMainSubject  float64 = 2
	termBonusPrimaryFocus float64 = 2

	// Confidence thresholds (overridable via chat.* config keys).
	DefaultFreeQueryThreshold  float64 = 5
	DefaultTermLookupThreshold float64 = 4

	// Length cutoffs for word-overlap scoring.
	significantWordLen = 4 // title words must be longer than this
	mainWordLen        = 3 // query words must be longer than this
	minKeywordLen      = 2 // keywords at or below this are noise
)

// CandidateKind tags which table a candidate came from.
type CandidateKind string

const (
	KindFAQ  CandidateKind = "faq"
	KindNote CandidateKind = "note"
)

// Candidate is a tagged FAQ-or-Note variant with uniform accessors, so
// the scorer never sniffs record shapes.
type Candidate struct {
	Kind CandidateKind
	FAQ  *models.FAQ
	Note *models.Note
}

func (c Candidate) ID() uint {
	if c.Kind == KindFAQ {
		return c.FAQ.ID
	}
	return c.Note.ID
}

// Title is the text a query is matched against: the FAQ question or the
// note title.
func (c Candidate) Title() string {
	if c.Kind == KindFAQ {
		return c.FAQ.Question
	}
	return c.Note.Title
}

// Body is the text returned to the user on a match.
func (c Candidate) Body() string {
	if c.Kind == KindFAQ {
		return c.FAQ.Answer
	}
	return c.Note.Content
}

func (c Candidate) Keywords() []string {
	if c.Kind == KindFAQ {
		return c.FAQ.Keywords
	}
	return c.Note.Keywords
}

func (c Candidate) TopicName() string {
	if c.Kind == KindFAQ {
		if c.FAQ.Topic != nil {
			return c.FAQ.Topic.Name
		}
		return ""
	}
	if c.Note.Topic != nil {
		return c.Note.Topic.Name
	}
	return ""
}

// BuildCandidates flattens FAQ and Note records into a single scoring
// pool, FAQs first so ties resolve toward curated answers.
func BuildCandidates(faqs []models.FAQ, notes []models.Note) []Candidate {
	candidates := make([]Candidate, 0, len(faqs)+len(notes))
	for i := range faqs {
		candidates = append(candidates, Candidate{Kind: KindFAQ, FAQ: &faqs[i]})
	}
	for i := range notes {
		candidates = append(candidates, Candidate{Kind: KindNote, Note: &notes[i]})
	}
	return candidates
}

// ScoredCandidate pairs a candidate with its relevance score.
type ScoredCandidate struct {
	Candidate Candidate
	Score     float64
}

// ScoreFreeQuery ranks candidates against a free-text chat message.
// Candidates with zero score are excluded; the result is sorted by
// descending score, input order preserved on ties.
func ScoreFreeQuery(query string, candidates []Candidate) []ScoredCandidate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	queryMain := mainWords(q)

	var scored []ScoredCandidate
	for _, cand := range candidates {
		score := scoreFreeCandidate(q, queryMain, cand)
		if score > 0 {
			scored = append(scored, ScoredCandidate{Candidate: cand, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreFreeCandidate(query string, queryMain []string, cand Candidate) float64 {
	var score float64

	title := strings.ToLower(cand.Title())
	body := strings.ToLower(cand.Body())

	// Exact phrase containment: the query restates the title.
	if strings.Contains(title, query) {
		score += weightExactPhrase
	}

	// Curated keywords found in the query.
	for _, kw := range cand.Keywords() {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) > minKeywordLen && strings.Contains(query, kw) {
			score += weightKeyword
		}
	}

	// Topic name mentioned in the query.
	if topic := strings.ToLower(cand.TopicName()); topic != "" && strings.Contains(query, topic) {
		score += weightTopicName
	}

	// Significant title words found in the query. A single matching word
	// only counts when the title itself is a single word; otherwise two
	// or more must match before any of them score.
	titleWords := strings.Fields(title)
	matched := 0
	for _, w := range titleWords {
		w = strings.Trim(w, "?!.,;:\"'()")
		if len(w) > significantWordLen && !isStopword(w) && strings.Contains(query, w) {
			matched++
		}
	}
	if matched >= 2 {
		score += weightTitleWord * float64(matched)
	} else if matched == 1 && len(titleWords) == 1 {
		score += weightTitleWord
	}

	// Semantic overlap: fraction of the query's main words appearing in
	// the candidate's, scaled to weightSemanticMax.
	if len(queryMain) > 0 {
		candMain := mainWords(title + " " + body)
		overlap := 0
		for _, qw := range queryMain {
			for _, cw := range candMain {
				if wordsOverlap(qw, cw) {
					overlap++
					break
				}
			}
		}
		score += weightSemanticMax * float64(overlap) / float64(len(queryMain))
	}

	return score
}

// ScoreTerm ranks candidates against a short canonical term extracted by
// the pattern detector.
func ScoreTerm(term string, candidates []Candidate) []ScoredCandidate {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return nil
	}

	var scored []ScoredCandidate
	for _, cand := range candidates {
		score := scoreTermCandidate(t, cand)
		if score > 0 {
			scored = append(scored, ScoredCandidate{Candidate: cand, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreTermCandidate(term string, cand Candidate) float64 {
	var score float64

	title := strings.ToLower(cand.Title())
	body := strings.ToLower(cand.Body())

	if strings.Contains(title, term) {
		score += termWeightTitle
	}
	if strings.Contains(body, term) {
		score += termWeightBody
	}

	// Reversed containment: a short keyword inside the looked-up term.
	for _, kw := range cand.Keywords() {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) > minKeywordLen && strings.Contains(term, kw) {
			score += termWeightKeyword
		}
	}

	if topic := strings.ToLower(cand.TopicName()); topic != "" && strings.Contains(term, topic) {
		score += termWeightTopicInTerm
	}

	// Partial word overlap for multi-word terms.
	for _, w := range strings.Fields(term) {
		if len(w) > mainWordLen && !isStopword(w) &&
			(strings.Contains(title, w) || strings.Contains(body, w)) {
			score += termWeightWordOverlap
		}
	}

	if isMainSubject(title, term) {
		score += termBonusMainSubject
	}
	if isPrimaryFocus(title, body, term) {
		score += termBonusPrimaryFocus
	}

	return score
}

// isMainSubject reports whether the term is what the title is about:
// it appears in the first half of the title, or directly follows a
// defining word.
func isMainSubject(title, term string) bool {
	idx := strings.Index(title, term)
	if idx < 0 {
		return false
	}
	if idx*2 <= len(title) {
		return true
	}

	prefix := strings.Fields(title[:idx])
	if len(prefix) == 0 {
		return true
	}
	switch prefix[len(prefix)-1] {
	case "what", "is", "a", "an", "the", "define", "explain", "about":
		return true
	}
	return false
}

// isPrimaryFocus reports whether the content is chiefly about the term:
// the term is in the title and repeated in the body, or the title is
// short enough that containing the term is commitment enough.
func isPrimaryFocus(title, body, term string) bool {
	inTitle := strings.Contains(title, term)
	if inTitle && strings.Count(body, term) >= 3 {
		return true
	}
	return inTitle && len(strings.Fields(title)) <= 3
}

// mainWords extracts the topical tokens of a text: longer than the
// cutoff, not a stopword, not an interrogative.
func mainWords(text string) []string {
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, "?!.,;:\"'()")
		if len(w) > mainWordLen && !isStopword(w) && !isQuestionWord(w) {
			words = append(words, w)
		}
	}
	return words
}

// wordsOverlap matches a query word against a candidate word allowing
// simple inflection ("variable" vs "variables").
func wordsOverlap(a, b string) bool {
	return a == b || strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}
