package chat

import (
	"testing"

	"github.com/coursechat/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFAQ(id uint, question, answer string, keywords []string, topic string) models.FAQ {
	faq := models.FAQ{
		Question: question,
		Answer:   answer,
		Keywords: models.StringArray(keywords),
	}
	faq.ID = id
	if topic != "" {
		faq.Topic = &models.Topic{Name: topic}
	}
	return faq
}

func makeNote(id uint, title, content string, keywords []string, topic string) models.Note {
	note := models.Note{
		Title:    title,
		Content:  content,
		Keywords: models.StringArray(keywords),
		IsActive: true,
	}
	note.ID = id
	if topic != "" {
		note.Topic = &models.Topic{Name: topic}
	}
	return note
}

func TestBuildCandidates_FAQsFirst(t *testing.T) {
	faqs := []models.FAQ{makeFAQ(1, "What is an array?", "An array is...", nil, "")}
	notes := []models.Note{makeNote(2, "Arrays", "Arrays store elements...", nil, "")}

	candidates := BuildCandidates(faqs, notes)
	require.Len(t, candidates, 2)
	assert.Equal(t, KindFAQ, candidates[0].Kind)
	assert.Equal(t, KindNote, candidates[1].Kind)
}

func TestScoreFreeQuery_ExactPhraseWins(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "What is recursion?", "Recursion is when a function calls itself.", nil, ""),
		makeFAQ(2, "What is iteration?", "Iteration repeats a block of code.", nil, ""),
	}, nil)

	scored := ScoreFreeQuery("recursion", candidates)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Candidate.ID())
	assert.GreaterOrEqual(t, scored[0].Score, weightExactPhrase)
}

func TestScoreFreeQuery_KeywordAndTopic(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "What are variables in programming?",
			"Variables are containers for storing data values.",
			[]string{"variable", "data type"}, "Programming Basics"),
	}, nil)

	scored := ScoreFreeQuery("how do I use a variable in programming basics", candidates)
	require.Len(t, scored, 1)
	// keyword hit plus topic-name hit at minimum
	assert.GreaterOrEqual(t, scored[0].Score, weightKeyword+weightTopicName)
}

func TestScoreFreeQuery_DefinitionQueryClearsThreshold(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "What are variables in programming?",
			"Variables are containers for storing data values. A variable has a name and a value.",
			[]string{"variable", "data", "memory"}, "Programming Basics"),
	}, nil)

	scored := ScoreFreeQuery("What is a variable?", candidates)
	require.Len(t, scored, 1)
	assert.GreaterOrEqual(t, scored[0].Score, DefaultFreeQueryThreshold)
}

func TestScoreFreeQuery_SingleTitleWordNeedsSingleWordTitle(t *testing.T) {
	multi := BuildCandidates(nil, []models.Note{
		makeNote(1, "Networking fundamentals overview", "Networks connect computers.", nil, ""),
	})
	single := BuildCandidates(nil, []models.Note{
		makeNote(2, "Networking", "Networks connect computers.", nil, ""),
	})

	// One significant title word matching a multi-word title scores no
	// title points; the same match against a one-word title does.
	multiScored := ScoreFreeQuery("networking", multi)
	singleScored := ScoreFreeQuery("networking", single)

	require.NotEmpty(t, singleScored)
	var multiScore float64
	if len(multiScored) > 0 {
		multiScore = multiScored[0].Score
	}
	assert.Greater(t, singleScored[0].Score, multiScore)
}

func TestScoreFreeQuery_NoCandidates(t *testing.T) {
	assert.Empty(t, ScoreFreeQuery("anything at all", nil))
	assert.Empty(t, ScoreFreeQuery("", BuildCandidates([]models.FAQ{makeFAQ(1, "q", "a", nil, "")}, nil)))
}

func TestScoreFreeQuery_ZeroScoresExcluded(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "What is the CPU?", "The CPU executes instructions.", []string{"cpu"}, ""),
	}, nil)

	scored := ScoreFreeQuery("when is the exam due", candidates)
	assert.Empty(t, scored)
}

func TestScoreFreeQuery_SortedDescending(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "What is an array?", "An array stores elements by index.", []string{"array", "index"}, "Data Structures"),
		makeFAQ(2, "What is a linked list?", "A linked list chains nodes together.", []string{"linked list"}, "Data Structures"),
	}, nil)

	scored := ScoreFreeQuery("how does an array index work in data structures", candidates)
	require.NotEmpty(t, scored)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
	assert.Equal(t, uint(1), scored[0].Candidate.ID())
}

func TestScoreTerm_TitleMatch(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "What is recursion?", "Recursion is when a function calls itself. Recursion needs a base case. Recursion can be elegant.", nil, ""),
	}, nil)

	scored := ScoreTerm("recursion", candidates)
	require.Len(t, scored, 1)
	// title + body + main-subject + primary-focus
	assert.GreaterOrEqual(t, scored[0].Score, termWeightTitle+termWeightBody)
	assert.GreaterOrEqual(t, scored[0].Score, DefaultTermLookupThreshold)
}

func TestScoreTerm_PartialOverlapBelowThreshold(t *testing.T) {
	candidates := BuildCandidates(nil, []models.Note{
		makeNote(1, "Sorting overview", "A stack is mentioned once here in passing.", nil, ""),
	})

	// Only one word of the term appears anywhere; not enough to beat the
	// generative fallback.
	scored := ScoreTerm("stack frames", candidates)
	require.Len(t, scored, 1)
	assert.Less(t, scored[0].Score, DefaultTermLookupThreshold)
}

func TestScoreTerm_KeywordInsideTerm(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{
		makeFAQ(1, "Understanding memory", "Memory holds data.", []string{"heap"}, ""),
	}, nil)

	scored := ScoreTerm("heap allocation", candidates)
	require.Len(t, scored, 1)
	assert.GreaterOrEqual(t, scored[0].Score, termWeightKeyword)
}

func TestScoreTerm_Empty(t *testing.T) {
	candidates := BuildCandidates([]models.FAQ{makeFAQ(1, "q", "a", nil, "")}, nil)
	assert.Empty(t, ScoreTerm("", candidates))
	assert.Empty(t, ScoreTerm("   ", candidates))
}

func TestIsMainSubject(t *testing.T) {
	assert.True(t, isMainSubject("recursion explained for beginners", "recursion"))
	assert.True(t, isMainSubject("what is a stack", "stack"))
	assert.False(t, isMainSubject("sorting algorithms compared against recursion", "recursion"))
	assert.False(t, isMainSubject("sorting algorithms", "recursion"))
}

func TestIsPrimaryFocus(t *testing.T) {
	assert.True(t, isPrimaryFocus("arrays", "arrays are simple", "arrays"))
	assert.True(t, isPrimaryFocus("all about arrays and their many uses",
		"arrays here, arrays there, arrays everywhere", "arrays"))
	assert.False(t, isPrimaryFocus("all about arrays and their many uses",
		"arrays are mentioned once", "arrays"))
}

func TestWordsOverlap(t *testing.T) {
	assert.True(t, wordsOverlap("variable", "variable"))
	assert.True(t, wordsOverlap("variable", "variables"))
	assert.True(t, wordsOverlap("variables", "variable"))
	assert.False(t, wordsOverlap("variable", "function"))
}
