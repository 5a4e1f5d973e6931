package chat

// Common short English words excluded from word-overlap scoring.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "when": true, "while": true,
	"of": true, "to": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "about": true, "into": true, "over": true,
	"under": true, "from": true, "out": true, "off": true, "up": true,
	"down": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "shall": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
	"me": true, "my": true, "your": true, "this": true, "that": true,
	"these": true, "those": true, "there": true, "here": true, "not": true,
	"no": true, "so": true, "as": true, "its": true, "their": true,
	"some": true, "any": true, "all": true, "than": true, "more": true,
	"most": true, "other": true, "such": true, "what": true, "which": true,
	"who": true, "whom": true, "how": true, "why": true, "where": true,
}

// Interrogatives and auxiliaries that carry no topical signal in a
// query; excluded from the query's main words on top of the stopwords.
var questionWords = map[string]bool{
	"what": true, "whats": true, "how": true, "why": true, "when": true,
	"where": true, "which": true, "who": true, "is": true, "are": true,
	"does": true, "do": true, "can": true, "could": true, "would": true,
	"explain": true, "define": true, "describe": true,
}

func isStopword(word string) bool {
	return stopwords[word]
}

func isQuestionWord(word string) bool {
	return questionWords[word]
}
