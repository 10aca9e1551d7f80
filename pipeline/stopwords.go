package pipeline

// stopWords are common English function words excluded from keyword scoring.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "any", "can",
		"had", "her", "was", "one", "our", "out", "day", "get", "has", "him",
		"his", "how", "man", "new", "now", "old", "see", "two", "way", "who",
		"boy", "did", "its", "let", "put", "say", "she", "too", "use", "that",
		"with", "have", "this", "will", "your", "from", "they", "know", "want",
		"been", "good", "much", "some", "time", "very", "when", "come", "here",
		"just", "like", "long", "make", "many", "more", "most", "only", "over",
		"such", "take", "than", "them", "well", "were", "what", "also", "into",
		"other", "which", "their", "there", "would", "could", "should", "about",
		"after", "again", "before", "being", "below", "between", "both", "each",
		"down", "during", "few", "further", "having", "once", "then",
		"these", "those", "through", "under", "until", "while", "where", "why",
		"above", "against", "because", "does", "doing", "off", "same",
		"own", "must", "may", "might", "shall", "able", "per", "via", "etc",
		"including", "include", "includes", "required", "requirements",
		"preferred", "plus", "years", "year", "experience", "work", "working",
		"strong", "ability", "skills", "skill", "knowledge", "team", "role",
		"position", "job", "candidate", "candidates", "applicant", "applicants",
		"ideal", "looking", "seek", "seeking", "join", "help", "related",
		"degree", "field", "equivalent", "minimum", "least", "proven",
		"excellent", "familiarity", "familiar", "understanding", "environment",
		"responsibilities", "responsible", "duties", "within", "across",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}
