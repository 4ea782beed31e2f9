package classifier

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier configuration
const (
	// DefaultModel is the zero-shot classification model
	DefaultModel = "facebook/bart-large-mnli"

	// DefaultConfidenceThreshold gates acceptance of model results
	DefaultConfidenceThreshold = 0.6

	// RuleBasedConfidence is assigned when a rule pattern matches
	RuleBasedConfidence = 0.95

	// HeuristicConfidence is assigned by the keyword fallback tier.
	// Deliberately below the threshold: low confidence but non-null.
	HeuristicConfidence = 0.5

	// shortGreetingMaxWords bounds inputs treated as bare greetings
	shortGreetingMaxWords = 3
)

// casualPatterns match common greetings, meta questions, and sign-offs
var casualPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(hi|hello|hey|namaste|good morning|good evening|good afternoon)\b`),
	regexp.MustCompile(`^(who are you|what are you|what is this|how does this work)\b`),
	regexp.MustCompile(`^(thank you|thanks|bye|goodbye)\b`),
}

// shortGreetingWords flag very short inputs as greetings
var shortGreetingWords = []string{"hi", "hello", "hey", "thanks", "bye"}

// Keyword lists for the heuristic fallback tier, one per intent
var (
	emotionalKeywords = []string{
		"feel", "feeling", "anxious", "worried", "sad", "depressed",
		"stressed", "confused", "guilty", "angry", "frustrated",
		"overwhelmed", "scared", "afraid", "hurt", "pain", "suffering",
	}

	spiritualKeywords = []string{
		"dharma", "karma", "krishna", "arjuna", "gita", "bhagavad",
		"yoga", "meditation", "enlightenment", "moksha", "atman",
		"brahman", "duty", "purpose", "meaning", "wisdom", "teaching",
	}

	casualKeywords = []string{
		"hi", "hello", "hey", "namaste", "thanks", "thank", "bye",
		"goodbye", "morning", "evening",
	}
)
