package classifier

import (
	"context"
	"strings"

	"gitagpt/internal/model"
)

// intentLabels are the zero-shot candidate labels, in tie-break priority order
var intentLabels = []string{
	string(model.IntentSpiritualGuidance),
	string(model.IntentEmotionalQuery),
	string(model.IntentCasualChat),
}

// Classify determines user intent from text. It never fails: the model tier
// is optional and the keyword heuristic always produces a result.
func (c *IntentClassifier) Classify(ctx context.Context, text string) model.Classification {
	// Tier 1: rule-based patterns for common casual messages
	if isCasualByRules(text) {
		return model.Classification{
			Intent:     model.IntentCasualChat,
			Confidence: RuleBasedConfidence,
			Method:     model.MethodRuleBased,
		}
	}

	// Tier 2: zero-shot model, trusted only above the threshold
	if c.hf != nil {
		result, err := c.hf.ZeroShotClassify(ctx, c.model, text, intentLabels)
		switch {
		case err != nil:
			c.l.Warnf(ctx, "%s: zero-shot call failed, falling to heuristic: %v", LogPrefixClassify, err)
		case len(result.Labels) == 0:
			c.l.Warnf(ctx, "%s: empty zero-shot result, falling to heuristic", LogPrefixClassify)
		case result.Scores[0] >= c.threshold:
			intent := parseIntent(result.Labels[0])
			c.l.Infof(ctx, "%s: classified as %s (confidence %.2f, model)", LogPrefixClassify, intent, result.Scores[0])
			return model.Classification{
				Intent:     intent,
				Confidence: result.Scores[0],
				Method:     model.MethodModelBased,
			}
		default:
			c.l.Infof(ctx, "%s: model confidence %.2f below threshold %.2f, falling to heuristic",
				LogPrefixClassify, result.Scores[0], c.threshold)
		}
	}

	// Tier 3: keyword heuristic, always succeeds
	return c.classifyByKeywords(ctx, text)
}

// classifyByKeywords scores the input against the per-intent keyword lists.
// Most matches wins; ties resolve by fixed priority
// SpiritualGuidance > EmotionalQuery > CasualChat.
func (c *IntentClassifier) classifyByKeywords(ctx context.Context, text string) model.Classification {
	lower := strings.ToLower(text)

	scores := []struct {
		intent model.Intent
		count  int
	}{
		{model.IntentSpiritualGuidance, countKeywords(lower, spiritualKeywords)},
		{model.IntentEmotionalQuery, countKeywords(lower, emotionalKeywords)},
		{model.IntentCasualChat, countKeywords(lower, casualKeywords)},
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.count > best.count {
			best = s
		}
	}

	intent := best.intent
	if best.count == 0 {
		intent = model.IntentCasualChat
	}

	c.l.Infof(ctx, "%s: classified as %s (heuristic, %d keyword matches)", LogPrefixClassify, intent, best.count)
	return model.Classification{
		Intent:     intent,
		Confidence: HeuristicConfidence,
		Method:     model.MethodKeywordHeuristic,
	}
}

func isCasualByRules(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, pattern := range casualPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	// Very short inputs containing a greeting word are casual
	if len(strings.Fields(lower)) <= shortGreetingMaxWords {
		for _, word := range shortGreetingWords {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}

	return false
}

func countKeywords(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

func parseIntent(label string) model.Intent {
	switch model.Intent(label) {
	case model.IntentEmotionalQuery:
		return model.IntentEmotionalQuery
	case model.IntentSpiritualGuidance:
		return model.IntentSpiritualGuidance
	default:
		return model.IntentCasualChat
	}
}
