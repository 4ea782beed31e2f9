package emotion

import (
	"context"
	"fmt"
	"sort"

	"gitagpt/internal/model"
)

// Detect classifies the emotional content of text. Scores below the
// threshold are dropped; when nothing clears it a neutral entry is
// returned so callers always get at least one emotion on success.
// Errors from the inference API propagate to the caller.
func (d *HFDetector) Detect(ctx context.Context, text string) ([]model.Emotion, error) {
	if d.hf == nil {
		return nil, fmt.Errorf("%s: inference client not configured", LogPrefixDetect)
	}

	scores, err := d.hf.ClassifyText(ctx, d.model, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixDetect, err)
	}

	var emotions []model.Emotion
	for _, s := range scores {
		if s.Score < d.threshold {
			continue
		}
		hint, ok := displayHints[s.Label]
		if !ok {
			hint = neutralHint
		}
		emotions = append(emotions, model.Emotion{
			Label:      s.Label,
			Confidence: s.Score,
			Emoji:      hint.Emoji,
			Color:      hint.Color,
		})
	}

	if len(emotions) == 0 {
		return []model.Emotion{neutralEmotion()}, nil
	}

	sort.Slice(emotions, func(i, j int) bool {
		return emotions[i].Confidence > emotions[j].Confidence
	})

	d.l.Debugf(ctx, "%s: detected %d emotions, dominant %s (%.2f)",
		LogPrefixDetect, len(emotions), emotions[0].Label, emotions[0].Confidence)

	return emotions, nil
}

// Dominant returns the highest-confidence emotion, or neutral for an
// empty slice.
func Dominant(emotions []model.Emotion) model.Emotion {
	if len(emotions) == 0 {
		return neutralEmotion()
	}
	best := emotions[0]
	for _, e := range emotions[1:] {
		if e.Confidence > best.Confidence {
			best = e
		}
	}
	return best
}

func neutralEmotion() model.Emotion {
	return model.Emotion{
		Label:      "neutral",
		Confidence: NeutralConfidence,
		Emoji:      neutralHint.Emoji,
		Color:      neutralHint.Color,
	}
}
