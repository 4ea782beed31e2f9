package reflection

import (
	"context"
	"fmt"
	"strings"

	"gitagpt/internal/model"
	"gitagpt/pkg/llmprovider"
)

// Generate produces a reflection for the given input. The LLM provider
// chain is tried first; on any failure the pure template path takes
// over, so Generate itself never fails.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) Result {
	req := g.buildRequest(input)

	resp, err := g.llm.GenerateContent(ctx, req)
	if err == nil {
		text := strings.TrimSpace(resp.Text())
		if text != "" {
			return Result{Text: text}
		}
		g.l.Warnf(ctx, "%s: empty LLM response, using template fallback", LogPrefixGenerate)
	} else {
		g.l.Warnf(ctx, "%s: generation failed, using template fallback: %v", LogPrefixGenerate, err)
	}

	return Result{
		Text:         RenderTemplate(input.Mode, input.Emotion, input.Verses),
		UsedFallback: true,
	}
}

// buildRequest assembles the normalized LLM request for the input's
// prompt kind and mode.
func (g *Generator) buildRequest(input GenerateInput) *llmprovider.Request {
	var system string
	var user strings.Builder

	switch input.Kind {
	case KindCasual:
		system = promptCasualSystem
		user.WriteString(formatHistory(input.History))
		user.WriteString("\nSeeker: ")
		user.WriteString(input.UserInput)

	default:
		system = modeInstructions(input.Mode)
		if input.Emotion != nil {
			fmt.Fprintf(&user, "Seeker's emotional state: %s (confidence %.2f)\n",
				input.Emotion.Label, input.Emotion.Confidence)
		}
		fmt.Fprintf(&user, "Seeker's message: %s\n\n", input.UserInput)
		user.WriteString(formatHistory(input.History))
		user.WriteString("\nAVAILABLE VERSES (choose the ONE most relevant):\n")
		user.WriteString(formatVerses(input.Verses))
	}

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: user.String()}},
			},
		},
		Temperature: GenerationTemperature,
		MaxTokens:   GenerationMaxTokens,
	}
}

// RenderTemplate produces a deterministic reflection from the first
// verse and the detected emotion. It is pure and cannot fail; with no
// verses it degrades to a generic supportive message.
func RenderTemplate(mode model.InteractionMode, emotion *model.Emotion, verses []model.Verse) string {
	if len(verses) == 0 {
		return "I understand you're seeking guidance. While I'm having technical difficulties, " +
			"please know that every challenge is an opportunity for growth and self-reflection."
	}

	verse := verses[0]
	emotionLabel := "seeking"
	if emotion != nil && emotion.Label != "" {
		emotionLabel = emotion.Label
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I sense you're feeling %s, and I want you to know that your feelings are valid.\n\n", emotionLabel)
	fmt.Fprintf(&b, "**Verse %d.%d:**\n\n", verse.Chapter, verse.Verse)
	fmt.Fprintf(&b, "Sanskrit: %s\n\n", verse.Shloka)
	fmt.Fprintf(&b, "English: %s\n\n", verse.EngMeaning)
	b.WriteString("This ancient wisdom reminds us that all emotions are temporary and serve as teachers " +
		"on our spiritual journey. The Bhagavad Gita teaches us to observe our feelings with compassion " +
		"while staying connected to our deeper purpose.\n\n")
	b.WriteString(templateClosing(mode))

	return b.String()
}

func templateClosing(mode model.InteractionMode) string {
	switch mode {
	case model.ModeSocratic:
		return "As you sit with this verse, ask yourself: what within you resists this truth, and who is the one that witnesses it?"
	case model.ModeStory:
		return "Like Arjuna on the battlefield of Kurukshetra, you stand at a crossroads where this verse can light the way forward."
	default:
		return "Take a moment to breathe deeply and reflect on how this verse might offer guidance for your current situation."
	}
}

func modeInstructions(mode model.InteractionMode) string {
	switch mode {
	case model.ModeSocratic:
		return promptSocraticInstructions
	case model.ModeStory:
		return promptStoryInstructions
	default:
		return promptWisdomInstructions
	}
}

func formatHistory(history []model.Message) string {
	if len(history) == 0 {
		return "This is the beginning of our conversation.\n"
	}

	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	b.WriteString("Previous conversation:\n")
	for _, msg := range history[start:] {
		fmt.Fprintf(&b, "%s: %s\n", roleLabel(msg.Role), msg.Content)
	}
	return b.String()
}

func roleLabel(role model.MessageRole) string {
	if role == model.RoleAssistant {
		return "Krishna"
	}
	return "Seeker"
}

func formatVerses(verses []model.Verse) string {
	var b strings.Builder
	for i, v := range verses {
		fmt.Fprintf(&b, "Option %d (Verse %d.%d):\n", i+1, v.Chapter, v.Verse)
		fmt.Fprintf(&b, "Sanskrit: %s\n", v.Shloka)
		if v.Transliteration != "" {
			fmt.Fprintf(&b, "Transliteration: %s\n", v.Transliteration)
		}
		fmt.Fprintf(&b, "English: %s\n\n", v.EngMeaning)
	}
	return b.String()
}
