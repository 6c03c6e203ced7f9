package relay

import (
	"context"
	"log"

	"github.com/Vovarama1992/rcs-story-bridge/internal/ai"
)

// storyPrompt goes to the backend as-is on every trigger. The word target is
// advisory to the backend only; the reply is not trimmed or validated here.
const storyPrompt = "Generate a short, calming bedtime story for children (approx. 100-150 words)."

// storyFallback is what the user gets when generation fails. The user must
// always receive some reply; the error itself only goes to the log.
const storyFallback = "Oops! I couldn't generate a story right now. Please try again later."

// StoryGenerator wraps the AI backend with the fixed prompt and the fixed
// fallback. One attempt per call, no retry, no caching between calls.
type StoryGenerator struct {
	ai ai.AI
}

func NewStoryGenerator(backend ai.AI) *StoryGenerator {
	return &StoryGenerator{ai: backend}
}

func (g *StoryGenerator) Generate(ctx context.Context) StoryResult {
	text, err := g.ai.Complete(ctx, storyPrompt)
	if err != nil {
		log.Printf("[relay] story generation failed: %v", err)
		return StoryResult{Text: storyFallback}
	}
	return StoryResult{Text: text, Generated: true}
}
