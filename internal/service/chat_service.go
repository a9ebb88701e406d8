package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wellness-service/internal/ai"
)

// companionSystemPrompt seeds every chat completion. Kept as one constant so
// the request contract stays deterministic.
const companionSystemPrompt = `You are 'Healer', a highly empathetic AI companion for students in the Indian higher-education ecosystem. Lead with empathy, acknowledge and validate feelings, and guide with gentle open-ended questions instead of fixing. You are a supportive peer, not a therapist: never give medical advice or diagnoses.

CRITICAL SAFETY PROTOCOL: if the user expresses severe distress, self-harm plans or suicidal thoughts, immediately direct them to the KIRAN National Mental Health Helpline at 1800-599-0019 or the Vandrevala Foundation at 9999666555 (free, 24/7, confidential) and do not continue on the topic.

Keep responses concise, under 150 words, and let the user lead the conversation.`

// Fallbacks shown when the AI collaborator is unavailable. Users never see
// raw errors.
const (
	chatFallback       = "I'm sorry, I'm having a little trouble connecting right now. Please take a deep breath and try again in a moment. I'm here for you."
	moodFallback       = "I hear you. This is tough, but you are not alone in this struggle."
	reflectionFallback = "How can you be a bit more patient with your own progress today?"
)

// ChatService proxies the companion chat and the one-shot insight prompts to
// the external text-completion collaborator.
type ChatService struct {
	llm ai.TextCompletionClient
}

func NewChatService(llm ai.TextCompletionClient) *ChatService {
	return &ChatService{llm: llm}
}

// Chat runs one companion exchange.
func (s *ChatService) Chat(ctx context.Context, message string) string {
	reply, err := s.llm.Complete(ctx, message, ai.Options{SystemPrompt: companionSystemPrompt})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return chatFallback
	}
	return reply
}

// MoodInsight returns a short validation + somatic suggestion for a check-in.
func (s *ChatService) MoodInsight(ctx context.Context, mood string, tags []string) string {
	prompt := fmt.Sprintf("A student is feeling %s due to %s. As a specialized student counselor, provide 1 sentence of deep validation and 1 sentence of actionable somatic advice.",
		mood, strings.Join(tags, ", "))
	reply, err := s.llm.Complete(ctx, prompt, ai.Options{})
	if err != nil {
		log.Printf("mood insight failed: %v", err)
		return moodFallback
	}
	return reply
}

// JournalReflection returns one self-compassion question for a journal entry.
func (s *ChatService) JournalReflection(ctx context.Context, entry string) string {
	prompt := fmt.Sprintf("Analyze this student journal entry: %q. Provide one insightful reflection question that encourages self-compassion within the context of academic life.", entry)
	reply, err := s.llm.Complete(ctx, prompt, ai.Options{})
	if err != nil {
		log.Printf("journal reflection failed: %v", err)
		return reflectionFallback
	}
	return reply
}
