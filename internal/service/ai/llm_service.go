// Package ai bridges the HTTP handlers to the chat-completion provider.
package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/nexus-connecte/nexus/backend/internal/config"
	chatModel "github.com/nexus-connecte/nexus/backend/internal/model/chat"
	"github.com/nexus-connecte/nexus/backend/internal/model/intake"
)

// Generator is the adapter seam the handlers depend on, so tests can swap in
// a stub for the provider.
type Generator interface {
	GenerateThankYou(ctx context.Context, sub intake.Submission) (string, error)
	ChatReply(ctx context.Context, history []chatModel.Turn) (string, error)
}

// Service runs compiled eino chains against the configured provider. The
// generation chain produces the personalized thank-you message; the chat
// chain answers the widget with bounded output at a fixed temperature.
type Service struct {
	genChain  compose.Runnable[map[string]any, *schema.Message]
	chatChain compose.Runnable[map[string]any, *schema.Message]
}

var _ Generator = (*Service)(nil)

// NewService builds the two chat models and compiles their chains.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	genModel, err := cfg.NewChatModel(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation model: %w", err)
	}

	maxTokens := cfg.ChatMaxTokens
	temperature := cfg.ChatTemperature
	widgetModel, err := cfg.NewChatModel(ctx, &maxTokens, &temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	genTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	genChain := compose.NewChain[map[string]any, *schema.Message]()
	genChain.AppendChatTemplate(genTemplate)
	genChain.AppendChatModel(genModel)

	genRunnable, err := genChain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile generation chain: %w", err)
	}

	chatTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
	)

	chatChain := compose.NewChain[map[string]any, *schema.Message]()
	chatChain.AppendChatTemplate(chatTemplate)
	chatChain.AppendChatModel(widgetModel)

	chatRunnable, err := chatChain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{genChain: genRunnable, chatChain: chatRunnable}, nil
}

// GenerateThankYou produces the personalized confirmation message for a
// validated submission. An empty completion is returned as-is, not an error.
func (s *Service) GenerateThankYou(ctx context.Context, sub intake.Submission) (string, error) {
	input := map[string]any{
		"system": thankYouSystemPrompt,
		"query":  buildThankYouQuery(sub, time.Now().Year()),
	}

	response, err := s.genChain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run generation chain: %w", err)
	}

	log.Printf("[ai] generated thank-you for mission=%s, length=%d", sub.Mission, len(response.Content))
	return response.Content, nil
}

// ChatReply answers the widget conversation. The Nexus assistant persona is
// prepended as the system turn; the caller supplies the full history.
func (s *Service) ChatReply(ctx context.Context, history []chatModel.Turn) (string, error) {
	input := map[string]any{
		"system":  assistantSystemPrompt,
		"history": buildHistoryMessages(history),
	}

	response, err := s.chatChain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	return response.Content, nil
}

// buildHistoryMessages converts widget turns into model messages. Turns with
// unknown roles are skipped.
func buildHistoryMessages(turns []chatModel.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case chatModel.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chatModel.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return history
}
