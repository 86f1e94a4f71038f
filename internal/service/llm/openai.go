// Package llm adapts an OpenAI-compatible chat API for tool routing
// and result narration.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	drepo "SolPulse/internal/domain/repository"
	"SolPulse/pkg/config"
	applogger "SolPulse/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

const (
	routeTemperature   = 0.1
	narrateTemperature = 0.7
)

// Service implements ToolLLM on an OpenAI-compatible endpoint.
type Service struct {
	client  *openai.Client
	model   string
	log     *applogger.Logger
	metrics drepo.Metrics
}

// New creates an LLM service from configuration. A custom BaseURL
// allows pointing at any OpenAI-compatible provider.
func New(cfg *config.Config, l *applogger.Logger, m drepo.Metrics) *Service {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}
	return &Service{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.OpenAI.Model,
		log:     l,
		metrics: m,
	}
}

var _ drepo.ToolLLM = (*Service)(nil)

// SelectTool asks the model to route query onto one of tools. Only the
// first tool call of the response is honored.
func (s *Service) SelectTool(ctx context.Context, system, query string, tools []openai.Tool) (*drepo.ToolSelection, string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: routeTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Tools: tools,
	})
	if err != nil {
		s.metrics.RecordLLMCall("route", "error")
		return nil, "", fmt.Errorf("select tool: %w", err)
	}
	if len(resp.Choices) == 0 {
		s.metrics.RecordLLMCall("route", "error")
		return nil, "", fmt.Errorf("select tool: empty response")
	}

	s.metrics.RecordLLMCall("route", "ok")
	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) == 0 {
		return nil, msg.Content, nil
	}

	tc := msg.ToolCalls[0]
	return &drepo.ToolSelection{
		ID:        tc.ID,
		Name:      tc.Function.Name,
		Arguments: tc.Function.Arguments,
	}, "", nil
}

// Narrate turns a tool result into a natural language answer by
// replaying the tool exchange back to the model.
func (s *Service) Narrate(ctx context.Context, system, query, toolCallID string, data interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("narrate: marshal data: %w", err)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: narrateTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: query},
			{Role: openai.ChatMessageRoleTool, Content: string(payload), ToolCallID: toolCallID},
		},
	})
	if err != nil {
		s.metrics.RecordLLMCall("narrate", "error")
		return "", fmt.Errorf("narrate: %w", err)
	}
	if len(resp.Choices) == 0 {
		s.metrics.RecordLLMCall("narrate", "error")
		return "", fmt.Errorf("narrate: empty response")
	}

	s.metrics.RecordLLMCall("narrate", "ok")
	return resp.Choices[0].Message.Content, nil
}
