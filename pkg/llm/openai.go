package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/consilium-ai/consilium/pkg/tools"
)

// OpenAIProvider speaks the chat-completions dialect. Agents that pin a
// non-Claude model id route here; pointing BaseURL at a compatible gateway
// (OpenRouter, vLLM, LiteLLM) covers the rest of the model zoo.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider builds a provider against the given endpoint. An empty
// baseURL means the upstream OpenAI API.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Complete executes one chat-completion round trip.
func (p *OpenAIProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  toOpenAIMessages(req.System, req.Messages),
		MaxTokens: req.MaxTokens,
		Tools:     toOpenAITools(req.Tools),
	}
	if req.Temperature != nil {
		chatReq.Temperature = float32(*req.Temperature)
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai completion returned no choices")
	}
	return fromOpenAIChoice(resp.Choices[0], resp.Usage), nil
}

func toOpenAIMessages(system string, msgs []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)
	if system != "" {
		out = append(out, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range msgs {
		switch m.Role {
		case RoleAssistant:
			msg := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: m.Content,
			}
			for _, tc := range m.ToolCalls {
				args, _ := json.Marshal(tc.Input)
				msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: string(args),
					},
				})
			}
			out = append(out, msg)
		default:
			// Chat-completions carries tool results as standalone tool-role
			// turns, not inside the user message.
			for _, tr := range m.ToolResults {
				out = append(out, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					ToolCallID: tr.ToolCallID,
					Name:       tr.Name,
					Content:    tr.Content,
				})
			}
			if m.Content != "" {
				out = append(out, openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleUser,
					Content: m.Content,
				})
			}
		}
	}
	return out
}

func toOpenAITools(defs []tools.Definition) []openai.Tool {
	if len(defs) == 0 {
		return nil
	}
	out := make([]openai.Tool, 0, len(defs))
	for _, def := range defs {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  json.RawMessage(def.ParametersSchema),
			},
		})
	}
	return out
}

func fromOpenAIChoice(choice openai.ChatCompletionChoice, usage openai.Usage) *Response {
	resp := &Response{
		Text:       choice.Message.Content,
		StopReason: string(choice.FinishReason),
		Usage: TokenUsage{
			InputTokens:  usage.PromptTokens,
			OutputTokens: usage.CompletionTokens,
		},
	}
	if choice.FinishReason == openai.FinishReasonToolCalls {
		resp.StopReason = StopReasonToolUse
	}
	for _, tc := range choice.Message.ToolCalls {
		var input map[string]any
		if tc.Function.Arguments != "" {
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &input)
		}
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: input,
		})
	}
	return resp
}
