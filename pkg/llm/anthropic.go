package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/consilium-ai/consilium/pkg/tools"
)

// AnthropicProvider is the primary provider: the Anthropic Messages API via
// the official SDK. It carries native tool use and extended reasoning.
type AnthropicProvider struct {
	client anthropic.Client
}

// NewAnthropicProvider builds a provider. baseURL is optional and exists for
// proxies and test servers.
func NewAnthropicProvider(apiKey, baseURL string) *AnthropicProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicProvider{client: anthropic.NewClient(opts...)}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

// Complete executes one Messages API round trip.
func (p *AnthropicProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  toAnthropicMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.ReasoningBudget > 0 {
		// Extended thinking requires default sampling; temperature stays unset.
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(int64(req.ReasoningBudget))
	} else if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	toolParams, err := toAnthropicTools(req.Tools)
	if err != nil {
		return nil, err
	}
	params.Tools = toolParams

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic completion failed: %w", err)
	}
	return fromAnthropicMessage(message), nil
}

func toAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleAssistant:
			var blocks []anthropic.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, tc.Input, tc.Name))
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		default:
			// Tool results lead the user turn, per the Messages API contract.
			var blocks []anthropic.ContentBlockParamUnion
			for _, tr := range m.ToolResults {
				blocks = append(blocks, anthropic.NewToolResultBlock(tr.ToolCallID, tr.Content, tr.IsError))
			}
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			out = append(out, anthropic.NewUserMessage(blocks...))
		}
	}
	return out
}

func toAnthropicTools(defs []tools.Definition) ([]anthropic.ToolUnionParam, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		var schema anthropic.ToolInputSchemaParam
		if err := json.Unmarshal([]byte(def.ParametersSchema), &schema); err != nil {
			return nil, fmt.Errorf("invalid schema for tool %s: %w", def.Name, err)
		}
		tool := anthropic.ToolUnionParamOfTool(schema, def.Name)
		if def.Description != "" {
			tool.OfTool.Description = anthropic.String(def.Description)
		}
		out = append(out, tool)
	}
	return out, nil
}

func fromAnthropicMessage(message *anthropic.Message) *Response {
	resp := &Response{
		StopReason: string(message.StopReason),
		Usage: TokenUsage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}

	var text strings.Builder
	for _, block := range message.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			var input map[string]any
			if len(block.Input) > 0 {
				_ = json.Unmarshal(block.Input, &input)
			}
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{
				ID:    block.ID,
				Name:  block.Name,
				Input: input,
			})
		}
	}
	resp.Text = text.String()
	return resp
}
