package openrouter

import (
	"agent-chat-be/pkg/llm"
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"
)

// OpenRouterProvider talks to the OpenRouter gateway through its
// OpenAI-compatible chat completions API.
type OpenRouterProvider struct {
	client   llms.Model
	model    string
	defaults llm.Options
}

var _ llm.LLMProvider = &OpenRouterProvider{}

func NewOpenRouterProvider(apiKey, baseURL, model string, defaults llm.Options) (*OpenRouterProvider, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create openrouter client: %w", err)
	}

	return &OpenRouterProvider{client: client, model: model, defaults: defaults}, nil
}

func (p *OpenRouterProvider) Complete(ctx context.Context, history []llm.Message, opts ...llm.Option) (llm.CompletionResult, error) {
	options := llm.ApplyOptions(p.defaults, opts...)

	callOpts := []llms.CallOption{
		llms.WithTemperature(options.Temperature),
	}
	if options.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(options.MaxTokens))
	}
	if options.Model != "" {
		callOpts = append(callOpts, llms.WithModel(options.Model))
	}
	if len(options.Tools) > 0 {
		callOpts = append(callOpts, llms.WithTools(toTools(options.Tools)))
	}

	resp, err := p.client.GenerateContent(ctx, toMessageContent(history), callOpts...)
	if err != nil {
		return nil, fmt.Errorf("openrouter request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, llm.ErrEmptyCompletion
	}

	choice := resp.Choices[0]
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		return llm.ToolCallResponse{
			Call: llm.ToolCall{
				ID:        tc.ID,
				Name:      tc.FunctionCall.Name,
				Arguments: tc.FunctionCall.Arguments,
			},
			Content: choice.Content,
		}, nil
	}

	return llm.TextResponse{Content: choice.Content}, nil
}

func (p *OpenRouterProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	result, err := p.Complete(ctx, history, opts...)
	if err != nil {
		return "", err
	}
	return llm.TextOf(result), nil
}

func (p *OpenRouterProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func toMessageContent(history []llm.Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case llm.RoleSystem:
			out = append(out, llms.TextParts(llms.ChatMessageTypeSystem, msg.Content))
		case llm.RoleAssistant:
			if len(msg.ToolCalls) == 0 {
				out = append(out, llms.TextParts(llms.ChatMessageTypeAI, msg.Content))
				continue
			}
			mc := llms.MessageContent{Role: llms.ChatMessageTypeAI}
			for _, tc := range msg.ToolCalls {
				mc.Parts = append(mc.Parts, llms.ToolCall{
					ID:   tc.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
			out = append(out, mc)
		case llm.RoleTool:
			out = append(out, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: msg.ToolCallID,
					Name:       msg.Name,
					Content:    msg.Content,
				}},
			})
		default:
			out = append(out, llms.TextParts(llms.ChatMessageTypeHuman, msg.Content))
		}
	}
	return out
}

func toTools(tools []llm.Tool) []llms.Tool {
	out := make([]llms.Tool, len(tools))
	for i, t := range tools {
		out[i] = llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}
