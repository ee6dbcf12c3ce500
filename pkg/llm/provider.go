package llm

import (
	"context"
	"errors"
)

// Role is the author of a message in a provider-agnostic format.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a function invocation requested by the model. Arguments is the
// raw JSON object the model produced.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Message represents a chat message in a provider-agnostic format.
// ToolCalls is set on assistant messages that invoked tools; ToolCallID and
// Name are set on tool result messages.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// Tool describes a function the model may call. Parameters is a JSON schema.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	Tools       []Tool
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTools offers the given tools to the model for this call only.
func WithTools(tools ...Tool) Option {
	return func(o *Options) {
		o.Tools = append(o.Tools, tools...)
	}
}

// ApplyOptions folds opts over the given defaults.
func ApplyOptions(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// CompletionResult is either a TextResponse or a ToolCallResponse.
type CompletionResult interface {
	completion()
}

// TextResponse is a plain assistant reply.
type TextResponse struct {
	Content string
}

// ToolCallResponse is returned when the model chose to call a tool instead of
// (or before) answering. Content holds any text the model emitted alongside.
type ToolCallResponse struct {
	Call    ToolCall
	Content string
}

func (TextResponse) completion()     {}
func (ToolCallResponse) completion() {}

var ErrEmptyCompletion = errors.New("llm returned no choices")

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response text
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Complete is Chat with tool support; the result says which branch the model took
	Complete(ctx context.Context, history []Message, options ...Option) (CompletionResult, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// TextOf flattens a completion to its text.
func TextOf(result CompletionResult) string {
	switch r := result.(type) {
	case TextResponse:
		return r.Content
	case ToolCallResponse:
		return r.Content
	default:
		return ""
	}
}
