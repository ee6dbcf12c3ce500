package llm

import (
	"errors"
	"testing"
)

func TestParseCreateDocumentArgs(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantErr   bool
	}{
		{"valid", `{"title":"Plano de Marketing","kind":"text"}`, "Plano de Marketing", false},
		{"kind defaults to text", `{"title":"Roteiro"}`, "Roteiro", false},
		{"title trimmed", `{"title":"  Post  ","kind":"text"}`, "Post", false},
		{"missing title", `{"kind":"text"}`, "", true},
		{"unsupported kind", `{"title":"Planilha","kind":"sheet"}`, "", true},
		{"malformed json", `{"title":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCreateDocumentArgs(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidToolArguments) {
					t.Errorf("expected ErrInvalidToolArguments, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.wantTitle || got.Kind != DocumentKindText {
				t.Errorf("got %+v, want title %q kind text", got, tt.wantTitle)
			}
		})
	}
}

func TestDocumentToolSchema(t *testing.T) {
	tool := DocumentTool()
	if tool.Name != CreateDocumentTool {
		t.Errorf("tool name = %q", tool.Name)
	}
	required, ok := tool.Parameters["required"].([]string)
	if !ok || len(required) != 2 {
		t.Errorf("unexpected required list: %v", tool.Parameters["required"])
	}
}

func TestApplyOptions(t *testing.T) {
	opts := ApplyOptions(Options{Temperature: 0.7, MaxTokens: 4096},
		WithModel("openai/gpt-4o-mini"),
		WithTools(DocumentTool()),
		WithMaxTokens(100),
	)
	if opts.Model != "openai/gpt-4o-mini" || opts.MaxTokens != 100 || opts.Temperature != 0.7 {
		t.Errorf("unexpected options %+v", opts)
	}
	if len(opts.Tools) != 1 {
		t.Errorf("expected one tool, got %d", len(opts.Tools))
	}
}

func TestTextOf(t *testing.T) {
	if got := TextOf(TextResponse{Content: "oi"}); got != "oi" {
		t.Errorf("TextOf(TextResponse) = %q", got)
	}
	if got := TextOf(ToolCallResponse{Call: ToolCall{Name: CreateDocumentTool}}); got != "" {
		t.Errorf("TextOf(ToolCallResponse) = %q", got)
	}
}
