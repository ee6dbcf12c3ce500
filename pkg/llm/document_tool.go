package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	CreateDocumentTool = "createDocument"
	DocumentKindText   = "text"
)

var ErrInvalidToolArguments = errors.New("invalid tool arguments")

// CreateDocumentArgs are the arguments of the createDocument tool.
type CreateDocumentArgs struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

// DocumentTool lets the model announce that it is producing a standalone
// document. The body is requested in a follow-up completion.
func DocumentTool() Tool {
	return Tool{
		Name:        CreateDocumentTool,
		Description: "Create a document for writing or content creation activities. Use it for articles, scripts, posts, essays and other substantial texts the user asked for.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "The title of the document",
				},
				"kind": map[string]any{
					"type":        "string",
					"enum":        []string{DocumentKindText},
					"description": "The kind of document",
				},
			},
			"required": []string{"title", "kind"},
		},
	}
}

// ParseCreateDocumentArgs validates the raw JSON arguments of a createDocument
// call. A missing kind defaults to text.
func ParseCreateDocumentArgs(raw string) (CreateDocumentArgs, error) {
	var args CreateDocumentArgs
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return args, fmt.Errorf("%w: %v", ErrInvalidToolArguments, err)
	}

	args.Title = strings.TrimSpace(args.Title)
	if args.Title == "" {
		return args, fmt.Errorf("%w: title is required", ErrInvalidToolArguments)
	}
	if args.Kind == "" {
		args.Kind = DocumentKindText
	}
	if args.Kind != DocumentKindText {
		return args, fmt.Errorf("%w: unsupported kind %q", ErrInvalidToolArguments, args.Kind)
	}
	return args, nil
}
