package artifact

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinDocumentBody is how much text must follow a split marker.
	MinDocumentBody = 1000
	// MinPreambleOffset is how far into the reply a marker must sit to count
	// as the end of a real preamble.
	MinPreambleOffset = 50
	// MinWholeDocumentLength applies when no marker is usable and the whole
	// reply becomes the document.
	MinWholeDocumentLength = 1500

	MaxTitleLength  = 100
	MinTitleLength  = 10
	FallbackTitle   = "Documento"
	GenericPreamble = "Prepared the requested document. Open it below to view, edit and download the full content."
)

// Agents whose replies are conversational or code-oriented by nature.
var splitDenylist = map[string]struct{}{
	"assistant":        {},
	"dev-assistant":    {},
	"business-analyst": {},
}

var (
	titleHeader = regexp.MustCompile(`(?m)^#{1,3}[ \t]+(.+)$`)
	titleLabel  = regexp.MustCompile(`(?mi)^(?:Título|Titulo|Title|Artigo|Documento):[ \t]*(.+)$`)
)

// Split markers are tried in order; the first position leaving a substantial
// document body behind wins.
var splitMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,3}[ \t]+\S`),
	regexp.MustCompile(`(?mi)^(?:Artigo|Texto|Documento|Conteúdo|Conteudo|Roteiro):`),
	regexp.MustCompile(`(?mi)^(?:Aqui está|Aqui esta|Segue|Conforme solicitado)`),
}

// SplitPath records which rule produced a split decision.
type SplitPath string

const (
	PathNone   SplitPath = "none"
	PathMarker SplitPath = "split"
	PathWhole  SplitPath = "whole"
	PathTool   SplitPath = "tool"
)

// SplitResult is the outcome of AnalyzeResponse. ArtifactContent is nil when
// the reply stays inline.
type SplitResult struct {
	MessageContent  string
	ArtifactContent *string
	Path            SplitPath
}

// HasArtifact reports whether a non-empty document was detached.
func (r SplitResult) HasArtifact() bool {
	return r.ArtifactContent != nil && strings.TrimSpace(*r.ArtifactContent) != ""
}

func inline(content string) SplitResult {
	return SplitResult{MessageContent: content, Path: PathNone}
}

// IsDenylisted reports whether an agent never produces split documents.
func IsDenylisted(agent *AgentProfile) bool {
	if agent == nil {
		return false
	}
	_, ok := splitDenylist[agent.ID]
	return ok
}

// ExtractTitleFromContent derives a document title: a markdown header first,
// then a "Título:" style label, then a reasonably sized first line.
func ExtractTitleFromContent(content string) string {
	if m := titleHeader.FindStringSubmatch(content); m != nil {
		if title := stripEmphasis(m[1]); title != "" {
			return truncateRunes(title, MaxTitleLength)
		}
	}

	if m := titleLabel.FindStringSubmatch(content); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return truncateRunes(title, MaxTitleLength)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if n := runeLen(line); n > MinTitleLength && n < MaxTitleLength {
			return stripEmphasis(line)
		}
		break
	}

	return FallbackTitle
}

// CannedPreamble is the chat message shown when a document has no usable
// introduction of its own.
func CannedPreamble(title string) string {
	return fmt.Sprintf("Prepared the %s you requested. You can view, edit and download it from the document panel.", strings.ToLower(title))
}

// AnalyzeResponse splits a reply into a chat message and a document body.
// The full gate (agent, intent, structure) is re-checked here so the function
// is safe to call on any reply.
func AnalyzeResponse(fullContent, userMessage string, agent *AgentProfile) SplitResult {
	if agent == nil || IsDenylisted(agent) {
		return inline(fullContent)
	}
	if !UserRequestsArtifact(userMessage) || !IsStructuredContent(fullContent) {
		return inline(fullContent)
	}
	return SplitStructured(fullContent)
}

// SplitStructured locates the preamble/document boundary of a reply that has
// already passed the intent and structure gates.
func SplitStructured(fullContent string) SplitResult {
	if runeLen(fullContent) < MinStructuredLength {
		return inline(fullContent)
	}

	if splitIndex, ok := findSplitIndex(fullContent); ok && byteToRuneOffset(fullContent, splitIndex) > MinPreambleOffset {
		document := strings.TrimSpace(fullContent[splitIndex:])
		if document == "" {
			return inline(fullContent)
		}

		message := strings.TrimSpace(fullContent[:splitIndex])
		if message == "" {
			message = CannedPreamble(ExtractTitleFromContent(document))
		}
		return SplitResult{MessageContent: message, ArtifactContent: &document, Path: PathMarker}
	}

	if runeLen(fullContent) > MinWholeDocumentLength && IsStructuredContent(fullContent) {
		document := strings.TrimSpace(fullContent)
		return SplitResult{MessageContent: GenericPreamble, ArtifactContent: &document, Path: PathWhole}
	}

	return inline(fullContent)
}

// findSplitIndex returns the byte offset of the first acceptable marker.
func findSplitIndex(content string) (int, bool) {
	for _, marker := range splitMarkers {
		for _, loc := range marker.FindAllStringIndex(content, -1) {
			if runeLen(content[loc[0]:]) > MinDocumentBody {
				return loc[0], true
			}
		}
	}
	return 0, false
}
