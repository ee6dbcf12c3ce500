package constant

import "fmt"

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	// Chat titles are cut to this many runes from the first user message.
	ChatTitleMaxRunes = 50
	ChatTitleEllipsis = "..."

	FallbackReply = "Sorry, I couldn't process your message right now. Please try again in a moment."

	// ToolResultCreated is sent back to the model after createDocument so it
	// writes the body next.
	ToolResultCreated = "Document %q created. Now write the complete document content in Markdown. Reply with the document only."
)

// ToolsSystemPrompt is appended to the agent prompt when the createDocument
// tool is offered.
const ToolsSystemPrompt = `YOU HAVE ACCESS TO A TOOL THAT CREATES STRUCTURED DOCUMENTS.

## Always call createDocument when:
- The user asks for articles, posts, texts, documents or content
- Any request for structured writing
- You need to create something the user will edit or save
- The content is long and well formatted

## Examples:
- "Write an article about..."
- "Create a blog post..."
- "Put together a guide on..."
- "Draft a document..."

## Do NOT use it for:
- Simple conversational replies
- Quick explanations
- Direct questions and answers

## How to use it:
1. Call createDocument first with a descriptive title
2. After the tool returns, write the complete content
3. Use rich Markdown: headers, lists
4. Be detailed and structured
5. At least 800 words for articles

REMEMBER: the goal is editable, valuable content the user can keep working on.`

// DocumentGuidancePrompt is appended when the user explicitly asks for a document.
const DocumentGuidancePrompt = `IMPORTANT: create structured documents ONLY when the user explicitly asks for:
- Articles, texts, documents, scripts
- Content they will edit or save
- Material with a clear structure (sections, lists)

Do NOT create documents for:
- Simple explanations or answers
- Short lists or quick tips
- Casual conversation or direct questions

When you create a document make sure that it:
1. Has at least 800 characters (150+ words)
2. Is well structured with clear sections
3. Uses Markdown where appropriate
4. Starts with a clear title

If you are not sure, ask the user whether they want the answer as an editable document.`

func DefaultAgentPrompt(name, speciality string) string {
	return fmt.Sprintf("You are %s, a specialist in %s.", name, speciality)
}

func DefaultChatTitle(agentName string) string {
	return fmt.Sprintf("Chat with %s", agentName)
}
