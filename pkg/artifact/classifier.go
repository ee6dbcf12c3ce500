package artifact

// Classifier is the replaceable decision core. The heuristic implementation is
// regex based; a model-backed one can be dropped in behind the same methods.
type Classifier interface {
	ClassifyIntent(userMessage string) bool
	ScoreStructure(content string) bool
	Split(content string) SplitResult
}

// Heuristic is the keyword and markdown-structure classifier.
type Heuristic struct{}

var _ Classifier = Heuristic{}

func (Heuristic) ClassifyIntent(userMessage string) bool {
	return UserRequestsArtifact(userMessage)
}

func (Heuristic) ScoreStructure(content string) bool {
	return IsStructuredContent(content)
}

func (Heuristic) Split(content string) SplitResult {
	return SplitStructured(content)
}
