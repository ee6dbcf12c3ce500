// Package artifact decides whether an assistant reply should be split into a
// short chat message plus a separately editable document.
//
// The pipeline runs in a fixed order: intent (did the user ask for a document?),
// structure (is the reply substantial enough?) and split (where does the
// preamble end?). Every function in this package is pure and total.
package artifact

import (
	"regexp"
	"strings"
)

// MinIntentMessageLength is the message length a request must exceed to count.
const MinIntentMessageLength = 20

const (
	actionVerbs  = `(?:escreva|escrever|escrevam|crie|criar|elabore|elaborar|redija|redigir|desenvolva|desenvolver|produza|produzir|prepare|preparar|monte|montar|fa[çc]a|fazer)`
	documentNoun = `(?:artigo|documento|texto|roteiro|conte[uú]do)`
	englishVerbs = `(?:write|create|draft|prepare|compose|produce)`
	englishNoun  = `(?:article|document|text|essay|script|report)`
	// up to three filler words ("um", "novo", "pequeno") between verb and noun
	filler = `(?:\s+\S+){0,3}?\s+`
)

// Every pattern requires an action (or an explicit need) together with a
// document noun. A bare noun such as "texto" never matches on its own.
var explicitRequestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b` + actionVerbs + filler + documentNoun),
	regexp.MustCompile(`\b(?:preciso|quero|gostaria)\s+(?:de\s+)?(?:um|uma)\s+(?:\S+\s+)?` + documentNoun),
	regexp.MustCompile(`\bme\s+ajude\s+a\s+(?:escrever|criar|elaborar|redigir)` + filler + documentNoun),
	regexp.MustCompile(`\bvoc[eê]\s+(?:pode|poderia)\s+(?:escrever|criar|elaborar|redigir|fazer)` + filler + documentNoun),
	regexp.MustCompile(`\b` + englishVerbs + filler + englishNoun),
	regexp.MustCompile(`\bi\s+need\s+(?:an?|the)\s+(?:\S+\s+)?` + englishNoun),
	regexp.MustCompile(`\b(?:could|can|would)\s+you\s+(?:write|create|draft)` + filler + englishNoun),
}

// UserRequestsArtifact reports whether the user explicitly asked for a
// standalone document rather than a conversational answer.
func UserRequestsArtifact(userMessage string) bool {
	if runeLen(userMessage) <= MinIntentMessageLength {
		return false
	}

	lower := strings.ToLower(userMessage)
	for _, pattern := range explicitRequestPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
