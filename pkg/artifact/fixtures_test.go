package artifact

import "strings"

const (
	productivitySentence = "A produtividade depende de hábitos consistentes, pausas planejadas e clareza sobre as prioridades de cada semana. "
	productivityBullets  = "- Planeje o dia na noite anterior\n- Agrupe tarefas parecidas\n- Proteja blocos de foco"
	productivityPreamble = "Claro! Preparei um documento completo sobre produtividade para você consultar e editar à vontade."
	productivityHeader   = "## Produtividade no dia a dia"
)

func productivityParagraph() string {
	return strings.TrimSpace(strings.Repeat(productivitySentence, 3))
}

func paragraphs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = productivityParagraph()
	}
	return out
}

// productivityDocument is a header, four paragraphs and a three item list.
func productivityDocument() string {
	p := paragraphs(4)
	return productivityHeader + "\n\n" +
		strings.Join(p[:2], "\n\n") + "\n\n" +
		productivityBullets + "\n\n" +
		strings.Join(p[2:], "\n\n")
}

// productivityReply is a conversational preamble followed by the document.
func productivityReply() string {
	return productivityPreamble + "\n\n" + productivityDocument()
}

// unmarkedReply is structured but has no split marker and stays under the
// whole-document threshold.
func unmarkedReply() string {
	p := paragraphs(4)
	return strings.Join(p[:2], "\n\n") + "\n\n" +
		productivityBullets + "\n\n" +
		strings.Join(p[2:], "\n\n")
}

// headerFirstReply opens directly with the document header.
func headerFirstReply() string {
	return "# Guia de produtividade\n\n" + strings.Join(paragraphs(5), "\n\n") + "\n\n" + productivityBullets
}

func plainProse(length int) string {
	var b strings.Builder
	for runeLen(b.String()) < length {
		b.WriteString("Marketing digital é o conjunto de ações feitas na internet. ")
	}
	return strings.TrimSpace(string([]rune(b.String())[:length]))
}
