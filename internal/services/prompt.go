package services

import (
	"strings"

	"github.com/formulamga/mga-backend/internal/types"
)

const (
	// MaxHistoryTurns bounds how many prior turns feed the prompt.
	MaxHistoryTurns = 10
	// maxTurnRunes bounds one rendered message inside the history block.
	maxTurnRunes = 500

	questionMarker = "{question}"
)

const defaultPromptTemplate = `Eres un asistente experto en formulación de proyectos de inversión pública usando la Metodología General Ajustada (MGA) de Colombia. Responde de forma clara y concisa, sin salirte del contexto MGA.

{question}`

// promptTemplates holds the per-tab instruction templates. A tab without an
// entry falls back to the generic template.
var promptTemplates = map[string]string{
	"problems": `Eres un experto en formulación de proyectos usando la Metodología General Ajustada (MGA) de Colombia, especializado en el Árbol de Problemas: problema central, causas directas e indirectas, efectos directos e indirectos.

Basándote en la información registrada del proyecto, céntrate en responder la siguiente pregunta sin salirte del contexto MGA:

{question}`,
	"participants_general": `Eres un experto en formulación de proyectos MGA, especializado en la identificación y análisis de actores: entidades, intereses, roles y posibles conflictos.

Basándote en la información registrada del proyecto, céntrate en responder la siguiente pregunta sin salirte del contexto MGA:

{question}`,
	"population": `Eres un experto en formulación de proyectos MGA, especializado en la caracterización de población afectada, objetivo y de intervención.

Basándote en la información registrada del proyecto, céntrate en responder la siguiente pregunta sin salirte del contexto MGA:

{question}`,
	"objectives": `Eres un experto en formulación de proyectos MGA, especializado en la formulación de objetivos y sus indicadores.

Basándote en la información registrada del proyecto, céntrate en responder la siguiente pregunta sin salirte del contexto MGA:

{question}`,
	"alternatives_general": `Eres un experto en formulación de proyectos MGA, especializado en el análisis de alternativas de solución.

Basándote en la información registrada del proyecto, céntrate en responder la siguiente pregunta sin salirte del contexto MGA:

{question}`,
}

// BuildChatContext renders the chronological tail of the conversation as a
// delimited block. An empty history contributes nothing to the prompt, unlike
// an empty dataset, which the module formatter states explicitly.
func BuildChatContext(turns []*types.ChatMessage, maxTurns int) string {
	if len(turns) == 0 {
		return ""
	}
	if maxTurns <= 0 {
		maxTurns = MaxHistoryTurns
	}
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	divider := strings.Repeat("=", 60)
	lines := []string{divider, "HISTORIAL DE CONVERSACIÓN ANTERIOR:", divider}
	for _, turn := range turns {
		speaker := "Asistente"
		if turn.Sender == types.SenderUser {
			speaker = "Tú"
		}
		message := turn.Message
		if runes := []rune(message); len(runes) > maxTurnRunes {
			message = string(runes[:maxTurnRunes])
		}
		lines = append(lines, "\n"+speaker+": "+message)
	}
	lines = append(lines, "\n"+divider, "NUEVA PREGUNTA:", divider)
	return strings.Join(lines, "\n")
}

// ComposePrompt assembles the final generation input: the tab's instruction
// template wrapping [conversation context] + [module context] + [question].
func ComposePrompt(tab, chatContext, moduleContext, question string) string {
	full := question
	if moduleContext != "" {
		full = moduleContext + "\n\n" + full
	}
	if chatContext != "" {
		full = chatContext + "\n\n" + full
	}

	template, ok := promptTemplates[strings.ToLower(tab)]
	if !ok {
		template = defaultPromptTemplate
	}
	return strings.ReplaceAll(template, questionMarker, full)
}
