package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/formulamga/mga-backend/internal/types"
)

func turn(sender, message string) *types.ChatMessage {
	return &types.ChatMessage{Sender: sender, Message: message}
}

func TestBuildChatContextEmptyHistory(t *testing.T) {
	if got := BuildChatContext(nil, MaxHistoryTurns); got != "" {
		t.Fatalf("empty history should contribute nothing, got %q", got)
	}
}

func TestBuildChatContextSpeakersAndDelimiters(t *testing.T) {
	turns := []*types.ChatMessage{
		turn(types.SenderUser, "¿Cuál es el problema central?"),
		turn(types.SenderBot, "El problema central registrado es la baja cobertura."),
	}
	got := BuildChatContext(turns, MaxHistoryTurns)

	if !strings.Contains(got, "HISTORIAL DE CONVERSACIÓN ANTERIOR:") {
		t.Fatalf("missing history header:\n%s", got)
	}
	if !strings.Contains(got, "Tú: ¿Cuál es el problema central?") {
		t.Fatalf("user turn mislabeled:\n%s", got)
	}
	if !strings.Contains(got, "Asistente: El problema central registrado es la baja cobertura.") {
		t.Fatalf("bot turn mislabeled:\n%s", got)
	}
	if !strings.Contains(got, "NUEVA PREGUNTA:") {
		t.Fatalf("missing closing marker:\n%s", got)
	}
}

func TestBuildChatContextKeepsOnlyMostRecentTurns(t *testing.T) {
	var turns []*types.ChatMessage
	for i := 0; i < 15; i++ {
		turns = append(turns, turn(types.SenderUser, fmt.Sprintf("pregunta %d", i)))
	}
	got := BuildChatContext(turns, MaxHistoryTurns)

	if strings.Contains(got, "pregunta 4") {
		t.Fatalf("turn 4 should fall outside the window:\n%s", got)
	}
	for i := 5; i < 15; i++ {
		if !strings.Contains(got, fmt.Sprintf("pregunta %d", i)) {
			t.Fatalf("turn %d missing from window:\n%s", i, got)
		}
	}
}

func TestBuildChatContextTruncatesLongTurns(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := BuildChatContext([]*types.ChatMessage{turn(types.SenderUser, long)}, MaxHistoryTurns)

	if strings.Contains(got, strings.Repeat("x", 501)) {
		t.Fatalf("turn should be cut at 500 runes:\n%d chars", len(got))
	}
	if !strings.Contains(got, strings.Repeat("x", 500)) {
		t.Fatal("truncated turn should keep its first 500 runes")
	}
}

func TestComposePromptSelectsTabTemplate(t *testing.T) {
	got := ComposePrompt("problems", "", "", "¿Qué causas faltan?")
	if !strings.Contains(got, "Árbol de Problemas") {
		t.Fatalf("problems template not applied:\n%s", got)
	}
	if !strings.Contains(got, "¿Qué causas faltan?") {
		t.Fatalf("question missing:\n%s", got)
	}
}

func TestComposePromptFallsBackToDefaultTemplate(t *testing.T) {
	got := ComposePrompt("direct_effects", "", "", "¿Qué efectos hay?")
	if !strings.Contains(got, "Metodología General Ajustada (MGA)") {
		t.Fatalf("default template not applied:\n%s", got)
	}
	if strings.Contains(got, questionMarker) {
		t.Fatalf("marker left unsubstituted:\n%s", got)
	}
}

func TestComposePromptOrdering(t *testing.T) {
	chatContext := "HISTORIAL-BLOQUE"
	moduleContext := "DATOS-BLOQUE"
	question := "PREGUNTA-FINAL"

	got := ComposePrompt("problems", chatContext, moduleContext, question)

	chatIdx := strings.Index(got, chatContext)
	moduleIdx := strings.Index(got, moduleContext)
	questionIdx := strings.Index(got, question)
	if chatIdx < 0 || moduleIdx < 0 || questionIdx < 0 {
		t.Fatalf("missing sections: %d %d %d\n%s", chatIdx, moduleIdx, questionIdx, got)
	}
	if !(chatIdx < moduleIdx && moduleIdx < questionIdx) {
		t.Fatalf("sections out of order: chat=%d module=%d question=%d", chatIdx, moduleIdx, questionIdx)
	}
}
