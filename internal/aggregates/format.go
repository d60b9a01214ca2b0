package aggregates

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxItems caps how many root records the prompt context renders.
	DefaultMaxItems = 50
	// maxValueRunes caps a single scalar value inside the prompt context.
	maxValueRunes = 200
)

// FormatForPrompt renders a collection result as natural Spanish text for the
// assistant prompt. Child collections are summarized by count instead of
// dumped: breadth goes into the context, depth is left to follow-up
// questions, which keeps the prompt bounded.
func FormatForPrompt(res *Result, maxItems int, moduleDisplay string) string {
	if res == nil {
		return "(No hay datos disponibles: Error desconocido)"
	}
	if res.Status != StatusOK {
		message := res.Message
		if message == "" {
			message = "Error desconocido"
		}
		return fmt.Sprintf("(No hay datos disponibles: %s)", message)
	}
	if moduleDisplay == "" {
		moduleDisplay = res.Module
	}
	if res.TotalRecords == 0 {
		return fmt.Sprintf("(No hay información registrada en %s)", moduleDisplay)
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	records := res.Records
	if len(records) > maxItems {
		records = records[:maxItems]
	}

	divider := strings.Repeat("-", 60)
	lines := []string{
		fmt.Sprintf("INFORMACIÓN REGISTRADA EN %s:", strings.ToUpper(moduleDisplay)),
		divider,
	}

	for idx, record := range records {
		if len(records) > 1 {
			lines = append(lines, fmt.Sprintf("\nRegistro %d:", idx+1))
		}
		lines = append(lines, formatRecord(record, 0))
	}

	lines = append(lines, divider)
	if res.TotalRecords > maxItems {
		lines = append(lines, fmt.Sprintf("(Mostrando %d de %d %s)", len(records), res.TotalRecords, pluralRegistro(res.TotalRecords)))
	}
	return strings.Join(lines, "\n")
}

func formatRecord(doc *Document, indent int) string {
	prefix := strings.Repeat("  ", indent)
	var parts []string

	for _, f := range doc.Fields {
		value := formatValue(f.Value)
		if value == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s• %s: %s", prefix, humanizeLabel(f.Name), value))
	}
	for _, child := range doc.Children {
		count := len(child.Records)
		if count == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s• %s: %d %s", prefix, humanizeLabel(child.Name), count, pluralRegistro(count)))
	}

	if len(parts) == 0 {
		return prefix + "(sin información completa)"
	}
	return strings.Join(parts, "\n")
}

// formatValue renders one scalar; empty string means "suppress this line".
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "Sí"
		}
		return "No"
	case string:
		if v == "" {
			return ""
		}
		return truncateRunes(v, maxValueRunes)
	default:
		return truncateRunes(fmt.Sprint(v), maxValueRunes)
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func humanizeLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

func pluralRegistro(n int) string {
	if n == 1 {
		return "registro"
	}
	return "registros"
}
