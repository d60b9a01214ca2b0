package aggregates

import (
	"fmt"
	"strings"
	"testing"

	"github.com/formulamga/mga-backend/internal/registry"
)

func docWithFields(fields ...registry.Field) *Document {
	return &Document{Fields: fields}
}

func TestFormatForPromptEmptyData(t *testing.T) {
	res := &Result{Module: "population", Table: "population", Status: StatusOK, TotalRecords: 0, Records: []*Document{}}
	got := FormatForPrompt(res, DefaultMaxItems, "Población")
	want := "(No hay información registrada en Población)"
	if got != want {
		t.Fatalf("FormatForPrompt=%q, want %q", got, want)
	}
}

func TestFormatForPromptNonOKStatus(t *testing.T) {
	cases := []struct {
		name string
		res  *Result
		want string
	}{
		{
			name: "nil_result",
			res:  nil,
			want: "(No hay datos disponibles: Error desconocido)",
		},
		{
			name: "error_with_message",
			res:  &Result{Status: StatusError, Message: "schema reflection failed"},
			want: "(No hay datos disponibles: schema reflection failed)",
		},
		{
			name: "unsupported",
			res:  &Result{Status: StatusUnsupported, Message: "módulo 'users' no soportado"},
			want: "(No hay datos disponibles: módulo 'users' no soportado)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatForPrompt(tc.res, DefaultMaxItems, "X"); got != tc.want {
				t.Fatalf("FormatForPrompt=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatForPromptRendersFieldsAndChildren(t *testing.T) {
	doc := &Document{
		Fields: []registry.Field{
			{Name: "central_problem", Value: "Alta deserción escolar"},
			{Name: "current_description", Value: ""},
			{Name: "solution_alternatives", Value: true},
			{Name: "cost", Value: false},
		},
		Children: []ChildAttachment{
			{Name: "direct_effects", Records: []*Document{docWithFields(), docWithFields()}},
			{Name: "direct_causes", Records: []*Document{}},
		},
	}
	res := &Result{Module: "problems", Status: StatusOK, TotalRecords: 1, Records: []*Document{doc}}

	got := FormatForPrompt(res, DefaultMaxItems, "Árbol de Problemas")

	if !strings.Contains(got, "INFORMACIÓN REGISTRADA EN ÁRBOL DE PROBLEMAS:") {
		t.Fatalf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "• Central Problem: Alta deserción escolar") {
		t.Fatalf("missing field line:\n%s", got)
	}
	if strings.Contains(got, "Current Description") {
		t.Fatalf("empty value should be suppressed:\n%s", got)
	}
	if !strings.Contains(got, "• Solution Alternatives: Sí") || !strings.Contains(got, "• Cost: No") {
		t.Fatalf("booleans should render as Sí/No:\n%s", got)
	}
	if !strings.Contains(got, "• Direct Effects: 2 registros") {
		t.Fatalf("child collection should be summarized by count:\n%s", got)
	}
	if strings.Contains(got, "Direct Causes") {
		t.Fatalf("empty child collection should not render:\n%s", got)
	}
	if strings.Contains(got, "Registro 1:") {
		t.Fatalf("single record should not be numbered:\n%s", got)
	}
}

func TestFormatForPromptCapsRecords(t *testing.T) {
	records := make([]*Document, 0, 120)
	for i := 0; i < 120; i++ {
		records = append(records, docWithFields(registry.Field{Name: "description", Value: fmt.Sprintf("registro %d", i)}))
	}
	res := &Result{Module: "participants", Status: StatusOK, TotalRecords: 120, Records: records}

	got := FormatForPrompt(res, DefaultMaxItems, "Participantes")

	if !strings.Contains(got, "(Mostrando 50 de 120 registros)") {
		t.Fatalf("missing cap note:\n%s", got)
	}
	if !strings.Contains(got, "Registro 50:") {
		t.Fatalf("record 50 should render:\n%s", got)
	}
	if strings.Contains(got, "Registro 51:") {
		t.Fatalf("record 51 should be cut:\n%s", got)
	}
}

func TestFormatForPromptTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("á", 250)
	res := &Result{
		Module:       "problems",
		Status:       StatusOK,
		TotalRecords: 1,
		Records:      []*Document{docWithFields(registry.Field{Name: "description", Value: long})},
	}

	got := FormatForPrompt(res, DefaultMaxItems, "Problemas")

	want := strings.Repeat("á", 200) + "..."
	if !strings.Contains(got, want) {
		t.Fatalf("value should be truncated at 200 runes:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("á", 201)) {
		t.Fatalf("truncation left more than 200 runes:\n%s", got)
	}
}

func TestFormatForPromptRecordWithoutRenderableContent(t *testing.T) {
	res := &Result{
		Module:       "problems",
		Status:       StatusOK,
		TotalRecords: 1,
		Records:      []*Document{docWithFields(registry.Field{Name: "description", Value: ""})},
	}
	got := FormatForPrompt(res, DefaultMaxItems, "Problemas")
	if !strings.Contains(got, "(sin información completa)") {
		t.Fatalf("empty record should render placeholder:\n%s", got)
	}
}

func TestHumanizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "central_problem", want: "Central Problem"},
		{in: "rol", want: "Rol"},
		{in: "project_id", want: "Project Id"},
	}
	for _, tc := range cases {
		if got := humanizeLabel(tc.in); got != tc.want {
			t.Fatalf("humanizeLabel(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
