package registry

import "testing"

func relationReturning(name string) RelationFunc {
	return func(rec any) ([]any, error) {
		return []any{name}, nil
	}
}

func TestResolveRelation(t *testing.T) {
	mod := &Module{
		Name: "parent",
		Relations: map[string]RelationFunc{
			"participants":    relationReturning("participants"),
			"indirect_effect": relationReturning("indirect_effect"),
			"alternatives":    relationReturning("alternatives"),
		},
	}

	cases := []struct {
		name      string
		child     string
		wantMatch string
		wantFound bool
	}{
		{
			name:      "exact_match",
			child:     "participants",
			wantMatch: "participants",
			wantFound: true,
		},
		{
			name:      "singular_resolved_via_plural",
			child:     "alternative",
			wantMatch: "alternatives",
			wantFound: true,
		},
		{
			name:      "plural_resolved_via_singular",
			child:     "indirect_effects",
			wantMatch: "indirect_effect",
			wantFound: true,
		},
		{
			name:      "no_match",
			child:     "budgets",
			wantFound: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match, fn, found := mod.ResolveRelation(tc.child)
			if found != tc.wantFound {
				t.Fatalf("ResolveRelation(%q) found=%v, want %v", tc.child, found, tc.wantFound)
			}
			if !found {
				return
			}
			if match != tc.wantMatch {
				t.Fatalf("ResolveRelation(%q)=%q, want %q", tc.child, match, tc.wantMatch)
			}
			if fn == nil {
				t.Fatalf("ResolveRelation(%q) returned nil relation", tc.child)
			}
		})
	}
}

func TestResolveRelationExactWinsOverHeuristics(t *testing.T) {
	// Both the exact name and its plural exist; the exact entry must win.
	mod := &Module{
		Name: "parent",
		Relations: map[string]RelationFunc{
			"effect":  relationReturning("effect"),
			"effects": relationReturning("effects"),
		},
	}
	match, _, found := mod.ResolveRelation("effect")
	if !found || match != "effect" {
		t.Fatalf("ResolveRelation(\"effect\")=%q found=%v, want exact match \"effect\"", match, found)
	}
}

func TestResolveRelationEmptyModule(t *testing.T) {
	mod := &Module{Name: "leaf"}
	if _, _, found := mod.ResolveRelation("anything"); found {
		t.Fatal("ResolveRelation on module without relations should not find anything")
	}
}
