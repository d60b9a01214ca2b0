package aggregates

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/registry"
	"github.com/formulamga/mga-backend/internal/schema"
	"github.com/formulamga/mga-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Project{},
		&types.Problem{},
		&types.DirectEffect{},
		&types.IndirectEffect{},
		&types.DirectCause{},
		&types.IndirectCause{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func findChild(t *testing.T, doc *Document, name string) ChildAttachment {
	t.Helper()
	for _, child := range doc.Children {
		if child.Name == name {
			return child
		}
	}
	t.Fatalf("attachment %q not found in %v", name, doc.Children)
	return ChildAttachment{}
}

func TestCollectProblemTreeHierarchy(t *testing.T) {
	db := testDB(t)
	log := testLogger()

	project := &types.Project{Name: "Acueducto vereda El Roble"}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	problem := &types.Problem{
		CentralProblem: "Baja cobertura de agua potable",
		ProjectID:      project.ID,
		DirectEffects: []*types.DirectEffect{
			{
				Description: "Aumento de enfermedades gastrointestinales",
				IndirectEffects: []*types.IndirectEffect{
					{Description: "Mayor gasto en salud"},
				},
			},
			{Description: "Pérdida de productividad"},
		},
	}
	if err := db.Create(problem).Error; err != nil {
		t.Fatalf("seed problem: %v", err)
	}

	collector := NewCollector(db, registry.DefaultMGA(), schema.NewCatalog(db, log), log)
	res := collector.Collect(context.Background(), "problems", project.ID)

	if res.Status != StatusOK {
		t.Fatalf("status=%q message=%q, want ok", res.Status, res.Message)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if res.TotalRecords != 1 || len(res.Records) != 1 {
		t.Fatalf("records=%d/%d, want 1", res.TotalRecords, len(res.Records))
	}

	root := res.Records[0]
	for _, f := range root.Fields {
		if f.Name == "id" || f.Name == "created_at" || f.Name == "problem_tree_json" {
			t.Fatalf("internal column %q leaked into document", f.Name)
		}
	}
	var sawCentral, sawProjectLink bool
	for _, f := range root.Fields {
		switch f.Name {
		case "central_problem":
			sawCentral = f.Value == "Baja cobertura de agua potable"
		case "project_id":
			sawProjectLink = true
		}
	}
	if !sawCentral || !sawProjectLink {
		t.Fatalf("expected central_problem and project_id in fields: %+v", root.Fields)
	}

	effects := findChild(t, root, "direct_effects")
	if len(effects.Records) != 2 {
		t.Fatalf("direct_effects=%d, want 2", len(effects.Records))
	}
	indirectTotal := 0
	for _, effect := range effects.Records {
		indirectTotal += len(findChild(t, effect, "indirect_effects").Records)
	}
	if indirectTotal != 1 {
		t.Fatalf("indirect_effects total=%d, want 1", indirectTotal)
	}

	// No causes were recorded: the attachment must still be present and
	// empty, never silently missing.
	causes := findChild(t, root, "direct_causes")
	if len(causes.Records) != 0 {
		t.Fatalf("direct_causes=%d, want 0", len(causes.Records))
	}
}

func TestCollectNoRecordsIsOK(t *testing.T) {
	db := testDB(t)
	log := testLogger()
	collector := NewCollector(db, registry.DefaultMGA(), schema.NewCatalog(db, log), log)

	res := collector.Collect(context.Background(), "problems", 999)
	if res.Status != StatusOK {
		t.Fatalf("status=%q, want ok", res.Status)
	}
	if res.TotalRecords != 0 || len(res.Records) != 0 {
		t.Fatalf("records=%d/%d, want 0", res.TotalRecords, len(res.Records))
	}
}

func TestCollectUnknownModule(t *testing.T) {
	collector := NewCollector(nil, registry.DefaultMGA(), nil, testLogger())
	res := collector.Collect(context.Background(), "users", 1)
	if res.Status != StatusUnsupported {
		t.Fatalf("status=%q, want unsupported", res.Status)
	}
	if res.Message == "" {
		t.Fatal("unsupported result should carry a message")
	}
}

func TestCollectChildModuleAsRoot(t *testing.T) {
	collector := NewCollector(nil, registry.DefaultMGA(), nil, testLogger())
	res := collector.Collect(context.Background(), "direct_effects", 1)
	if res.Status != StatusError {
		t.Fatalf("status=%q, want error: a declared child is known but not project scoped", res.Status)
	}
}

type chainNode struct {
	Label string
	Child *chainNode
}

func chainRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register(&registry.Module{
		Name:          "nodes",
		Table:         "nodes",
		ProjectScoped: true,
		Children:      []string{"nodes"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			root := &chainNode{Label: "n0"}
			cur := root
			for i := 1; i < 8; i++ {
				cur.Child = &chainNode{Label: fmt.Sprintf("n%d", i)}
				cur = cur.Child
			}
			return []any{root}, nil
		},
		Fields: func(rec any) []registry.Field {
			n, ok := rec.(*chainNode)
			if !ok {
				return nil
			}
			return []registry.Field{{Name: "label", Value: n.Label}}
		},
		Relations: map[string]registry.RelationFunc{
			"nodes": func(rec any) ([]any, error) {
				n := rec.(*chainNode)
				if n.Child == nil {
					return nil, nil
				}
				return []any{n.Child}, nil
			},
		},
	})
	return reg
}

func TestCollectDepthBound(t *testing.T) {
	collector := NewCollector(nil, chainRegistry(), nil, testLogger())
	res := collector.Collect(context.Background(), "nodes", 1)
	if res.Status != StatusOK {
		t.Fatalf("status=%q message=%q", res.Status, res.Message)
	}

	depth := 0
	cur := res.Records[0]
	for len(cur.Children) == 1 && len(cur.Children[0].Records) == 1 {
		cur = cur.Children[0].Records[0]
		depth++
	}
	if depth != DefaultMaxDepth {
		t.Fatalf("deepest attached level=%d, want %d", depth, DefaultMaxDepth)
	}
	if cur.Fields[0].Value != fmt.Sprintf("n%d", DefaultMaxDepth) {
		t.Fatalf("deepest node=%v", cur.Fields[0].Value)
	}
	if len(cur.Children) != 0 {
		t.Fatalf("node at the depth bound should have no attachments, got %v", cur.Children)
	}
}

func TestCollectRelationFailureDegradesToWarning(t *testing.T) {
	reg := registry.New()
	reg.Register(&registry.Module{
		Name:          "parents",
		Table:         "parents",
		ProjectScoped: true,
		Children:      []string{"children"},
		Fetch: func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error) {
			return []any{&chainNode{Label: "p"}}, nil
		},
		Fields: func(rec any) []registry.Field {
			return []registry.Field{{Name: "label", Value: rec.(*chainNode).Label}}
		},
		Relations: map[string]registry.RelationFunc{
			"children": func(rec any) ([]any, error) {
				return nil, fmt.Errorf("broken relation")
			},
		},
	})

	collector := NewCollector(nil, reg, nil, testLogger())
	res := collector.Collect(context.Background(), "parents", 1)

	if res.Status != StatusOK {
		t.Fatalf("status=%q, want ok: child failures must not fail the collection", res.Status)
	}
	if len(res.Records) != 1 {
		t.Fatalf("records=%d, want 1", len(res.Records))
	}
	if len(res.Records[0].Children) != 0 {
		t.Fatalf("failed attachment should be omitted, got %v", res.Records[0].Children)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings=%v, want exactly one", res.Warnings)
	}
}
