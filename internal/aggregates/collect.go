package aggregates

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/registry"
	"github.com/formulamga/mga-backend/internal/schema"
)

// DefaultMaxDepth bounds how many relation levels below the root get
// attached. The counter is enforced on its own, so even a cyclic relationship
// declaration cannot recurse past it.
const DefaultMaxDepth = 5

// Collector builds the hierarchical document set of one module for one
// project. It holds no per-request state; every invocation fetches fresh.
type Collector struct {
	db      *gorm.DB
	reg     *registry.Registry
	catalog *schema.Catalog
	log     *logger.Logger
}

func NewCollector(db *gorm.DB, reg *registry.Registry, catalog *schema.Catalog, baseLog *logger.Logger) *Collector {
	return &Collector{db: db, reg: reg, catalog: catalog, log: baseLog.With("service", "Collector")}
}

// Collect is CollectDepth with the standard depth bound.
func (c *Collector) Collect(ctx context.Context, moduleName string, projectID uint) *Result {
	return c.CollectDepth(ctx, moduleName, projectID, DefaultMaxDepth)
}

// CollectDepth fetches every root record of moduleName belonging to
// projectID and recursively attaches the declared child collections.
// Failures below the root degrade to warnings with the affected attachment
// omitted; only root-level failures produce an error status. Nothing here
// panics or propagates store errors as exceptions.
func (c *Collector) CollectDepth(ctx context.Context, moduleName string, projectID uint, maxDepth int) *Result {
	mod, known := c.reg.Get(moduleName)
	if !known {
		if _, isChild := c.reg.ParentOf(moduleName); !isChild {
			return unsupportedResult(moduleName, fmt.Sprintf("módulo '%s' no soportado", moduleName))
		}
		return errorResult(moduleName, moduleName, fmt.Sprintf("no se pudo resolver el módulo '%s'", moduleName))
	}
	if !mod.ProjectScoped || mod.Fetch == nil {
		if !c.reg.IsDeclaredChild(moduleName) {
			return unsupportedResult(moduleName, fmt.Sprintf("módulo '%s' no soportado o no es un módulo principal", moduleName))
		}
		return errorResult(moduleName, mod.Table, fmt.Sprintf("el módulo '%s' no está asociado directamente a un proyecto", moduleName))
	}
	if mod.Fields == nil {
		return errorResult(moduleName, mod.Table, fmt.Sprintf("no se pudo cargar el modelo para '%s'", moduleName))
	}

	walk := &walkState{collector: c, columnSets: map[string]map[string]bool{}}

	rootColumns, err := walk.columnsFor(mod)
	if err != nil {
		c.log.Error("Schema reflection failed for root module", "module", moduleName, "error", err)
		return errorResult(moduleName, mod.Table, err.Error())
	}

	records, err := mod.Fetch(ctx, c.db, projectID)
	if err != nil {
		c.log.Error("Root fetch failed", "module", moduleName, "project_id", projectID, "error", err)
		return errorResult(moduleName, mod.Table, err.Error())
	}

	docs := make([]*Document, 0, len(records))
	for _, rec := range records {
		doc := walk.buildDocument(ctx, mod, rec, rootColumns, 0, maxDepth)
		if doc != nil {
			docs = append(docs, doc)
		}
	}

	return &Result{
		Module:       moduleName,
		Table:        mod.Table,
		Status:       StatusOK,
		TotalRecords: len(records),
		Records:      docs,
		Warnings:     walk.warnings,
	}
}

// walkState carries the per-invocation memo of reflected column sets and the
// accumulated soft-failure warnings. It lives for exactly one collection.
type walkState struct {
	collector  *Collector
	columnSets map[string]map[string]bool
	warnings   []string
}

func (w *walkState) warnf(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

func (w *walkState) columnsFor(mod *registry.Module) (map[string]bool, error) {
	if w.collector.catalog == nil {
		return nil, nil
	}
	if set, ok := w.columnSets[mod.Table]; ok {
		return set, nil
	}
	set, err := w.collector.catalog.ColumnSet(mod.Table)
	if err != nil {
		return nil, err
	}
	w.columnSets[mod.Table] = set
	return set, nil
}

func (w *walkState) buildDocument(ctx context.Context, mod *registry.Module, rec any, columns map[string]bool, level, maxDepth int) *Document {
	fields := mod.Fields(rec)
	if fields == nil {
		w.warnf("módulo %s: registro con tipo inesperado, omitido", mod.Name)
		return nil
	}
	doc := &Document{Fields: Serialize(fields, columns)}
	if level >= maxDepth {
		return doc
	}

	for _, childName := range mod.Children {
		_, relation, found := mod.ResolveRelation(childName)
		if !found {
			// Not an error: the parent simply has no such children.
			continue
		}
		childRecords, err := relation(rec)
		if err != nil {
			w.warnf("módulo %s: relación %s falló: %v", mod.Name, childName, err)
			continue
		}
		childMod, ok := w.collector.reg.Get(childName)
		if !ok {
			w.warnf("módulo %s: submódulo %s no registrado", mod.Name, childName)
			continue
		}
		childColumns, err := w.columnsFor(childMod)
		if err != nil {
			w.warnf("módulo %s: esquema de %s no disponible: %v", mod.Name, childName, err)
			continue
		}
		attachment := ChildAttachment{Name: childName, Records: []*Document{}}
		for _, childRec := range childRecords {
			childDoc := w.buildDocument(ctx, childMod, childRec, childColumns, level+1, maxDepth)
			if childDoc != nil {
				attachment.Records = append(attachment.Records, childDoc)
			}
		}
		doc.Children = append(doc.Children, attachment)
	}
	return doc
}
