package registry

import (
	"context"

	"gorm.io/gorm"
)

// Field is one column of a fetched record. Order matters: the formatter
// renders fields in declaration order.
type Field struct {
	Name  string
	Value any
}

// RelationFunc extracts an already-loaded child collection from a parent
// record. An error marks the relation as broken for that record; the caller
// treats it as a soft failure.
type RelationFunc func(rec any) ([]any, error)

// FetchFunc loads every root record of a module for one project, eagerly
// resolving the declared child relations so that walking the tree afterwards
// issues no further queries.
type FetchFunc func(ctx context.Context, tx *gorm.DB, projectID uint) ([]any, error)

// Module describes one named entity collection ("tab") of the project
// document: its table, its declared children and the typed accessors that
// replace runtime reflection.
type Module struct {
	Name          string
	DisplayName   string
	Table         string
	ProjectScoped bool
	Children      []string
	Fetch         FetchFunc
	Fields        func(rec any) []Field
	Relations     map[string]RelationFunc
}

// Registry is the static declaration of every module and of the parent→child
// edges between them. Built once at startup, read-only afterwards.
type Registry struct {
	modules map[string]*Module
	order   []string
}

func New() *Registry {
	return &Registry{modules: map[string]*Module{}}
}

func (r *Registry) Register(m *Module) {
	if _, exists := r.modules[m.Name]; !exists {
		r.order = append(r.order, m.Name)
	}
	r.modules[m.Name] = m
}

func (r *Registry) Get(name string) (*Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ParentOf returns the module that declares name as a child.
func (r *Registry) ParentOf(name string) (string, bool) {
	for _, parentName := range r.order {
		for _, child := range r.modules[parentName].Children {
			if child == name {
				return parentName, true
			}
		}
	}
	return "", false
}

func (r *Registry) IsDeclaredChild(name string) bool {
	_, ok := r.ParentOf(name)
	return ok
}

// DisplayName resolves the human label for a module, falling back to the raw
// name when the module is unknown.
func (r *Registry) DisplayName(name string) string {
	if m, ok := r.modules[name]; ok && m.DisplayName != "" {
		return m.DisplayName
	}
	return name
}
