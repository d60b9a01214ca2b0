package registry

import "github.com/jinzhu/inflection"

// ResolveRelation maps a declared child module name onto one of the parent's
// relation accessors. Entity and relation names in the store do not follow a
// single convention (singular vs plural vs domain synonym), so the lookup
// runs three steps in a fixed order: exact name, pluralized form,
// singularized form. An exact match always wins over the heuristics. No
// match means "no such children", not an error.
func (m *Module) ResolveRelation(childName string) (string, RelationFunc, bool) {
	if m == nil || len(m.Relations) == 0 {
		return "", nil, false
	}
	if fn, ok := m.Relations[childName]; ok {
		return childName, fn, true
	}
	if plural := inflection.Plural(childName); plural != childName {
		if fn, ok := m.Relations[plural]; ok {
			return plural, fn, true
		}
	}
	if singular := inflection.Singular(childName); singular != childName {
		if fn, ok := m.Relations[singular]; ok {
			return singular, fn, true
		}
	}
	return "", nil, false
}
