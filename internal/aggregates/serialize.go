package aggregates

import (
	"fmt"
	"strings"
	"time"

	"github.com/formulamga/mga-backend/internal/registry"
)

// ProjectLinkColumn is the one foreign key allowed to surface in serialized
// records: it ties a record to its project without leaking internal ids.
const ProjectLinkColumn = "project_id"

var ignoredColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

// Serialize filters a record's fields down to what may surface in assistant
// context: catalog-known columns only, no primary key, no foreign keys other
// than the project link, no audit timestamps, no opaque JSON blobs. Values
// are normalized for rendering. Pure given its inputs.
func Serialize(fields []registry.Field, columns map[string]bool) []registry.Field {
	out := make([]registry.Field, 0, len(fields))
	for _, f := range fields {
		if excludedField(f.Name) {
			continue
		}
		if columns != nil && !columns[f.Name] {
			continue
		}
		out = append(out, registry.Field{Name: f.Name, Value: NormalizeValue(f.Value)})
	}
	return out
}

func excludedField(name string) bool {
	if ignoredColumns[name] {
		return true
	}
	if strings.HasSuffix(name, "_json") || strings.HasSuffix(name, "_at") {
		return true
	}
	if strings.HasSuffix(name, "_id") && name != ProjectLinkColumn {
		return true
	}
	return false
}

// NormalizeValue maps persisted values onto the small set of scalar kinds the
// formatter understands: nil, bool, numbers and strings. Timestamps become
// ISO-8601 strings; anything else falls back to its string form.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
