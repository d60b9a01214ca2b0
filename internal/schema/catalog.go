package schema

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/formulamga/mga-backend/internal/apierr"
	"github.com/formulamga/mga-backend/internal/logger"
)

// Catalog reflects the live persisted schema. It is deliberately not cached:
// the schema can change between deployments and every request sees the
// current state of the store.
type Catalog struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCatalog(db *gorm.DB, baseLog *logger.Logger) *Catalog {
	return &Catalog{db: db, log: baseLog.With("service", "SchemaCatalog")}
}

func (c *Catalog) ListTables() ([]string, error) {
	tables, err := c.db.Migrator().GetTables()
	if err != nil {
		c.log.Error("Failed to reflect table list", "error", err)
		return nil, apierr.New(http.StatusServiceUnavailable, apierr.CodeBackendUnavailable, fmt.Errorf("schema reflection failed: %w", err))
	}
	return tables, nil
}

func (c *Catalog) ColumnsOf(table string) ([]string, error) {
	columnTypes, err := c.db.Migrator().ColumnTypes(table)
	if err != nil {
		c.log.Error("Failed to reflect columns", "table", table, "error", err)
		return nil, apierr.New(http.StatusServiceUnavailable, apierr.CodeBackendUnavailable, fmt.Errorf("column reflection failed for %q: %w", table, err))
	}
	columns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

func (c *Catalog) ColumnSet(table string) (map[string]bool, error) {
	columns, err := c.ColumnsOf(table)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(columns))
	for _, name := range columns {
		set[name] = true
	}
	return set, nil
}

func (c *Catalog) HasColumn(table, column string) (bool, error) {
	set, err := c.ColumnSet(table)
	if err != nil {
		return false, err
	}
	return set[column], nil
}
