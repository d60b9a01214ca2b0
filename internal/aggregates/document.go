package aggregates

import (
	"bytes"
	"encoding/json"

	"github.com/formulamga/mga-backend/internal/registry"
)

const (
	StatusOK          = "ok"
	StatusError       = "error"
	StatusUnsupported = "unsupported"
)

// ChildAttachment is one resolved child collection of a record. An attachment
// with zero records means the relation resolved but was empty; a missing
// attachment means the relation failed and was dropped (see Result.Warnings).
type ChildAttachment struct {
	Name    string
	Records []*Document
}

// Document is one root record plus its recursively attached child record
// lists. It is built fresh per collection and never mutated afterwards.
type Document struct {
	Fields   []registry.Field
	Children []ChildAttachment
}

// MarshalJSON renders the document as a single object: scalar fields first in
// declaration order, then each child collection under its module name. The
// ordering mirrors what the formatter renders, so exports and prompts agree.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeKey := func(name string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		return nil
	}
	for _, f := range d.Fields {
		if err := writeKey(f.Name); err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	for _, child := range d.Children {
		if err := writeKey(child.Name); err != nil {
			return nil, err
		}
		records := child.Records
		if records == nil {
			records = []*Document{}
		}
		val, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the outcome of one hierarchical collection.
type Result struct {
	Module       string      `json:"module"`
	Table        string      `json:"table"`
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	TotalRecords int         `json:"total_records"`
	Records      []*Document `json:"records"`
	Warnings     []string    `json:"warnings,omitempty"`
}

func errorResult(module, table, message string) *Result {
	return &Result{Module: module, Table: table, Status: StatusError, Message: message, Records: []*Document{}}
}

func unsupportedResult(module, message string) *Result {
	return &Result{Module: module, Table: module, Status: StatusUnsupported, Message: message, Records: []*Document{}}
}
