// Package rowshape converts internal archiver records into the ordered,
// typed row shape expected by an external query or RPC surface.
//
// The caller describes the shape it expects with an explicit Schema
// descriptor; no reflection or result-type introspection is involved. The
// archiver row contract is fixed: three columns (id, name, host) with kinds
// (Int64, String, String), in that order.
package rowshape

import (
	"fmt"

	"github.com/marmos91/archreg/pkg/registry/models"
)

// Kind identifies the type of a shaped column.
type Kind int

const (
	// KindInt64 is a 64-bit signed integer column.
	KindInt64 Kind = iota
	// KindString is a text column.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Column describes a single column of a caller-expected result shape.
type Column struct {
	Name string
	Kind Kind
}

// Schema is an ordered caller-supplied result shape descriptor.
type Schema []Column

// Row is an ordered tuple of typed column values.
type Row []any

// ArchiverSchema returns the canonical result shape for archiver rows:
// (node_id int64, node_name string, node_host string).
func ArchiverSchema() Schema {
	return Schema{
		{Name: "node_id", Kind: KindInt64},
		{Name: "node_name", Kind: KindString},
		{Name: "node_host", Kind: KindString},
	}
}

// Shape converts an archiver node into the row shape the caller expects.
//
// The node must not be nil: callers are expected to have resolved absence
// before asking for a shaped row. The schema must be compatible with the
// fixed three-column archiver contract; column names are the caller's
// business, but arity and kinds must match exactly.
//
// Shape performs no I/O and never mutates the node.
func Shape(node *models.ArchiverNode, schema Schema) (Row, error) {
	if node == nil {
		return nil, models.ErrNilArchiver
	}

	if err := checkSchema(schema); err != nil {
		return nil, err
	}

	return Row{node.NodeID, node.NodeName, node.NodeHost}, nil
}

// checkSchema verifies the caller-supplied shape against the archiver
// row contract.
func checkSchema(schema Schema) error {
	want := []Kind{KindInt64, KindString, KindString}

	if len(schema) != len(want) {
		return fmt.Errorf("%w: expected %d columns, got %d",
			models.ErrSchemaMismatch, len(want), len(schema))
	}

	for i, kind := range want {
		if schema[i].Kind != kind {
			return fmt.Errorf("%w: column %d (%s) must be %s, got %s",
				models.ErrSchemaMismatch, i, schema[i].Name, kind, schema[i].Kind)
		}
	}

	return nil
}
