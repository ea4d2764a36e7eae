package rowshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/archreg/pkg/registry/models"
)

func TestShape(t *testing.T) {
	node := &models.ArchiverNode{
		NodeID:   7,
		NodeName: "n",
		NodeHost: "h",
	}

	t.Run("valid node produces ordered triple", func(t *testing.T) {
		row, err := Shape(node, ArchiverSchema())
		require.NoError(t, err)
		require.Len(t, row, 3)

		assert.Equal(t, int64(7), row[0])
		assert.Equal(t, "n", row[1])
		assert.Equal(t, "h", row[2])
	})

	t.Run("nil node is rejected", func(t *testing.T) {
		_, err := Shape(nil, ArchiverSchema())
		assert.ErrorIs(t, err, models.ErrNilArchiver)
	})

	t.Run("column names are the caller's business", func(t *testing.T) {
		schema := Schema{
			{Name: "id", Kind: KindInt64},
			{Name: "label", Kind: KindString},
			{Name: "address", Kind: KindString},
		}

		row, err := Shape(node, schema)
		require.NoError(t, err)
		assert.Equal(t, Row{int64(7), "n", "h"}, row)
	})

	t.Run("wrong arity is a schema mismatch", func(t *testing.T) {
		schema := Schema{
			{Name: "node_id", Kind: KindInt64},
			{Name: "node_name", Kind: KindString},
		}

		_, err := Shape(node, schema)
		assert.ErrorIs(t, err, models.ErrSchemaMismatch)
	})

	t.Run("empty schema is a schema mismatch", func(t *testing.T) {
		_, err := Shape(node, Schema{})
		assert.ErrorIs(t, err, models.ErrSchemaMismatch)
	})

	t.Run("wrong column kind is a schema mismatch", func(t *testing.T) {
		schema := Schema{
			{Name: "node_id", Kind: KindString},
			{Name: "node_name", Kind: KindString},
			{Name: "node_host", Kind: KindString},
		}

		_, err := Shape(node, schema)
		assert.ErrorIs(t, err, models.ErrSchemaMismatch)
	})

	t.Run("node is not mutated", func(t *testing.T) {
		_, err := Shape(node, ArchiverSchema())
		require.NoError(t, err)

		assert.Equal(t, int64(7), node.NodeID)
		assert.Equal(t, "n", node.NodeName)
		assert.Equal(t, "h", node.NodeHost)
	})
}

func TestArchiverSchema(t *testing.T) {
	schema := ArchiverSchema()

	require.Len(t, schema, 3)
	assert.Equal(t, Column{Name: "node_id", Kind: KindInt64}, schema[0])
	assert.Equal(t, Column{Name: "node_name", Kind: KindString}, schema[1])
	assert.Equal(t, Column{Name: "node_host", Kind: KindString}, schema[2])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int64", KindInt64.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
