package bulksync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		doc, err := Decode("desired/orders.yml", []byte(`
qualifiedName: schema.orders
displayName: Orders
source: crm
attributes:
  - qualifiedName: schema.orders.id
    position: 0
    aliases: [oid]
lineage:
  - source: schema.orders.id
    target: schema.invoices.order_id
`))
		require.NoError(t, err)
		assert.Equal(t, "schema.orders", doc.QualifiedName)
		assert.Equal(t, "crm", doc.Source)
		require.Len(t, doc.Attributes, 1)
		assert.Equal(t, []string{"oid"}, doc.Attributes[0].Aliases)
		assert.Equal(t, []Link{{Source: "schema.orders.id", Target: "schema.invoices.order_id"}}, doc.Lineage)
	})

	t.Run("JSON", func(t *testing.T) {
		doc, err := Decode("desired/orders.JSON", []byte(`{"qualifiedName":"schema.orders","displayName":"Orders","assets":[{"qualifiedName":"file.orders.csv"}]}`))
		require.NoError(t, err)
		assert.Equal(t, "Orders", doc.DisplayName)
		require.Len(t, doc.Assets, 1)
		assert.Equal(t, "file.orders.csv", doc.Assets[0].QualifiedName)
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		_, err := Decode("a.yaml", []byte("qualifiedName: x\ncolour: red\n"))
		assert.Error(t, err)
		_, err = Decode("a.json", []byte(`{"qualifiedName":"x","colour":"red"}`))
		assert.Error(t, err)
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		_, err := Decode("a.txt", []byte("x"))
		assert.Error(t, err)
	})
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("desired/a.yaml"))
	assert.True(t, Supported("desired/a.YML"))
	assert.True(t, Supported("a.json"))
	assert.False(t, Supported("desired/README.md"))
	assert.False(t, Supported("desired/"))
}
