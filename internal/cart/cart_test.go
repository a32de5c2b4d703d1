package cart

import (
	"testing"

	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id int, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Produto Teste",
		Price:    decimal.NewFromFloat(price),
		Stock:    10,
		Category: "teste",
	}
}

func assertTotalIsDerived(t *testing.T, c models.Cart) {
	t.Helper()
	expected := decimal.Zero
	for _, item := range c.Items {
		expected = expected.Add(item.Subtotal())
	}
	assert.True(t, c.Total.Equal(expected), "total %s != derived %s", c.Total, expected)
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))
	p := testProduct(1, 25.90)

	for i := 0; i < 4; i++ {
		svc.AddToCart(p)
	}

	c := svc.Cart()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.True(t, c.Total.Equal(decimal.NewFromFloat(25.90).Mul(decimal.NewFromInt(4))))
}

func TestAddToCartKeepsInsertionOrder(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))

	svc.AddToCart(testProduct(3, 10))
	svc.AddToCart(testProduct(1, 20))
	svc.AddToCart(testProduct(3, 10))

	c := svc.Cart()
	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Items[0].Product.ID)
	assert.Equal(t, 1, c.Items[1].Product.ID)
	assertTotalIsDerived(t, c)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))
	svc.AddToCart(testProduct(1, 50))
	svc.AddToCart(testProduct(2, 30))

	svc.UpdateQuantity(1, 0)

	c := svc.Cart()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Product.ID)
	assertTotalIsDerived(t, c)
}

func TestUpdateQuantityNegativeIsNoOp(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))
	svc.AddToCart(testProduct(1, 50))

	before := svc.Cart()
	svc.UpdateQuantity(1, -1)
	after := svc.Cart()

	require.Len(t, after.Items, 1)
	assert.Equal(t, before.Items[0].Quantity, after.Items[0].Quantity)
	assert.True(t, before.Total.Equal(after.Total))
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))
	svc.AddToCart(testProduct(1, 10))

	svc.UpdateQuantity(1, 7)

	c := svc.Cart()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.True(t, c.Total.Equal(decimal.NewFromInt(70)))
}

func TestRemoveFromCart(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))
	svc.AddToCart(testProduct(1, 10))
	svc.AddToCart(testProduct(2, 20))

	svc.RemoveFromCart(1)
	svc.RemoveFromCart(99) // inexistente, no-op

	c := svc.Cart()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Product.ID)
	assertTotalIsDerived(t, c)
}

func TestClearCartAndProcessOrder(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))
	svc.AddToCart(testProduct(1, 10))

	svc.ProcessOrder()

	c := svc.Cart()
	assert.Empty(t, c.Items)
	assert.True(t, c.Total.IsZero())
}

func TestRoundTripThroughStorage(t *testing.T) {
	store := storage.NewStore(t.TempDir())

	svc := NewService(store)
	svc.AddToCart(testProduct(1, 25.90))
	svc.AddToCart(testProduct(2, 189.90))
	svc.AddToCart(testProduct(1, 25.90))
	svc.UpdateQuantity(2, 3)
	want := svc.Cart()

	reloaded := NewService(store).Cart()
	require.Len(t, reloaded.Items, len(want.Items))
	for i := range want.Items {
		assert.Equal(t, want.Items[i].Product.ID, reloaded.Items[i].Product.ID)
		assert.Equal(t, want.Items[i].Quantity, reloaded.Items[i].Quantity)
		assert.True(t, want.Items[i].Product.Price.Equal(reloaded.Items[i].Product.Price))
	}
	assert.True(t, want.Total.Equal(reloaded.Total))
}

func TestLoadDropsMalformedItems(t *testing.T) {
	store := storage.NewStore(t.TempDir())

	store.Save(StorageKey, map[string]any{
		"items": []any{
			map[string]any{
				"product":  map[string]any{"id": 1, "name": "Bom", "price": "10", "stock": 5, "category": "x"},
				"quantity": 2,
			},
			map[string]any{"quantity": 3},                       // sem produto
			map[string]any{"product": map[string]any{"id": 2}}, // sem quantidade
			map[string]any{
				"product":  map[string]any{"id": 3, "price": "5"},
				"quantity": "muitos", // quantidade não numérica
			},
		},
		"total": "999999", // total persistido nunca é confiado
	})

	c := NewService(store).Cart()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Product.ID)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.True(t, c.Total.Equal(decimal.NewFromInt(20)))
}

func TestLoadWithoutItemsArrayStartsEmpty(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	store.Save(StorageKey, map[string]any{"total": 50})

	c := NewService(store).Cart()
	assert.Empty(t, c.Items)
	assert.True(t, c.Total.IsZero())
}
