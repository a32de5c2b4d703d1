package catalog

import (
	"testing"

	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(name string, price float64, stock int, category string) models.Product {
	return models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		Category: category,
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	c := New()

	first := c.Add(product("A", 10, 1, "x"))
	second := c.Add(product("B", 20, 1, "x"))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestAddUsesMaxExistingIDPlusOne(t *testing.T) {
	c := NewSeeded() // ids 1..8

	p := c.Add(product("Novo", 10, 1, "x"))
	assert.Equal(t, 9, p.ID)
}

func TestAddAfterDeleteNeverCollides(t *testing.T) {
	c := New()
	c.Add(product("A", 10, 1, "x")) // id 1
	c.Add(product("B", 20, 1, "x")) // id 2
	c.Delete(2)

	p := c.Add(product("C", 30, 1, "x"))
	assert.Equal(t, 2, p.ID)

	q := c.Add(product("D", 40, 1, "x"))
	assert.Equal(t, 3, q.ID)

	ids := map[int]bool{}
	for _, prod := range c.All() {
		assert.False(t, ids[prod.ID], "id %d duplicado", prod.ID)
		ids[prod.ID] = true
	}
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	c := New()
	p := c.Add(product("A", 10, 5, "x"))

	newName := "Renomeado"
	newStock := 42
	c.Update(p.ID, Patch{Name: &newName, Stock: &newStock})

	got, ok := c.GetByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Renomeado", got.Name)
	assert.Equal(t, 42, got.Stock)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "x", got.Category)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(product("A", 10, 5, "x"))

	name := "Fantasma"
	c.Update(99, Patch{Name: &name})

	got, _ := c.GetByID(1)
	assert.Equal(t, "A", got.Name)
}

func TestSetStock(t *testing.T) {
	c := New()
	p := c.Add(product("A", 10, 5, "x"))

	c.SetStock(p.ID, 0)

	got, _ := c.GetByID(p.ID)
	assert.Equal(t, 0, got.Stock)
}

func TestDeleteRemovesProduct(t *testing.T) {
	c := New()
	p := c.Add(product("A", 10, 5, "x"))

	c.Delete(p.ID)

	_, ok := c.GetByID(p.ID)
	assert.False(t, ok)
}

func TestListFiltersByCategory(t *testing.T) {
	c := NewSeeded()

	got := c.List(ListOptions{Category: "racoes"})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, "racoes", p.Category)
	}
}

func TestListFiltersByQuery(t *testing.T) {
	c := NewSeeded()

	got := c.List(ListOptions{Query: "arame"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestListFiltersByPriceRange(t *testing.T) {
	c := NewSeeded()
	min := decimal.NewFromInt(30)
	max := decimal.NewFromInt(100)

	got := c.List(ListOptions{MinPrice: &min, MaxPrice: &max})
	for _, p := range got {
		assert.True(t, p.Price.GreaterThanOrEqual(min))
		assert.True(t, p.Price.LessThanOrEqual(max))
	}
	require.Len(t, got, 2) // Esterco 32.50 e Ração 99.90
}

func TestListSortsByPrice(t *testing.T) {
	c := NewSeeded()

	asc := c.List(ListOptions{Sort: SortByPriceAsc})
	for i := 1; i < len(asc); i++ {
		assert.True(t, asc[i-1].Price.LessThanOrEqual(asc[i].Price))
	}

	desc := c.List(ListOptions{Sort: SortByPriceDesc})
	for i := 1; i < len(desc); i++ {
		assert.True(t, desc[i-1].Price.GreaterThanOrEqual(desc[i].Price))
	}
}

func TestListWithoutSortKeepsCatalogOrder(t *testing.T) {
	c := NewSeeded()

	got := c.List(ListOptions{})
	require.Len(t, got, 8)
	for i, p := range got {
		assert.Equal(t, i+1, p.ID)
	}
}
