package backoffice

import (
	"sort"

	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
)

// LowStockThreshold é o limite fixo do painel para estoque baixo.
const LowStockThreshold = 5

// ProductSales associa um produto do catálogo ao total de unidades vendidas
// em todos os pedidos do ledger.
type ProductSales struct {
	Product models.Product `json:"product"`
	Sales   int            `json:"sales"`
}

// Os agregados do painel são recalculados por varredura completa a cada
// leitura; sem cache incremental nem paginação, aceitável na escala de
// demonstração.

// TotalRevenue retorna a soma dos totais de todos os pedidos.
func (l *Ledger) TotalRevenue() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	revenue := decimal.Zero
	for _, o := range l.orders {
		revenue = revenue.Add(o.Total)
	}
	return revenue
}

// OrderCount retorna o número de pedidos registrados.
func (l *Ledger) OrderCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// CustomerCount retorna o número de clientes registrados.
func (l *Ledger) CustomerCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.customers)
}

// LowStock retorna os produtos com estoque menor ou igual ao limite, na
// ordem do catálogo.
func (l *Ledger) LowStock(products []models.Product) []models.Product {
	low := []models.Product{}
	for _, p := range products {
		if p.Stock <= LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// BestSellers ordena os produtos por unidades vendidas em ordem
// decrescente. Produtos nunca pedidos ficam por último; empates preservam a
// ordem original do catálogo (ordenação estável apenas pelo contador).
func (l *Ledger) BestSellers(products []models.Product) []ProductSales {
	l.mu.RLock()
	sold := map[int]int{}
	for _, o := range l.orders {
		for _, item := range o.Items {
			sold[item.Product.ID] += item.Quantity
		}
	}
	l.mu.RUnlock()

	ranked := make([]ProductSales, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, ProductSales{Product: p, Sales: sold[p.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sales > ranked[j].Sales
	})
	return ranked
}
