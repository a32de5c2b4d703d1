package catalog

import (
	"log"
	"sort"
	"strings"
	"sync"

	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
)

// Catalog mantém o conjunto de produtos à venda em memória. Não é
// persistido entre execuções: a cada inicialização o catálogo volta aos
// dados de fábrica mais o que o admin criar em seguida. Nenhuma validação de
// preço, estoque ou categoria é feita aqui; o formulário do admin é quem
// pré-valida.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

// New cria um catálogo vazio.
func New() *Catalog {
	return &Catalog{products: []models.Product{}}
}

// NewSeeded cria um catálogo com os produtos de fábrica.
func NewSeeded() *Catalog {
	return &Catalog{products: DefaultProducts()}
}

// Patch descreve uma atualização parcial de produto; campos nil não são
// tocados.
type Patch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Stock       *int
	Category    *string
}

// Add cria um produto com id = maior id existente + 1 (1 para catálogo
// vazio) e o retorna.
func (c *Catalog) Add(p models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, existing := range c.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	c.products = append(c.products, p)
	log.Printf("Catalog.Add - Product %d (%s) added", p.ID, p.Name)
	return p
}

// Update aplica uma atualização parcial ao produto. Id inexistente é um
// no-op.
func (c *Catalog) Update(id int, patch Patch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		if patch.Name != nil {
			c.products[i].Name = *patch.Name
		}
		if patch.Description != nil {
			c.products[i].Description = *patch.Description
		}
		if patch.Price != nil {
			c.products[i].Price = *patch.Price
		}
		if patch.ImageURL != nil {
			c.products[i].ImageURL = *patch.ImageURL
		}
		if patch.Stock != nil {
			c.products[i].Stock = *patch.Stock
		}
		if patch.Category != nil {
			c.products[i].Category = *patch.Category
		}
		return
	}
	log.Printf("Catalog.Update - Product %d not found, ignoring", id)
}

// Delete remove o produto pelo id. Pedidos históricos guardam cópias por
// valor e não são afetados.
func (c *Catalog) Delete(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// SetStock define o estoque do produto; é um Update restrito ao campo.
func (c *Catalog) SetStock(id, stock int) {
	c.Update(id, Patch{Stock: &stock})
}

// GetByID retorna o produto pelo id, ou false se não existir.
func (c *Catalog) GetByID(id int) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// All retorna uma cópia da lista de produtos na ordem do catálogo.
func (c *Catalog) All() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return products
}

// Ordenações aceitas pela vitrine.
const (
	SortByName      = "name"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
)

// ListOptions filtra e ordena a vitrine. Campos zerados não filtram.
type ListOptions struct {
	Category string
	Query    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
}

// List retorna os produtos que passam pelos filtros, ordenados de forma
// estável.
func (c *Catalog) List(opts ListOptions) []models.Product {
	products := c.All()

	filtered := products[:0]
	query := strings.ToLower(opts.Query)
	for _, p := range products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if opts.MinPrice != nil && p.Price.LessThan(*opts.MinPrice) {
			continue
		}
		if opts.MaxPrice != nil && p.Price.GreaterThan(*opts.MaxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch opts.Sort {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	case SortByPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortByPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	}
	return filtered
}
