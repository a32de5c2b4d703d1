package cart

import (
	"encoding/json"
	"log"
	"sync"

	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"github.com/shopspring/decimal"
)

// StorageKey é a chave versionada do snapshot do carrinho.
const StorageKey = "vf_cart_v1"

// Service gerencia as operações do carrinho. O total é recalculado a partir
// dos itens após cada mutação e o snapshot é persistido no Store injetado.
// Nenhuma operação falha do ponto de vista do chamador: estado persistido
// malformado é sanitizado no carregamento, não propagado como erro.
type Service struct {
	mu    sync.Mutex
	store *storage.Store
	cart  models.Cart
}

// NewService cria um Service e carrega o snapshot persistido, descartando
// itens que não passam na validação estrutural.
func NewService(store *storage.Store) *Service {
	s := &Service{store: store}
	var raw json.RawMessage
	if store.Load(StorageKey, &raw) {
		s.cart = sanitize(raw)
	} else {
		s.cart = emptyCart()
	}
	return s
}

func emptyCart() models.Cart {
	return models.Cart{Items: []models.CartItem{}, Total: decimal.Zero}
}

// storedItem espelha a forma mínima exigida de um item persistido: um
// produto presente e uma quantidade numérica.
type storedItem struct {
	Product  *models.Product `json:"product"`
	Quantity *float64        `json:"quantity"`
}

// sanitize valida o snapshot desserializado: precisa ser um objeto com um
// array items; itens fora da forma esperada são descartados em silêncio. O
// total nunca é lido do snapshot, sempre recalculado.
func sanitize(raw json.RawMessage) models.Cart {
	var stored struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Printf("Cart.sanitize - Invalid cart data, starting empty: %v", err)
		return emptyCart()
	}
	if stored.Items == nil {
		log.Printf("Cart.sanitize - Cart data has no items array, starting empty")
		return emptyCart()
	}

	items := []models.CartItem{}
	for _, rawItem := range stored.Items {
		var item storedItem
		if err := json.Unmarshal(rawItem, &item); err != nil {
			log.Printf("Cart.sanitize - Dropping malformed cart item: %v", err)
			continue
		}
		if item.Product == nil || item.Quantity == nil {
			log.Printf("Cart.sanitize - Dropping cart item without product or quantity")
			continue
		}
		items = append(items, models.CartItem{
			Product:  *item.Product,
			Quantity: int(*item.Quantity),
		})
	}
	return models.Cart{Items: items, Total: calculateTotal(items)}
}

func calculateTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// recompute atualiza o total e persiste o snapshot. Chamado com o mutex
// adquirido.
func (s *Service) recompute() {
	s.cart.Total = calculateTotal(s.cart.Items)
	s.store.Save(StorageKey, s.cart)
}

// Cart retorna uma cópia do carrinho atual.
func (s *Service) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return models.Cart{Items: items, Total: s.cart.Total}
}

// AddToCart adiciona uma unidade do produto: incrementa a quantidade se o
// produto já está no carrinho, senão acrescenta um item novo no fim.
func (s *Service) AddToCart(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart.Items {
		if item.Product.ID == product.ID {
			s.cart.Items[i].Quantity++
			s.recompute()
			log.Printf("Cart.AddToCart - Product %d quantity now %d", product.ID, s.cart.Items[i].Quantity)
			return
		}
	}
	s.cart.Items = append(s.cart.Items, models.CartItem{Product: product, Quantity: 1})
	s.recompute()
	log.Printf("Cart.AddToCart - Product %d added, cart has %d items", product.ID, len(s.cart.Items))
}

// RemoveFromCart remove o item do produto, se existir.
func (s *Service) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart.Items {
		if item.Product.ID == productID {
			s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
			break
		}
	}
	s.recompute()
}

// UpdateQuantity define a quantidade do item. Quantidade negativa é
// rejeitada (no-op); quantidade zero remove o item — é o caminho de exclusão
// via formulário. Chamadores que não querem remoção acidental devem limitar
// a entrada a >= 1.
func (s *Service) UpdateQuantity(productID, quantity int) {
	if quantity < 0 {
		log.Printf("Cart.UpdateQuantity - Rejecting negative quantity %d for product %d", quantity, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == productID {
			s.cart.Items[i].Quantity = quantity
		}
	}
	kept := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	s.cart.Items = kept
	s.recompute()
}

// ClearCart esvazia o carrinho e persiste o estado vazio.
func (s *Service) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = emptyCart()
	s.store.Save(StorageKey, s.cart)
}

// ProcessOrder finaliza o carrinho após um pedido. Não dá baixa em estoque;
// o ajuste de estoque está fora do escopo do carrinho e do checkout.
func (s *Service) ProcessOrder() {
	s.ClearCart()
}
