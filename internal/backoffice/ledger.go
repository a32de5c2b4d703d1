package backoffice

import (
	"log"
	"sync"

	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"github.com/shopspring/decimal"
)

// Chaves de persistência do backoffice.
const (
	OrdersKey    = "backoffice_orders"
	CustomersKey = "backoffice_customers"
)

// Ledger é o registro autoritativo do backoffice: listas de pedidos e
// clientes espelhadas no Store injetado, mais as configurações de pagamento
// e frete editáveis no admin. Independe de qualquer sessão de usuário.
type Ledger struct {
	mu             sync.RWMutex
	store          *storage.Store
	orders         []models.Order
	customers      []models.Customer
	paymentMethods []models.PaymentMethod
	shipping       models.ShippingConfig
}

// NewLedger carrega pedidos e clientes persistidos; na ausência de dados
// salvos usa os registros de demonstração. Formas de pagamento e frete
// começam sempre nos padrões.
func NewLedger(store *storage.Store) *Ledger {
	l := &Ledger{
		store:          store,
		paymentMethods: DefaultPaymentMethods(),
		shipping:       DefaultShippingConfig(),
	}
	if !store.Load(OrdersKey, &l.orders) {
		l.orders = seedOrders()
	}
	if !store.Load(CustomersKey, &l.customers) {
		l.customers = seedCustomers()
	}
	return l
}

// AddOrder registra o pedido com id = maior id existente + 1 (1 para
// registro vazio), persiste a lista e retorna o pedido com id atribuído.
func (l *Ledger) AddOrder(order models.Order) models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	maxID := 0
	for _, o := range l.orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	order.ID = maxID + 1
	l.orders = append(l.orders, order)
	l.store.Save(OrdersKey, l.orders)
	log.Printf("Ledger.AddOrder - Order %d registered, total %s", order.ID, order.Total)
	return order
}

// UpdateOrderStatus sobrescreve o status do pedido. Qualquer status é
// alcançável a partir de qualquer outro; id inexistente é um no-op.
func (l *Ledger) UpdateOrderStatus(id int, status string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			l.store.Save(OrdersKey, l.orders)
			return
		}
	}
	log.Printf("Ledger.UpdateOrderStatus - Order %d not found, ignoring", id)
}

// Orders retorna uma cópia da lista de pedidos.
func (l *Ledger) Orders() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	orders := make([]models.Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// AddCustomer registra o cliente com id atribuído pelo ledger e retorna o
// registro criado.
func (l *Ledger) AddCustomer(customer models.Customer) models.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()

	maxID := 0
	for _, c := range l.customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	customer.ID = maxID + 1
	l.customers = append(l.customers, customer)
	l.store.Save(CustomersKey, l.customers)
	return customer
}

// Customers retorna uma cópia da lista de clientes.
func (l *Ledger) Customers() []models.Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()

	customers := make([]models.Customer, len(l.customers))
	copy(customers, l.customers)
	return customers
}

// PaymentMethodPatch descreve uma atualização parcial de forma de
// pagamento.
type PaymentMethodPatch struct {
	Name    *string
	Enabled *bool
}

// PaymentMethods retorna uma cópia das formas de pagamento.
func (l *Ledger) PaymentMethods() []models.PaymentMethod {
	l.mu.RLock()
	defer l.mu.RUnlock()

	methods := make([]models.PaymentMethod, len(l.paymentMethods))
	copy(methods, l.paymentMethods)
	return methods
}

// PaymentMethodByID retorna a forma de pagamento pelo id, ou false.
func (l *Ledger) PaymentMethodByID(id string) (models.PaymentMethod, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, m := range l.paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return models.PaymentMethod{}, false
}

// UpdatePaymentMethod aplica uma atualização parcial; id desconhecido é um
// no-op.
func (l *Ledger) UpdatePaymentMethod(id string, patch PaymentMethodPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.paymentMethods {
		if l.paymentMethods[i].ID != id {
			continue
		}
		if patch.Name != nil {
			l.paymentMethods[i].Name = *patch.Name
		}
		if patch.Enabled != nil {
			l.paymentMethods[i].Enabled = *patch.Enabled
		}
		return
	}
}

// ShippingPatch descreve uma atualização parcial da configuração de frete.
type ShippingPatch struct {
	FreeShippingThreshold *decimal.Decimal
	DefaultShippingCost   *decimal.Decimal
	Regions               *[]models.ShippingRegion
}

// ShippingConfig retorna a configuração de frete vigente.
func (l *Ledger) ShippingConfig() models.ShippingConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cfg := l.shipping
	cfg.Regions = make([]models.ShippingRegion, len(l.shipping.Regions))
	copy(cfg.Regions, l.shipping.Regions)
	return cfg
}

// UpdateShippingConfig aplica uma atualização parcial do frete.
func (l *Ledger) UpdateShippingConfig(patch ShippingPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if patch.FreeShippingThreshold != nil {
		l.shipping.FreeShippingThreshold = *patch.FreeShippingThreshold
	}
	if patch.DefaultShippingCost != nil {
		l.shipping.DefaultShippingCost = *patch.DefaultShippingCost
	}
	if patch.Regions != nil {
		l.shipping.Regions = *patch.Regions
	}
}
