package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um pedido. Qualquer status é alcançável a partir de
// qualquer outro; não há grafo de transições.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus verifica se o status pertence ao conjunto fechado.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa um pedido. Imutável depois de criado, exceto o Status,
// que é alterado por ação explícita do admin. Os itens são cópias por valor
// do produto no momento da compra, imunes a edições posteriores do catálogo.
type Order struct {
	ID            int             `json:"id"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Customer representa um cliente criado pelo checkout sem sessão ativa.
type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Orders    []Order   `json:"orders"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckoutForm representa os dados do formulário de finalização de compra.
// Nome, e-mail, telefone, CEP, endereço e cidade são obrigatórios; os demais
// campos são opcionais.
type CheckoutForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CEP           string `json:"cep"`
	Address       string `json:"address"`
	Number        string `json:"number"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	PaymentMethod string `json:"paymentMethod"`
}
