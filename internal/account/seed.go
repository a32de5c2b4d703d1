package account

import (
	"time"

	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
)

// seedUserOrders retorna o histórico de demonstração do usuário. O
// histórico não é persistido; recomeça daqui a cada execução.
func seedUserOrders() []models.Order {
	return []models.Order{{
		ID: 1,
		Items: []models.CartItem{{
			Product: models.Product{
				ID:          1,
				Name:        "Ração Premium",
				Description: "Ração premium",
				Price:       decimal.NewFromFloat(99.9),
				ImageURL:    "racao.png",
				Stock:       10,
				Category:    "racao",
			},
			Quantity: 2,
		}},
		Total:         decimal.NewFromFloat(199.8),
		Status:        models.OrderStatusDelivered,
		CustomerName:  "João Silva",
		CustomerEmail: "joao@email.com",
		CustomerPhone: "(11) 99999-9999",
		Address:       "Rua A, 123",
		PaymentMethod: "credit",
		CreatedAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}}
}
