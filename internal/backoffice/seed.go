package backoffice

import (
	"time"

	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethods retorna as formas de pagamento iniciais.
func DefaultPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: "credit", Name: "Cartão de Crédito", Enabled: true},
		{ID: "debit", Name: "Cartão de Débito", Enabled: true},
		{ID: "pix", Name: "PIX", Enabled: true},
		{ID: "boleto", Name: "Boleto", Enabled: false},
	}
}

// DefaultShippingConfig retorna a configuração de frete inicial.
func DefaultShippingConfig() models.ShippingConfig {
	return models.ShippingConfig{
		FreeShippingThreshold: decimal.NewFromInt(100),
		DefaultShippingCost:   decimal.NewFromInt(15),
		Regions: []models.ShippingRegion{
			{Name: "São Paulo - Capital", Cost: decimal.NewFromInt(10)},
			{Name: "São Paulo - Interior", Cost: decimal.NewFromInt(15)},
			{Name: "Rio de Janeiro", Cost: decimal.NewFromInt(20)},
		},
	}
}

// seedOrders retorna os pedidos de demonstração usados quando não há nada
// persistido.
func seedOrders() []models.Order {
	return []models.Order{
		{
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
		},
		{
			ID: 2,
			Items: []models.CartItem{{
				Product: models.Product{
					ID:          2,
					Name:        "Brinquedo Corda",
					Description: "Brinquedo",
					Price:       decimal.NewFromFloat(25.9),
					ImageURL:    "brinquedo.png",
					Stock:       15,
					Category:    "brinquedos",
				},
				Quantity: 1,
			}},
			Total:         decimal.NewFromFloat(25.9),
			Status:        models.OrderStatusProcessing,
			CustomerName:  "Maria Santos",
			CustomerEmail: "maria@email.com",
			CustomerPhone: "(11) 88888-8888",
			Address:       "Rua B, 456",
			PaymentMethod: "pix",
			CreatedAt:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

// seedCustomers retorna os clientes de demonstração.
func seedCustomers() []models.Customer {
	orders := seedOrders()
	return []models.Customer{
		{
			ID:        1,
			Name:      "João Silva",
			Email:     "joao@email.com",
			Phone:     "(11) 99999-9999",
			Address:   "Rua A, 123",
			Orders:    []models.Order{orders[0]},
			CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}
