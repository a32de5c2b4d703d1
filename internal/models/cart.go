package models

import (
	"github.com/shopspring/decimal"
)

// CartItem representa um item do carrinho: uma cópia do produto no momento
// da adição mais a quantidade. Quantity é sempre >= 1; um item que chega a
// zero é removido, nunca armazenado.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart representa o carrinho de compras. Total é derivado dos itens e
// recalculado a cada mutação; nunca é definido de forma independente.
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Subtotal retorna a soma de preço x quantidade de um item.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
