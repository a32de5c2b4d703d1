package models

import (
	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

// ProductForm representa os dados do formulário de produto do admin
type ProductForm struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}
