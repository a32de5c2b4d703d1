package models

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod representa uma forma de pagamento configurável no admin.
type PaymentMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ShippingRegion representa uma região nomeada com custo próprio. As regiões
// são modeladas e editáveis, mas o checkout aplica somente a regra global de
// limite/custo padrão.
type ShippingRegion struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// ShippingConfig representa a configuração de frete: acima do limite o frete
// é grátis (comparação estritamente maior), abaixo aplica-se o custo padrão.
type ShippingConfig struct {
	FreeShippingThreshold decimal.Decimal  `json:"freeShippingThreshold"`
	DefaultShippingCost   decimal.Decimal  `json:"defaultShippingCost"`
	Regions               []ShippingRegion `json:"regions"`
}

// StoreContact representa os dados de contato da loja.
type StoreContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// StoreHeader representa o estilo do cabeçalho da loja.
type StoreHeader struct {
	BackgroundImage string `json:"backgroundImage,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Height          int    `json:"height,omitempty"`
	Style           string `json:"style"` // gradient, solid, image
}

// StoreConfig representa a identidade visual da loja, persistida por cima
// dos padrões embutidos (merge raso no carregamento).
type StoreConfig struct {
	Name           string       `json:"name"`
	Logo           string       `json:"logo,omitempty"`
	PrimaryColor   string       `json:"primaryColor"`
	SecondaryColor string       `json:"secondaryColor"`
	Description    string       `json:"description"`
	Contact        StoreContact `json:"contact"`
	Header         *StoreHeader `json:"header,omitempty"`
}
