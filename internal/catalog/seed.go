package catalog

import (
	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultProducts retorna os produtos de fábrica da vitrine de demonstração.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Adubo NPK 10.10.10 - 1kg",
			Description: "Fertilizante completo NPK para nutrição balanceada das plantas.",
			Price:       decimal.NewFromFloat(25.90),
			ImageURL:    "adubo_NPK 10.10.10-1kg.jpg",
			Stock:       15,
			Category:    "fertilizantes",
		},
		{
			ID:          2,
			Name:        "Rolo de Arame Farpado 100m",
			Description: "Arame farpado galvanizado para cercamento rural, 100 metros.",
			Price:       decimal.NewFromFloat(189.90),
			ImageURL:    "arame_Rolo de Arame Farpado, 100 Metros, Aço Galvanizado.jpg",
			Stock:       8,
			Category:    "cercamento",
		},
		{
			ID:          3,
			Name:        "Esterco Bovino Curtido 15kg",
			Description: "Esterco bovino curtido para enriquecimento do solo, 15kg.",
			Price:       decimal.NewFromFloat(32.50),
			ImageURL:    "esterco_Esterco Bovino Curtido 15kg Solo Fértil Marcon.jpg",
			Stock:       20,
			Category:    "fertilizantes",
		},
		{
			ID:          4,
			Name:        "Fertilizante NPK Concentrado 120ml",
			Description: "Fertilizante líquido concentrado NPK 10-10-10 para plantas.",
			Price:       decimal.NewFromFloat(18.90),
			ImageURL:    "fertilizante_Fertilizante NPK 10-10-10 Concentrado - 120ml.jpg",
			Stock:       25,
			Category:    "fertilizantes",
		},
		{
			ID:          5,
			Name:        "Vaso Cachepô Decorativo 15x13cm",
			Description: "Vaso decorativo redondo para plantas, 15x13cm.",
			Price:       decimal.NewFromFloat(24.90),
			ImageURL:    "vaso_Vaso Cachepô Redondo Decorativo 15x13cm.jpg",
			Stock:       12,
			Category:    "vasos",
		},
		{
			ID:          6,
			Name:        "Ração para Cachorros",
			Description: "Ração nutritiva para cães de todas as idades.",
			Price:       decimal.NewFromFloat(99.90),
			ImageURL:    "racao_cachorro.png",
			Stock:       10,
			Category:    "racoes",
		},
		{
			ID:          7,
			Name:        "Ração Golden",
			Description: "Ração premium para cães com ingredientes selecionados.",
			Price:       decimal.NewFromFloat(129.90),
			ImageURL:    "racao_golden.png",
			Stock:       5,
			Category:    "racoes",
		},
		{
			ID:          8,
			Name:        "Ração Gourmet",
			Description: "Ração gourmet para cães exigentes.",
			Price:       decimal.NewFromFloat(149.90),
			ImageURL:    "racao_gourmet.png",
			Stock:       8,
			Category:    "racoes",
		},
	}
}
