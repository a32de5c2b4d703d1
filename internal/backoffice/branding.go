package backoffice

import (
	"encoding/json"
	"log"

	"vendafacil/internal/models"
	"vendafacil/internal/storage"
)

// StoreConfigKey é a chave da identidade visual da loja.
const StoreConfigKey = "store_config"

// DefaultStoreConfig retorna a identidade visual padrão, usada como base do
// merge com a configuração personalizada.
func DefaultStoreConfig() models.StoreConfig {
	return models.StoreConfig{
		Name:           "VendaFácil",
		Logo:           "/vendafacil/assets/images/VendaFacil.png",
		PrimaryColor:   "#1976d2",
		SecondaryColor: "#dc004e",
		Description:    "Tecnologia Livre para um Comércio Forte",
		Contact: models.StoreContact{
			Email:   "contato@vendafacil.com",
			Phone:   "(11) 99999-9999",
			Address: "São Paulo, SP",
		},
		Header: &models.StoreHeader{
			Style:           "image",
			BackgroundImage: "/vendafacil/assets/images/VendaFacil.png",
			BackgroundColor: "#1976d2",
			TextColor:       "#ffffff",
			Height:          160,
		},
	}
}

// storeConfigPatch espelha os campos de primeiro nível do StoreConfig para
// o merge raso: campos presentes substituem o valor inteiro correspondente.
type storeConfigPatch struct {
	Name           *string              `json:"name"`
	Logo           *string              `json:"logo"`
	PrimaryColor   *string              `json:"primaryColor"`
	SecondaryColor *string              `json:"secondaryColor"`
	Description    *string              `json:"description"`
	Contact        *models.StoreContact `json:"contact"`
	Header         *models.StoreHeader  `json:"header"`
}

func applyPatch(cfg models.StoreConfig, patch storeConfigPatch) models.StoreConfig {
	if patch.Name != nil {
		cfg.Name = *patch.Name
	}
	if patch.Logo != nil {
		cfg.Logo = *patch.Logo
	}
	if patch.PrimaryColor != nil {
		cfg.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		cfg.SecondaryColor = *patch.SecondaryColor
	}
	if patch.Description != nil {
		cfg.Description = *patch.Description
	}
	if patch.Contact != nil {
		cfg.Contact = *patch.Contact
	}
	if patch.Header != nil {
		cfg.Header = patch.Header
	}
	return cfg
}

// LoadStoreConfig retorna a configuração personalizada aplicada por cima
// dos padrões embutidos. Dados persistidos ilegíveis caem nos padrões.
func LoadStoreConfig(store *storage.Store) models.StoreConfig {
	cfg := DefaultStoreConfig()

	var raw json.RawMessage
	if !store.Load(StoreConfigKey, &raw) {
		return cfg
	}
	var patch storeConfigPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		log.Printf("Backoffice.LoadStoreConfig - Invalid store config, using defaults: %v", err)
		return cfg
	}
	return applyPatch(cfg, patch)
}

// SaveStoreConfig aplica a atualização parcial sobre a configuração vigente
// e persiste o resultado completo.
func SaveStoreConfig(store *storage.Store, raw json.RawMessage) models.StoreConfig {
	cfg := LoadStoreConfig(store)

	var patch storeConfigPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		log.Printf("Backoffice.SaveStoreConfig - Invalid store config update: %v", err)
		return cfg
	}
	cfg = applyPatch(cfg, patch)
	store.Save(StoreConfigKey, cfg)
	return cfg
}
