package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"vendafacil/internal/backoffice"
	"vendafacil/internal/catalog"
	"vendafacil/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminDashboard retorna os agregados do painel, recalculados por varredura
// a cada chamada.
func (h *Handler) AdminDashboard(c *gin.Context) {
	products := h.catalog.All()
	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":   h.ledger.TotalRevenue(),
		"totalOrders":    h.ledger.OrderCount(),
		"totalCustomers": h.ledger.CustomerCount(),
		"lowStock":       h.ledger.LowStock(products),
		"bestSellers":    h.ledger.BestSellers(products),
	})
}

// AddProduct cria um produto no catálogo. Preço e estoque negativos são
// recusados aqui, na borda; o catálogo em si aceita qualquer valor.
func (h *Handler) AddProduct(c *gin.Context) {
	var form models.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados do produto incompletos ou inválidos"})
		return
	}
	if form.Price.IsNegative() || form.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Preço e estoque não podem ser negativos"})
		return
	}

	product := h.catalog.Add(models.Product{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		ImageURL:    form.ImageURL,
		Stock:       form.Stock,
		Category:    form.Category,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// productPatch espelha os campos editáveis do produto para atualização
// parcial.
type productPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
}

// UpdateProduct aplica uma atualização parcial a um produto.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Id inválido"})
		return
	}

	var patch productPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Preço não pode ser negativo"})
		return
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Estoque não pode ser negativo"})
		return
	}

	h.catalog.Update(id, catalog.Patch{
		Name:        patch.Name,
		Description: patch.Description,
		Price:       patch.Price,
		ImageURL:    patch.ImageURL,
		Stock:       patch.Stock,
		Category:    patch.Category,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteProduct remove um produto do catálogo. Pedidos históricos guardam
// cópias e não são tocados.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Id inválido"})
		return
	}
	h.catalog.Delete(id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetProductStock define o estoque de um produto.
func (h *Handler) SetProductStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Id inválido"})
		return
	}

	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Estoque inválido"})
		return
	}

	h.catalog.SetStock(id, req.Stock)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminGetOrders retorna todos os pedidos do ledger.
func (h *Handler) AdminGetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.ledger.Orders()})
}

// AdminUpdateOrderStatus sobrescreve o status de um pedido. Status fora do
// conjunto fechado é recusado; id inexistente é um no-op no ledger.
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Id inválido"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status inválido"})
		return
	}

	h.ledger.UpdateOrderStatus(id, req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminGetCustomers retorna todos os clientes do ledger.
func (h *Handler) AdminGetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": h.ledger.Customers()})
}

// GetShippingConfig retorna a configuração de frete.
func (h *Handler) GetShippingConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shipping": h.ledger.ShippingConfig()})
}

// UpdateShippingConfig aplica uma atualização parcial do frete.
func (h *Handler) UpdateShippingConfig(c *gin.Context) {
	var req struct {
		FreeShippingThreshold *decimal.Decimal         `json:"freeShippingThreshold"`
		DefaultShippingCost   *decimal.Decimal         `json:"defaultShippingCost"`
		Regions               *[]models.ShippingRegion `json:"regions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}
	if req.FreeShippingThreshold != nil && req.FreeShippingThreshold.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Limite de frete grátis não pode ser negativo"})
		return
	}
	if req.DefaultShippingCost != nil && req.DefaultShippingCost.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Custo de frete não pode ser negativo"})
		return
	}

	h.ledger.UpdateShippingConfig(backoffice.ShippingPatch{
		FreeShippingThreshold: req.FreeShippingThreshold,
		DefaultShippingCost:   req.DefaultShippingCost,
		Regions:               req.Regions,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "shipping": h.ledger.ShippingConfig()})
}

// GetPaymentMethods retorna as formas de pagamento.
func (h *Handler) GetPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"paymentMethods": h.ledger.PaymentMethods()})
}

// UpdatePaymentMethod aplica uma atualização parcial a uma forma de
// pagamento (nome ou habilitação).
func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	var req struct {
		Name    *string `json:"name"`
		Enabled *bool   `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	h.ledger.UpdatePaymentMethod(c.Param("id"), backoffice.PaymentMethodPatch{
		Name:    req.Name,
		Enabled: req.Enabled,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "paymentMethods": h.ledger.PaymentMethods()})
}

// UpdateStoreConfig aplica uma atualização parcial da identidade visual da
// loja e retorna a configuração resultante.
func (h *Handler) UpdateStoreConfig(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}
	cfg := backoffice.SaveStoreConfig(h.store, raw)
	c.JSON(http.StatusOK, gin.H{"success": true, "config": cfg})
}

// UploadProductImage armazena a imagem (data-URL) sob um nome gerado e o
// retorna para uso como referência de produto.
func (h *Handler) UploadProductImage(c *gin.Context) {
	var req struct {
		Data     string `json:"data" binding:"required"`
		FileName string `json:"fileName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	name := h.images.Save(req.Data, req.FileName)
	log.Printf("UploadProductImage - Image stored as %s", name)
	c.JSON(http.StatusOK, gin.H{"success": true, "fileName": name})
}

// DeleteProductImage remove uma imagem enviada.
func (h *Handler) DeleteProductImage(c *gin.Context) {
	h.images.Delete(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResolveImage resolve uma referência opaca de imagem na ordem: imagem
// local, data-URL como está, caminho de assets estáticos.
func (h *Handler) ResolveImage(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Referência vazia"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.images.Resolve(ref)})
}
