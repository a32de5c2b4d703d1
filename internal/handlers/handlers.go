package handlers

import (
	"log"
	"net/http"
	"strconv"

	"vendafacil/internal/account"
	"vendafacil/internal/backoffice"
	"vendafacil/internal/cart"
	"vendafacil/internal/catalog"
	"vendafacil/internal/checkout"
	"vendafacil/internal/images"
	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Credenciais do admin. Par único e fixo: é um substituto de demonstração,
// não uma fronteira de segurança.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// Handler gerencia as requisições HTTP da vitrine e do backoffice.
type Handler struct {
	store    *storage.Store
	catalog  *catalog.Catalog
	cart     *cart.Service
	ledger   *backoffice.Ledger
	account  *account.Service
	checkout *checkout.Service
	images   *images.Manager
}

// NewHandler cria um Handler com as dependências injetadas.
func NewHandler(store *storage.Store, cat *catalog.Catalog, cartSvc *cart.Service,
	ledger *backoffice.Ledger, accountSvc *account.Service,
	checkoutSvc *checkout.Service, imageMgr *images.Manager) *Handler {
	return &Handler{
		store:    store,
		catalog:  cat,
		cart:     cartSvc,
		ledger:   ledger,
		account:  accountSvc,
		checkout: checkoutSvc,
		images:   imageMgr,
	}
}

// AuthMiddleware protege as rotas do admin via cookie de sessão.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := c.Cookie("admin_session")
		if session == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Acesso restrito"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminLogin valida o par fixo de credenciais e abre a sessão do admin.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	if req.Username == AdminUsername && req.Password == AdminPassword {
		log.Printf("AdminLogin - Login successful for user: %s", req.Username)
		sessionID := uuid.New().String()
		c.SetCookie("admin_session", sessionID, 3600, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	log.Printf("AdminLogin - Login failed for user: %s", req.Username)
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Usuário ou senha inválidos"})
}

// AdminLogout encerra a sessão do admin.
func (h *Handler) AdminLogout(c *gin.Context) {
	c.SetCookie("admin_session", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListProducts retorna a vitrine com filtros e ordenação opcionais.
func (h *Handler) ListProducts(c *gin.Context) {
	opts := catalog.ListOptions{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Sort:     c.Query("sort"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil {
			opts.MinPrice = &min
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			opts.MaxPrice = &max
		}
	}
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.List(opts)})
}

// GetProduct retorna um produto pelo id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Id inválido"})
		return
	}
	product, ok := h.catalog.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "imageUrl": h.images.Resolve(product.ImageURL)})
}

// GetCart retorna o carrinho atual.
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": h.cart.Cart()})
}

// AddToCart adiciona uma unidade do produto ao carrinho.
func (h *Handler) AddToCart(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("AddToCart - JSON bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	product, ok := h.catalog.GetByID(req.ProductID)
	if !ok {
		log.Printf("AddToCart - Product not found: %d", req.ProductID)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado"})
		return
	}

	h.cart.AddToCart(product)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.Cart()})
}

// UpdateCartItem define a quantidade de um item do carrinho. Quantidade
// zero remove o item; negativa é ignorada pelo motor do carrinho.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	h.cart.UpdateQuantity(req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.Cart()})
}

// RemoveFromCart remove um item do carrinho.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	h.cart.RemoveFromCart(req.ProductID)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.Cart()})
}

// ClearCart esvazia o carrinho.
func (h *Handler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckoutQuote retorna subtotal, frete e total do carrinho atual.
func (h *Handler) CheckoutQuote(c *gin.Context) {
	snapshot := h.cart.Cart()
	shipping, total := h.checkout.Quote(snapshot.Total)
	c.JSON(http.StatusOK, gin.H{
		"subtotal": snapshot.Total,
		"shipping": shipping,
		"total":    total,
	})
}

// HandleCheckout finaliza a compra com os dados do formulário.
func (h *Handler) HandleCheckout(c *gin.Context) {
	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		log.Printf("HandleCheckout - Form bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	result, err := h.checkout.PlaceOrder(form)
	if err != nil {
		log.Printf("HandleCheckout - Error placing order: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": result.Order, "confirmation": result.Confirmation})
}

// Register cria uma conta de usuário e abre a sessão.
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	user, err := h.account.Register(req.Name, req.Email, req.Phone, req.Address, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	user.PasswordHash = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Login abre a sessão do usuário.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	user, err := h.account.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}
	user.PasswordHash = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Logout encerra a sessão do usuário.
func (h *Handler) Logout(c *gin.Context) {
	h.account.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser retorna o usuário com sessão ativa.
func (h *Handler) CurrentUser(c *gin.Context) {
	user, ok := h.account.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	user.PasswordHash = ""
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UserOrders retorna o histórico de pedidos do usuário.
func (h *Handler) UserOrders(c *gin.Context) {
	if _, ok := h.account.Current(); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Faça login para ver seus pedidos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": h.account.UserOrders()})
}

// GetWishlist retorna a lista de desejos.
func (h *Handler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wishlist": h.account.Wishlist()})
}

// AddToWishlist acrescenta um produto à lista de desejos.
func (h *Handler) AddToWishlist(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}
	product, ok := h.catalog.GetByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado"})
		return
	}
	h.account.AddToWishlist(product)
	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": h.account.Wishlist()})
}

// RemoveFromWishlist remove um produto da lista de desejos.
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Id inválido"})
		return
	}
	h.account.RemoveFromWishlist(id)
	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": h.account.Wishlist()})
}

// GetStoreConfig retorna a identidade visual da loja com o merge sobre os
// padrões já aplicado.
func (h *Handler) GetStoreConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"config": backoffice.LoadStoreConfig(h.store)})
}
