package main

import (
	"log"
	"net/http"

	"vendafacil/internal/account"
	"vendafacil/internal/backoffice"
	"vendafacil/internal/cart"
	"vendafacil/internal/catalog"
	"vendafacil/internal/checkout"
	"vendafacil/internal/config"
	"vendafacil/internal/handlers"
	"vendafacil/internal/images"
	"vendafacil/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	store := storage.NewStore(cfg.DataDir)
	cat := catalog.NewSeeded()
	cartSvc := cart.NewService(store)
	ledger := backoffice.NewLedger(store)
	accountSvc := account.NewService(store)
	checkoutSvc := checkout.NewService(cartSvc, ledger, accountSvc)
	imageMgr := images.NewManager(store)

	h := handlers.NewHandler(store, cat, cartSvc, ledger, accountSvc, checkoutSvc, imageMgr)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Vitrine
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/store-config", h.GetStoreConfig)
	r.GET("/images/resolve", h.ResolveImage)

	// Carrinho
	r.GET("/cart", h.GetCart)
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCartItem)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.POST("/cart/clear", h.ClearCart)

	// Checkout
	r.GET("/checkout/quote", h.CheckoutQuote)
	r.POST("/checkout", h.HandleCheckout)

	// Conta do usuário
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/account", h.CurrentUser)
	r.GET("/account/orders", h.UserOrders)
	r.GET("/wishlist", h.GetWishlist)
	r.POST("/wishlist", h.AddToWishlist)
	r.DELETE("/wishlist/:id", h.RemoveFromWishlist)

	// Autenticação do admin (sem proteção)
	r.POST("/admin/login", h.AdminLogin)
	r.POST("/admin/logout", h.AdminLogout)

	// Painel do admin (protegido)
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.GET("/dashboard", h.AdminDashboard)
		admin.POST("/products", h.AddProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		admin.PUT("/products/:id/stock", h.SetProductStock)
		admin.GET("/orders", h.AdminGetOrders)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.GET("/customers", h.AdminGetCustomers)
		admin.GET("/settings/shipping", h.GetShippingConfig)
		admin.PUT("/settings/shipping", h.UpdateShippingConfig)
		admin.GET("/settings/payment-methods", h.GetPaymentMethods)
		admin.PUT("/settings/payment-methods/:id", h.UpdatePaymentMethod)
		admin.GET("/settings/store", h.GetStoreConfig)
		admin.PUT("/settings/store", h.UpdateStoreConfig)
		admin.POST("/images", h.UploadProductImage)
		admin.DELETE("/images/:name", h.DeleteProductImage)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("VendaFácil - Server listening on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
