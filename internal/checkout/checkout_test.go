package checkout

import (
	"strings"
	"testing"

	"vendafacil/internal/account"
	"vendafacil/internal/backoffice"
	"vendafacil/internal/cart"
	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *storage.Store
	cart    *cart.Service
	ledger  *backoffice.Ledger
	account *account.Service
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewStore(t.TempDir())
	store.Save(backoffice.OrdersKey, []models.Order{})
	store.Save(backoffice.CustomersKey, []models.Customer{})

	cartSvc := cart.NewService(store)
	ledger := backoffice.NewLedger(store)
	accountSvc := account.NewService(store)
	return &fixture{
		store:   store,
		cart:    cartSvc,
		ledger:  ledger,
		account: accountSvc,
		svc:     NewService(cartSvc, ledger, accountSvc),
	}
}

func validForm() models.CheckoutForm {
	return models.CheckoutForm{
		Name:          "Maria Santos",
		Email:         "maria@email.com",
		Phone:         "(11) 88888-8888",
		CEP:           "01001-000",
		Address:       "Rua B",
		Number:        "456",
		Neighborhood:  "Centro",
		City:          "São Paulo",
		State:         "SP",
		PaymentMethod: "pix",
	}
}

func product(id int, price float64) models.Product {
	return models.Product{ID: id, Name: "Produto", Price: decimal.NewFromFloat(price), Stock: 10}
}

func TestQuoteShippingBoundaryIsStrict(t *testing.T) {
	f := newFixture(t)

	// Exatamente no limite ainda paga frete
	shipping, total := f.svc.Quote(decimal.NewFromInt(100))
	assert.True(t, shipping.Equal(decimal.NewFromInt(15)))
	assert.True(t, total.Equal(decimal.NewFromInt(115)))

	// Um centavo acima do limite libera o frete
	shipping, total = f.svc.Quote(decimal.NewFromFloat(100.01))
	assert.True(t, shipping.IsZero())
	assert.True(t, total.Equal(decimal.NewFromFloat(100.01)))
}

func TestPlaceOrderScenario(t *testing.T) {
	f := newFixture(t)
	f.cart.AddToCart(product(1, 50))
	f.cart.AddToCart(product(1, 50))

	result, err := f.svc.PlaceOrder(validForm())
	require.NoError(t, err)

	assert.True(t, result.Order.Total.Equal(decimal.NewFromInt(115)),
		"subtotal 100 + frete 15, got %s", result.Order.Total)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	assert.Equal(t, 1, result.Order.ID)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, 2, result.Order.Items[0].Quantity)

	// Carrinho limpo após o despacho
	assert.Empty(t, f.cart.Cart().Items)
}

func TestPlaceOrderAssemblesAddress(t *testing.T) {
	f := newFixture(t)
	f.cart.AddToCart(product(1, 10))

	form := validForm()
	form.Complement = "Apto 12"
	result, err := f.svc.PlaceOrder(form)
	require.NoError(t, err)

	assert.Equal(t, "Rua B, 456 - Apto 12, Centro, São Paulo/SP, CEP: 01001-000", result.Order.Address)
}

func TestPlaceOrderGuestCreatesCustomer(t *testing.T) {
	f := newFixture(t)
	f.cart.AddToCart(product(1, 10))

	_, err := f.svc.PlaceOrder(validForm())
	require.NoError(t, err)

	customers := f.ledger.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, "Maria Santos", customers[0].Name)
	assert.Empty(t, customers[0].Orders)

	// O pedido entra no ledger independentemente da sessão
	assert.Equal(t, 1, f.ledger.OrderCount())
}

func TestPlaceOrderLoggedUserGoesToHistory(t *testing.T) {
	f := newFixture(t)
	_, err := f.account.Login("joao@email.com", "123456")
	require.NoError(t, err)

	f.cart.AddToCart(product(1, 10))
	historyBefore := len(f.account.UserOrders())

	result, err := f.svc.PlaceOrder(validForm())
	require.NoError(t, err)

	// Sem sessão anônima: nenhum cliente novo
	assert.Empty(t, f.ledger.Customers())
	assert.Equal(t, 1, f.ledger.OrderCount())

	history := f.account.UserOrders()
	require.Len(t, history, historyBefore+1)

	// Sequências de id independentes: o histórico usa timestamp
	last := history[len(history)-1]
	assert.NotEqual(t, result.Order.ID, last.ID)
	assert.Greater(t, last.ID, 1000000)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PlaceOrder(validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderMissingRequiredFields(t *testing.T) {
	f := newFixture(t)
	f.cart.AddToCart(product(1, 10))

	required := []func(*models.CheckoutForm){
		func(f *models.CheckoutForm) { f.Name = "" },
		func(f *models.CheckoutForm) { f.Email = "" },
		func(f *models.CheckoutForm) { f.Phone = "" },
		func(f *models.CheckoutForm) { f.CEP = "" },
		func(f *models.CheckoutForm) { f.Address = "" },
		func(f *models.CheckoutForm) { f.City = "" },
	}
	for _, clear := range required {
		form := validForm()
		clear(&form)
		_, err := f.svc.PlaceOrder(form)
		assert.ErrorIs(t, err, ErrMissingFields)
	}

	// Campos opcionais vazios não bloqueiam
	form := validForm()
	form.Number = ""
	form.Complement = ""
	form.Neighborhood = ""
	form.State = ""
	_, err := f.svc.PlaceOrder(form)
	assert.NoError(t, err)
}

func TestPlaceOrderRejectsDisabledPaymentMethod(t *testing.T) {
	f := newFixture(t)
	f.cart.AddToCart(product(1, 10))

	form := validForm()
	form.PaymentMethod = "boleto" // desabilitado por padrão
	_, err := f.svc.PlaceOrder(form)
	assert.ErrorIs(t, err, ErrPaymentDisabled)

	form.PaymentMethod = "cheque" // inexistente
	_, err = f.svc.PlaceOrder(form)
	assert.ErrorIs(t, err, ErrPaymentDisabled)

	// O carrinho permanece intacto após a recusa
	assert.Len(t, f.cart.Cart().Items, 1)
}

func TestConfirmationMessages(t *testing.T) {
	total := decimal.NewFromFloat(115)

	credit := confirmationMessage("credit", total)
	assert.Contains(t, credit, "Cartão de Crédito")
	assert.Contains(t, credit, "**** **** **** 3456")
	assert.Contains(t, credit, "R$ 115.00")

	pix := confirmationMessage("pix", total)
	assert.Contains(t, pix, "Chave: teste@vendafacil.com")

	boleto := confirmationMessage("boleto", total)
	assert.Contains(t, boleto, "Boleto Bancário")
	assert.True(t, strings.HasPrefix(boleto, "Pedido realizado com sucesso!"))
}
