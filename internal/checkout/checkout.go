package checkout

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vendafacil/internal/account"
	"vendafacil/internal/backoffice"
	"vendafacil/internal/cart"
	"vendafacil/internal/models"

	"github.com/shopspring/decimal"
)

// Erros de validação do checkout.
var (
	ErrEmptyCart       = errors.New("carrinho vazio")
	ErrMissingFields   = errors.New("preencha os campos obrigatórios")
	ErrPaymentDisabled = errors.New("forma de pagamento indisponível")
)

// Service executa a finalização de compra: calcula o frete, monta o pedido
// imutável e o despacha para o ledger e, conforme o estado da sessão, para o
// histórico do usuário ou para um novo registro de cliente.
type Service struct {
	cart    *cart.Service
	ledger  *backoffice.Ledger
	account *account.Service
}

// NewService cria um Service com as dependências injetadas.
func NewService(cartSvc *cart.Service, ledger *backoffice.Ledger, accountSvc *account.Service) *Service {
	return &Service{cart: cartSvc, ledger: ledger, account: accountSvc}
}

// Quote calcula frete e total para o subtotal dado. O frete é zero somente
// quando o subtotal é estritamente maior que o limite de frete grátis.
func (s *Service) Quote(subtotal decimal.Decimal) (shipping, total decimal.Decimal) {
	cfg := s.ledger.ShippingConfig()
	if subtotal.GreaterThan(cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	} else {
		shipping = cfg.DefaultShippingCost
	}
	return shipping, subtotal.Add(shipping)
}

// Result reúne o pedido registrado no ledger e o texto determinístico de
// confirmação de pagamento.
type Result struct {
	Order        models.Order `json:"order"`
	Confirmation string       `json:"confirmation"`
}

// formatAddress monta o endereço como uma única string a partir dos campos
// estruturados do formulário.
func formatAddress(form models.CheckoutForm) string {
	street := fmt.Sprintf("%s, %s", form.Address, form.Number)
	if form.Complement != "" {
		street += " - " + form.Complement
	}
	return fmt.Sprintf("%s, %s, %s/%s, CEP: %s",
		street, form.Neighborhood, form.City, form.State, form.CEP)
}

// PlaceOrder valida o formulário, cria o pedido com status pending e o
// despacha. O pedido sempre entra no ledger; com sessão ativa também entra
// no histórico do usuário (sequência de id própria, por timestamp), sem
// sessão um Customer é criado com os dados de contato. O carrinho é limpo ao
// final; o estoque não é alterado.
func (s *Service) PlaceOrder(form models.CheckoutForm) (Result, error) {
	snapshot := s.cart.Cart()
	if len(snapshot.Items) == 0 {
		return Result{}, ErrEmptyCart
	}
	if form.Name == "" || form.Email == "" || form.Phone == "" ||
		form.CEP == "" || form.Address == "" || form.City == "" {
		return Result{}, ErrMissingFields
	}

	method, ok := s.ledger.PaymentMethodByID(form.PaymentMethod)
	if !ok || !method.Enabled {
		return Result{}, ErrPaymentDisabled
	}

	shipping, total := s.Quote(snapshot.Total)
	log.Printf("Checkout.PlaceOrder - Subtotal %s, shipping %s, total %s",
		snapshot.Total, shipping, total)

	order := models.Order{
		Items:         snapshot.Items,
		Total:         total,
		Status:        models.OrderStatusPending,
		CustomerName:  form.Name,
		CustomerEmail: form.Email,
		CustomerPhone: form.Phone,
		Address:       formatAddress(form),
		PaymentMethod: form.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	registered := s.ledger.AddOrder(order)

	if _, logged := s.account.Current(); logged {
		historyOrder := order
		historyOrder.ID = int(time.Now().UnixMilli())
		s.account.AddUserOrder(historyOrder)
	} else {
		s.ledger.AddCustomer(models.Customer{
			Name:      form.Name,
			Email:     form.Email,
			Phone:     form.Phone,
			Address:   order.Address,
			Orders:    []models.Order{},
			CreatedAt: order.CreatedAt,
		})
	}

	confirmation := confirmationMessage(form.PaymentMethod, total)
	s.cart.ProcessOrder()

	log.Printf("Checkout.PlaceOrder - Order %d placed (%s)", registered.ID, form.PaymentMethod)
	return Result{Order: registered, Confirmation: confirmation}, nil
}

// confirmationMessage gera o texto de confirmação do pagamento. Dados
// fictícios e determinísticos; nenhum gateway é chamado.
func confirmationMessage(method string, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("Pedido realizado com sucesso!\n\n")

	switch method {
	case "credit", "debit":
		name := "de Crédito"
		if method == "debit" {
			name = "de Débito"
		}
		fmt.Fprintf(&b, "Pagamento: Cartão %s\n", name)
		b.WriteString("Cartão: **** **** **** 3456\n")
		b.WriteString("Status: Aprovado (Teste)")
	case "pix":
		b.WriteString("Pagamento: PIX\n")
		b.WriteString("Chave: teste@vendafacil.com\n")
		b.WriteString("Status: Aguardando pagamento (Teste)")
	case "boleto":
		due := time.Now().Add(3 * 24 * time.Hour)
		b.WriteString("Pagamento: Boleto Bancário\n")
		fmt.Fprintf(&b, "Vencimento: %s\n", due.Format("02/01/2006"))
		b.WriteString("Status: Gerado (Teste)")
	}

	fmt.Fprintf(&b, "\n\nTotal: R$ %s", total.StringFixed(2))
	return b.String()
}
