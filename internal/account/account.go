package account

import (
	"errors"
	"log"
	"sync"
	"time"

	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// Chaves de persistência da conta do usuário.
const (
	UsersKey       = "users"
	CurrentUserKey = "current_user"
	WishlistKey    = "user_wishlist"
)

// Service gerencia o usuário com sessão, a lista de desejos e o histórico de
// pedidos do usuário. O usuário de sessão é distinto do Customer do ledger:
// um checkout com sessão alimenta o histórico daqui, um checkout anônimo
// cria um Customer no backoffice.
type Service struct {
	mu       sync.RWMutex
	store    *storage.Store
	users    []models.User
	current  *models.User
	wishlist []models.Product
	orders   []models.Order
}

// NewService carrega usuários, sessão corrente e lista de desejos do Store.
func NewService(store *storage.Store) *Service {
	s := &Service{store: store}
	if !store.Load(UsersKey, &s.users) {
		s.users = seedUsers()
		store.Save(UsersKey, s.users)
	}
	var current models.User
	if store.Load(CurrentUserKey, &current) {
		s.current = &current
	}
	if !store.Load(WishlistKey, &s.wishlist) {
		s.wishlist = []models.Product{}
	}
	s.orders = seedUserOrders()
	return s
}

// seedUsers retorna o usuário de demonstração (senha "123456").
func seedUsers() []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Account.seedUsers - Error hashing demo password: %v", err)
	}
	return []models.User{{
		ID:           1,
		Name:         "João Silva",
		Email:        "joao@email.com",
		Phone:        "(11) 99999-9999",
		Address:      "Rua A, 123",
		PasswordHash: string(hash),
		CreatedAt:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}}
}

// Register cria um usuário com a senha hasheada e abre a sessão para ele.
func (s *Service) Register(name, email, phone, address, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, errors.New("e-mail já cadastrado")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	maxID := 0
	for _, u := range s.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user := models.User{
		ID:           maxID + 1,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.users = append(s.users, user)
	s.store.Save(UsersKey, s.users)

	s.current = &user
	s.store.Save(CurrentUserKey, user)
	log.Printf("Account.Register - User %d (%s) registered", user.ID, user.Email)
	return user, nil
}

// Login valida as credenciais e abre a sessão. A senha é comparada contra o
// hash bcrypt armazenado.
func (s *Service) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		user := u
		s.current = &user
		s.store.Save(CurrentUserKey, user)
		log.Printf("Account.Login - User %d (%s) logged in", user.ID, user.Email)
		return user, nil
	}
	return models.User{}, errors.New("e-mail ou senha inválidos")
}

// Logout encerra a sessão corrente.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.store.Remove(CurrentUserKey)
}

// Current retorna o usuário com sessão ativa, se houver.
func (s *Service) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// AddToWishlist acrescenta o produto à lista de desejos e persiste.
func (s *Service) AddToWishlist(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist = append(s.wishlist, product)
	s.store.Save(WishlistKey, s.wishlist)
}

// RemoveFromWishlist remove o produto da lista de desejos e persiste.
func (s *Service) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.wishlist[:0]
	for _, p := range s.wishlist {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.wishlist = kept
	s.store.Save(WishlistKey, s.wishlist)
}

// Wishlist retorna uma cópia da lista de desejos.
func (s *Service) Wishlist() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wishlist := make([]models.Product, len(s.wishlist))
	copy(wishlist, s.wishlist)
	return wishlist
}

// AddUserOrder acrescenta um pedido ao histórico do usuário. O id do
// histórico vem de uma sequência própria baseada em timestamp, independente
// da sequência do ledger.
func (s *Service) AddUserOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
}

// UserOrders retorna uma cópia do histórico de pedidos do usuário.
func (s *Service) UserOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}
