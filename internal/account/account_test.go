package account

import (
	"testing"

	"vendafacil/internal/models"
	"vendafacil/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWithSeededUser(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))

	user, err := svc.Login("joao@email.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", user.Name)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))

	_, err := svc.Login("joao@email.com", "errada")
	assert.Error(t, err)

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestRegisterHashesPasswordAndOpensSession(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	svc := NewService(store)

	user, err := svc.Register("Maria", "maria@email.com", "(11) 1111-1111", "Rua C, 1", "segredo")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo", user.PasswordHash)
	assert.Equal(t, 2, user.ID)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "maria@email.com", current.Email)

	// Outro serviço sobre o mesmo store enxerga o usuário persistido
	again := NewService(store)
	_, err = again.Login("maria@email.com", "segredo")
	assert.NoError(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))

	_, err := svc.Register("Outro João", "joao@email.com", "", "", "x")
	assert.Error(t, err)
}

func TestLogoutClearsSession(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	svc := NewService(store)
	_, err := svc.Login("joao@email.com", "123456")
	require.NoError(t, err)

	svc.Logout()

	_, ok := svc.Current()
	assert.False(t, ok)

	// A sessão também some do armazenamento
	var saved models.User
	assert.False(t, store.Load(CurrentUserKey, &saved))
}

func TestSessionSurvivesRestart(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	svc := NewService(store)
	_, err := svc.Login("joao@email.com", "123456")
	require.NoError(t, err)

	reloaded := NewService(store)
	current, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, "joao@email.com", current.Email)
}

func TestWishlistPersistence(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	svc := NewService(store)

	p := models.Product{ID: 7, Name: "Ração Golden", Price: decimal.NewFromFloat(129.90)}
	svc.AddToWishlist(p)

	reloaded := NewService(store)
	wishlist := reloaded.Wishlist()
	require.Len(t, wishlist, 1)
	assert.Equal(t, 7, wishlist[0].ID)

	reloaded.RemoveFromWishlist(7)
	assert.Empty(t, reloaded.Wishlist())
}

func TestUserOrderHistory(t *testing.T) {
	svc := NewService(storage.NewStore(t.TempDir()))

	before := len(svc.UserOrders())
	svc.AddUserOrder(models.Order{ID: 1756700000000, Total: decimal.NewFromInt(115)})

	orders := svc.UserOrders()
	require.Len(t, orders, before+1)
	assert.Equal(t, 1756700000000, orders[len(orders)-1].ID)
}
