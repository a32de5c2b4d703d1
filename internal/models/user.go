package models

import "time"

// User representa um usuário com sessão, distinto de um Customer do
// backoffice: o mesmo comprador pode existir nos dois registros dependendo
// do estado da sessão no checkout.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
