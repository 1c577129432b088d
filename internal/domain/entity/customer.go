package entity

import "time"

// Customer representa um cliente da oficina.
type Customer struct {
	ID        string
	UserID    string // dono do registro
	Name      string
	Phone     string
	Email     string
	Document  string // CPF ou CNPJ
	Address   string
	CreatedAt time.Time
}
