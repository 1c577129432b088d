package repository

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// CustomerRepository porta de persistência para clientes.
type CustomerRepository interface {
	ListByUser(userID string) ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Upsert(customer *entity.Customer) error
}
