package repository

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// VehicleRepository porta de persistência para veículos.
type VehicleRepository interface {
	ListByUser(userID string) ([]*entity.Vehicle, error)
	ListByCustomer(userID, customerID string) ([]*entity.Vehicle, error)
	GetByID(id string) (*entity.Vehicle, error)
	Upsert(vehicle *entity.Vehicle) error
}
