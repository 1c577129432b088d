package repository

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// UserRepository porta de persistência para usuários.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Create(user *entity.User) error
	Update(user *entity.User) error
}
