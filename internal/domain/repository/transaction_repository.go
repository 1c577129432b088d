package repository

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// TransactionRepository porta de persistência das transações de assinatura.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	ListByUser(userID string) ([]*entity.Transaction, error)
}
