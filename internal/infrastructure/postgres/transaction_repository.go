package postgres

import (
	"context"
	"fmt"

	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementação de TransactionRepository. Transações são
// imutáveis: só inserção e listagem.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create registra a transação de renovação.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, amount, method, status, date, description, external_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.UserID, tx.Amount, tx.Method, tx.Status, tx.Date, tx.Description, tx.ExternalReference,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByUser lista as transações do usuário, mais recentes primeiro.
func (r *TransactionRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, amount, method, status, date, description, external_reference
		FROM transactions WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Method, &t.Status, &t.Date, &t.Description, &t.ExternalReference); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
