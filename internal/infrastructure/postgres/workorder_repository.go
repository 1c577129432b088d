package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementação de WorkOrderRepository (aceita pool ou tx).
// As linhas de serviço vivem na coluna JSONB services: são editadas sempre como
// parte da OS, nunca isoladamente, então não ganham tabela própria.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, user_id, customer_id, vehicle_id, entry_date, exit_date,
	status, description, services, discount, total, notes, payment_method`

// ListByUser devolve todas as OS do usuário, mais recentes primeiro.
func (r *WorkOrderRepo) ListByUser(userID string) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE user_id = $1 ORDER BY entry_date DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		order, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// GetByID busca uma OS por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	order, err := scanWorkOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return order, nil
}

// Upsert grava a OS inteira, linhas de serviço incluídas.
func (r *WorkOrderRepo) Upsert(order *entity.WorkOrder) error {
	services, err := json.Marshal(order.Services)
	if err != nil {
		return fmt.Errorf("marshal services: %w", err)
	}
	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id, vehicle_id = EXCLUDED.vehicle_id,
			entry_date = EXCLUDED.entry_date, exit_date = EXCLUDED.exit_date,
			status = EXCLUDED.status, description = EXCLUDED.description,
			services = EXCLUDED.services, discount = EXCLUDED.discount,
			total = EXCLUDED.total, notes = EXCLUDED.notes,
			payment_method = EXCLUDED.payment_method`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.CustomerID, order.VehicleID,
		order.EntryDate, order.ExitDate, string(order.Status), order.Description,
		services, order.Discount, order.Total, order.Notes, order.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("upsert work order: %w", err)
	}
	return nil
}

// scanWorkOrder lê uma linha de work_orders, decodificando o JSONB de serviços.
func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var o entity.WorkOrder
	var status string
	var services []byte
	err := row.Scan(
		&o.ID, &o.UserID, &o.CustomerID, &o.VehicleID, &o.EntryDate, &o.ExitDate,
		&status, &o.Description, &services, &o.Discount, &o.Total, &o.Notes, &o.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.WorkOrderStatus(status)
	if len(services) > 0 {
		if err := json.Unmarshal(services, &o.Services); err != nil {
			return nil, fmt.Errorf("unmarshal services: %w", err)
		}
	}
	return &o, nil
}
