package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementação de VehicleRepository (aceita pool ou tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, user_id, customer_id, plate, brand, model, year, color`

// ListByUser lista os veículos do usuário.
func (r *VehicleRepo) ListByUser(userID string) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 ORDER BY plate`
	return r.list(query, userID)
}

// ListByCustomer lista os veículos de um cliente do usuário.
func (r *VehicleRepo) ListByCustomer(userID, customerID string) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 AND customer_id = $2 ORDER BY plate`
	return r.list(query, userID, customerID)
}

func (r *VehicleRepo) list(query string, args ...any) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.UserID, &v.CustomerID, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.Color); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// GetByID busca um veículo por ID.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.UserID, &v.CustomerID, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.Color,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// Upsert insere ou substitui o veículo pelo ID.
func (r *VehicleRepo) Upsert(vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id, plate = EXCLUDED.plate,
			brand = EXCLUDED.brand, model = EXCLUDED.model,
			year = EXCLUDED.year, color = EXCLUDED.color`
	_, err := r.q.Exec(context.Background(), query,
		vehicle.ID, vehicle.UserID, vehicle.CustomerID, vehicle.Plate,
		vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.Color,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("upsert vehicle: %w", err)
	}
	return nil
}
