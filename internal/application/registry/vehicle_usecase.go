package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

// VehicleUseCase casos de uso de veículos.
type VehicleUseCase struct {
	repo      repository.VehicleRepository
	customers repository.CustomerRepository
}

// NewVehicleUseCase constrói o caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository, customers repository.CustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers}
}

// Save cria (ID vazio) ou atualiza um veículo. O cliente dono precisa existir e
// pertencer ao mesmo usuário.
func (uc *VehicleUseCase) Save(userID string, in dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.CustomerID == "" || in.Plate == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente do veículo: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.UserID != userID {
		return nil, domain.ErrForbidden
	}

	vehicle := &entity.Vehicle{
		ID:         in.ID,
		UserID:     userID,
		CustomerID: in.CustomerID,
		Plate:      in.Plate,
		Brand:      in.Brand,
		Model:      in.Model,
		Year:       in.Year,
		Color:      in.Color,
	}
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	} else {
		existing, err := uc.repo.GetByID(vehicle.ID)
		if err != nil {
			return nil, fmt.Errorf("buscar veículo: %w", err)
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		if existing.UserID != userID {
			return nil, domain.ErrForbidden
		}
	}

	if err := uc.repo.Upsert(vehicle); err != nil {
		return nil, fmt.Errorf("salvar veículo: %w", err)
	}
	return vehicleResponse(vehicle), nil
}

// List lista os veículos do usuário; customerID não vazio restringe ao cliente.
func (uc *VehicleUseCase) List(userID, customerID string) ([]*dto.VehicleResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	var (
		list []*entity.Vehicle
		err  error
	)
	if customerID != "" {
		list, err = uc.repo.ListByCustomer(userID, customerID)
	} else {
		list, err = uc.repo.ListByUser(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("listar veículos: %w", err)
	}
	out := make([]*dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, vehicleResponse(v))
	}
	return out, nil
}

func vehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		Color:      v.Color,
	}
}
