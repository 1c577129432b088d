// Package registry cobre o cadastro de clientes e veículos da oficina:
// registros simples, donos de referência para as ordens de serviço.
package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Save cria (ID vazio) ou atualiza um cliente. A escrita sempre carimba o dono.
func (uc *CustomerUseCase) Save(userID string, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	customer := &entity.Customer{
		ID:       in.ID,
		UserID:   userID,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Document: in.Document,
		Address:  in.Address,
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
		customer.CreatedAt = time.Now()
	} else {
		existing, err := uc.repo.GetByID(customer.ID)
		if err != nil {
			return nil, fmt.Errorf("buscar cliente: %w", err)
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		if existing.UserID != userID {
			return nil, domain.ErrForbidden
		}
		customer.CreatedAt = existing.CreatedAt
	}

	if err := uc.repo.Upsert(customer); err != nil {
		return nil, fmt.Errorf("salvar cliente: %w", err)
	}
	return customerResponse(customer), nil
}

// List lista os clientes do usuário.
func (uc *CustomerUseCase) List(userID string) ([]*dto.CustomerResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, customerResponse(c))
	}
	return out, nil
}

// Get carrega um cliente específico do usuário.
func (uc *CustomerUseCase) Get(userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return customerResponse(customer), nil
}

func customerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Document:  c.Document,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
