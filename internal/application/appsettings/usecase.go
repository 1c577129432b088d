// Package appsettings gerencia a identidade da oficina usada nos cabeçalhos e
// rodapés dos documentos impressos.
package appsettings

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
)

// UseCase casos de uso da configuração da oficina.
type UseCase struct {
	repo repository.SettingsRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.SettingsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get devolve a configuração do usuário, criando o registro padrão na primeira
// consulta ("Minha Oficina", garantia de 90 dias no rodapé).
func (uc *UseCase) Get(userID string) (*dto.SettingsResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	settings, err := uc.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("buscar configuração: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultWorkshopSettings(userID)
		settings.ID = uuid.New().String()
		if err := uc.repo.Save(settings); err != nil {
			return nil, fmt.Errorf("criar configuração padrão: %w", err)
		}
	}
	return settingsResponse(settings), nil
}

// GetEntity devolve a configuração como entidade, com os mesmos padrões de Get.
// Usada pelos geradores de documento.
func (uc *UseCase) GetEntity(userID string) (*entity.WorkshopSettings, error) {
	settings, err := uc.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("buscar configuração: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultWorkshopSettings(userID)
	}
	return settings, nil
}

// Save substitui a configuração do usuário.
func (uc *UseCase) Save(userID string, in dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("buscar configuração: %w", err)
	}

	settings := &entity.WorkshopSettings{
		UserID:      userID,
		Name:        in.Name,
		LegalName:   in.LegalName,
		Document:    in.Document,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		Logo:        in.Logo,
		Address:     in.Address,
		PolicyTerms: in.PolicyTerms,
	}
	if existing != nil {
		settings.ID = existing.ID
	} else {
		settings.ID = uuid.New().String()
	}

	if err := uc.repo.Save(settings); err != nil {
		return nil, fmt.Errorf("salvar configuração: %w", err)
	}
	return settingsResponse(settings), nil
}

func settingsResponse(s *entity.WorkshopSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Name:        s.Name,
		LegalName:   s.LegalName,
		Document:    s.Document,
		Phone:       s.Phone,
		Email:       s.Email,
		Website:     s.Website,
		Logo:        s.Logo,
		Address:     s.Address,
		PolicyTerms: s.PolicyTerms,
	}
}
