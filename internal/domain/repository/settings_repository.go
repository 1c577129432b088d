package repository

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// SettingsRepository porta de persistência da identidade da oficina.
// GetByUser devolve (nil, nil) quando o usuário ainda não tem configuração.
type SettingsRepository interface {
	GetByUser(userID string) (*entity.WorkshopSettings, error)
	Save(settings *entity.WorkshopSettings) error
}
