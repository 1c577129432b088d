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

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação de SettingsRepository. Um registro por usuário;
// o endereço vai em JSONB.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByUser busca a configuração do usuário; (nil, nil) se ainda não existe.
func (r *SettingsRepo) GetByUser(userID string) (*entity.WorkshopSettings, error) {
	query := `
		SELECT id, user_id, name, legal_name, document, phone, email, website, logo, address, policy_terms
		FROM workshop_settings WHERE user_id = $1`
	var s entity.WorkshopSettings
	var address []byte
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.ID, &s.UserID, &s.Name, &s.LegalName, &s.Document, &s.Phone,
		&s.Email, &s.Website, &s.Logo, &address, &s.PolicyTerms,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if len(address) > 0 {
		if err := json.Unmarshal(address, &s.Address); err != nil {
			return nil, fmt.Errorf("unmarshal address: %w", err)
		}
	}
	return &s, nil
}

// Save insere ou substitui a configuração do usuário.
func (r *SettingsRepo) Save(settings *entity.WorkshopSettings) error {
	address, err := json.Marshal(settings.Address)
	if err != nil {
		return fmt.Errorf("marshal address: %w", err)
	}
	query := `
		INSERT INTO workshop_settings (id, user_id, name, legal_name, document, phone, email, website, logo, address, policy_terms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name, legal_name = EXCLUDED.legal_name,
			document = EXCLUDED.document, phone = EXCLUDED.phone,
			email = EXCLUDED.email, website = EXCLUDED.website,
			logo = EXCLUDED.logo, address = EXCLUDED.address,
			policy_terms = EXCLUDED.policy_terms`
	_, err = r.q.Exec(context.Background(), query,
		settings.ID, settings.UserID, settings.Name, settings.LegalName,
		settings.Document, settings.Phone, settings.Email, settings.Website,
		settings.Logo, address, settings.PolicyTerms,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
