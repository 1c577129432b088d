package dto

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// SaveSettingsRequest body para PUT /api/settings.
type SaveSettingsRequest struct {
	Name        string         `json:"name"`
	LegalName   string         `json:"legal_name,omitempty"`
	Document    string         `json:"document,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Email       string         `json:"email,omitempty"`
	Website     string         `json:"website,omitempty"`
	Logo        string         `json:"logo,omitempty"`
	Address     entity.Address `json:"address"`
	PolicyTerms string         `json:"policy_terms,omitempty"`
}

// SettingsResponse identidade da oficina em respostas.
type SettingsResponse struct {
	Name        string         `json:"name"`
	LegalName   string         `json:"legal_name,omitempty"`
	Document    string         `json:"document,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Email       string         `json:"email,omitempty"`
	Website     string         `json:"website,omitempty"`
	Logo        string         `json:"logo,omitempty"`
	Address     entity.Address `json:"address"`
	PolicyTerms string         `json:"policy_terms,omitempty"`
}
