package dto

import "time"

// SaveCustomerRequest body para criar ou atualizar um cliente. ID vazio cria.
type SaveCustomerRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Document string `json:"document,omitempty"`
	Address  string `json:"address,omitempty"`
}

// CustomerResponse cliente em respostas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Document  string    `json:"document,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveVehicleRequest body para criar ou atualizar um veículo. ID vazio cria.
type SaveVehicleRequest struct {
	ID         string `json:"id,omitempty"`
	CustomerID string `json:"customer_id"`
	Plate      string `json:"plate"`
	Brand      string `json:"brand,omitempty"`
	Model      string `json:"model"`
	Year       int    `json:"year,omitempty"`
	Color      string `json:"color,omitempty"`
}

// VehicleResponse veículo em respostas.
type VehicleResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Plate      string `json:"plate"`
	Brand      string `json:"brand,omitempty"`
	Model      string `json:"model"`
	Year       int    `json:"year,omitempty"`
	Color      string `json:"color,omitempty"`
}
