package entity

// Vehicle veículo de um cliente. Cada veículo pertence a exatamente um cliente.
type Vehicle struct {
	ID         string
	UserID     string // dono do registro
	CustomerID string
	Plate      string
	Brand      string
	Model      string
	Year       int
	Color      string
}
