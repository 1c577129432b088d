package entity

// Address endereço da oficina (gravado como JSONB).
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// WorkshopSettings identidade da oficina: cabeçalho e rodapé dos documentos
// impressos. Um registro por usuário, criado sob demanda com valores padrão.
type WorkshopSettings struct {
	ID          string
	UserID      string
	Name        string
	LegalName   string // razão social
	Document    string // CNPJ
	Phone       string
	Email       string
	Website     string
	Logo        string // imagem em base64
	Address     Address
	PolicyTerms string // texto do rodapé (garantias etc.)
}

// DefaultWorkshopSettings valores iniciais quando o usuário ainda não configurou a oficina.
func DefaultWorkshopSettings(userID string) *WorkshopSettings {
	return &WorkshopSettings{
		UserID:      userID,
		Name:        "Minha Oficina",
		PolicyTerms: "Garantia de 90 dias para serviços.",
	}
}
