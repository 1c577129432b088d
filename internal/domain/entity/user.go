package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Estados de assinatura.
const (
	SubscriptionTrial   = "TRIAL"
	SubscriptionActive  = "ACTIVE"
	SubscriptionExpired = "EXPIRED"
)

// User usuário autenticado da aplicação. O acesso às rotas da oficina é
// condicionado ao estado da assinatura (trial de 7 dias ou plano ativo).
type User struct {
	ID                     string
	Name                   string
	Email                  string
	PasswordHash           string
	Role                   string
	CompanyName            string
	TrialStartDate         time.Time
	SubscriptionExpiryDate *time.Time
	SubscriptionStatus     string
	RedeemedCodes          []string // códigos já resgatados, para bloquear replay
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
