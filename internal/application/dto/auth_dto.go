package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse token e perfil após registro ou login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UserProfile dados públicos do usuário (sem hash de senha).
type UserProfile struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	CompanyName        string `json:"company_name,omitempty"`
	SubscriptionStatus string `json:"subscription_status"`
	DaysRemaining      int    `json:"days_remaining"`
}
