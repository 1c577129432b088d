// Package auth registro e login de usuários da oficina. Todo usuário novo
// começa no trial de 7 dias.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/repository"
	"github.com/0DarkSoul/sistema-oficina/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: registro, login e perfil.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register cria um usuário: hasheia a senha com bcrypt, inicia o trial de
// 7 dias e já devolve o token de sessão. ErrEmailAlreadyExists se o e-mail
// estiver em uso.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               entity.RoleAdmin,
		CompanyName:        strings.TrimSpace(in.CompanyName),
		TrialStartDate:     now,
		SubscriptionStatus: entity.SubscriptionTrial,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica e-mail/senha e devolve token + perfil. Credencial errada e
// e-mail desconhecido respondem com o mesmo erro, sem revelar qual dos dois.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.authResponse(user)
}

// Profile perfil do usuário autenticado, com os dias restantes de assinatura.
func (uc *UseCase) Profile(userID string) (*dto.UserProfile, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	profile := toProfile(user)
	return &profile, nil
}

func (uc *UseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toProfile(user)}, nil
}

func toProfile(u *entity.User) dto.UserProfile {
	return dto.UserProfile{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		CompanyName:        u.CompanyName,
		SubscriptionStatus: u.SubscriptionStatus,
		DaysRemaining:      subscription.DaysRemaining(u, time.Now()),
	}
}
