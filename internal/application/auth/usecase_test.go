package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/0DarkSoul/sistema-oficina/internal/application/auth"
	"github.com/0DarkSoul/sistema-oficina/internal/application/dto"
	"github.com/0DarkSoul/sistema-oficina/internal/domain"
	"github.com/0DarkSoul/sistema-oficina/internal/domain/entity"
	"github.com/0DarkSoul/sistema-oficina/pkg/jwt"
)

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.byID[user.ID] = user
	return nil
}

var testJWT = auth.JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "oficina-test"}

func TestRegister_CriaUsuarioEmTrial(t *testing.T) {
	users := newFakeUserRepo()
	uc := auth.NewUseCase(users, testJWT)

	resp, err := uc.Register(dto.RegisterRequest{
		Name:        "Carlos",
		Email:       "  Carlos@Oficina.com  ",
		Password:    "senha-forte",
		CompanyName: "Oficina do Carlos",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "carlos@oficina.com", resp.User.Email, "e-mail normalizado")
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, entity.SubscriptionTrial, resp.User.SubscriptionStatus)
	assert.Equal(t, 7, resp.User.DaysRemaining)

	stored, _ := users.GetByEmail("carlos@oficina.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte", stored.PasswordHash, "a senha nunca é gravada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-forte")))

	userID, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	users := newFakeUserRepo()
	uc := auth.NewUseCase(users, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@oficina.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ANA@oficina.com", Password: "outra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposObrigatorios(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	uc := auth.NewUseCase(users, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@oficina.com", Password: "senha123"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "Ana@Oficina.com", Password: "senha123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana@oficina.com", resp.User.Email)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@oficina.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "ninguem@oficina.com", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"e-mail desconhecido responde igual a senha errada")
}

func TestProfile(t *testing.T) {
	users := newFakeUserRepo()
	uc := auth.NewUseCase(users, testJWT)

	resp, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@oficina.com", Password: "senha123"})
	require.NoError(t, err)

	profile, err := uc.Profile(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, 7, profile.DaysRemaining)

	_, err = uc.Profile("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
