package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/config"
	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/repository"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

// ── In-memory UsuarioRepository ──────────────────────────────────────────────

type fakeUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Activo = false
	return nil
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

func newAuthService() (service.AuthService, *config.Config) {
	cfg := testConfig()
	cfg.JWTSecret = "test-secret"
	cfg.JWTExpirationHours = 8
	return service.NewAuthService(newFakeUsuarioRepo(), cfg), cfg
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegisterAndLogin(t *testing.T) {
	svc, cfg := newAuthService()

	created, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "mateo",
		Password: "secreto-largo",
		Roles:    []string{"super-admin"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"super-admin"}, created.Roles)
	assert.True(t, created.Activo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "mateo", Password: "secreto-largo"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "mateo", resp.User.Username)

	// The token carries the identity claims, signed with our secret
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "mateo", claims["username"])
	assert.Equal(t, created.ID, claims["user_id"])
}

func TestRegisterDefaultsEmployeeRole(t *testing.T) {
	svc, _ := newAuthService()

	created, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "caro",
		Password: "secreto-largo",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"employee"}, created.Roles)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "caro", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Username: "caro", Password: "otro-secreto"})
	assert.ErrorContains(t, err, "ya existe")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "caro", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "caro", Password: "equivocada"})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "loquesea"})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestMe(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())

	created, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "fede", Password: "secreto-largo"})
	require.NoError(t, err)

	resp, err := svc.Me(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "fede", resp.Username)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
