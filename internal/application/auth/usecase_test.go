package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/auth"
	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porID    map[string]*entity.Usuario
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		porID:    make(map[string]*entity.Usuario),
		porEmail: make(map[string]*entity.Usuario),
	}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailRegistrado
	}
	c := *u
	r.porID[u.ID] = &c
	r.porEmail[u.Email] = &c
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

const jwtSecret = "secreto-de-prueba"

func newAuthFixture() (*fakeUsuarioRepo, *auth.AuthUseCase) {
	repo := newFakeUsuarioRepo()
	return repo, auth.NewAuthUseCase(repo, jwtSecret, "zarape-pos", 15)
}

func TestRegister(t *testing.T) {
	_, uc := newAuthFixture()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "  Maria@Example.COM ",
		Password: "contraseña-larga",
		Nombre:   "María",
	})
	require.NoError(t, err)

	assert.Equal(t, "maria@example.com", resp.Email, "email normalizado a minúsculas")
	assert.Equal(t, entity.RolVendedor, resp.Rol, "rol por defecto")
	assert.Equal(t, "active", resp.Estado)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	_, uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "maria@example.com", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "MARIA@example.com", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailRegistrado)
}

func TestRegister_Validaciones(t *testing.T) {
	_, uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "x@example.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Register(ctx, dto.RegisterRequest{
		Email: "x@example.com", Password: "contraseña-larga", Rol: "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLogin(t *testing.T) {
	_, uc := newAuthFixture()
	ctx := context.Background()

	registrado, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "admin@example.com", Password: "contraseña-larga", Rol: entity.RolAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, rol, err := jwt.Parse(jwtSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registrado.ID, userID)
	assert.Equal(t, entity.RolAdmin, rol)
}

func TestLogin_NoAutorizado(t *testing.T) {
	repo, uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "x@example.com", Password: "contraseña-larga"})
	require.NoError(t, err)

	// contraseña incorrecta y usuario inexistente responden igual
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "x@example.com", Password: "incorrecta-123"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)

	// usuario desactivado no entra aunque la contraseña sea correcta
	repo.porEmail["x@example.com"].Estado = "inactive"
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "x@example.com", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestMe(t *testing.T) {
	_, uc := newAuthFixture()
	ctx := context.Background()

	registrado, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "x@example.com", Password: "contraseña-larga", Nombre: "Equis",
	})
	require.NoError(t, err)

	resp, err := uc.Me(ctx, registrado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Equis", resp.Nombre)

	_, err = uc.Me(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}
