// Package auth registra usuarios y emite tokens de sesión.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/dto"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"
	"github.com/elzarapeimports/zarape-pos-api/internal/domain/repository"
	"github.com/elzarapeimports/zarape-pos-api/pkg/jwt"
)

// AuthUseCase registro y login de usuarios del punto de venta.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtSecret   string
	jwtIssuer   string
	jwtExpMin   int
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtSecret, jwtIssuer string, jwtExpMin int) *AuthUseCase {
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
		jwtExpMin:   jwtExpMin,
	}
}

// Register da de alta un usuario. Email duplicado devuelve ErrEmailRegistrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 {
		return nil, domain.ErrEntradaInvalida
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	if rol != entity.RolAdmin && rol != entity.RolVendedor {
		return nil, domain.ErrEntradaInvalida
	}

	existente, err := uc.usuarioRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailRegistrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          rol,
		Estado:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login valida credenciales y devuelve un JWT. Credenciales inválidas y usuario
// inexistente responden igual: ErrNoAutorizado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	usuario, err := uc.usuarioRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.Estado != "active" {
		return nil, domain.ErrNoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}

	token, err := jwt.Generate(uc.jwtSecret, usuario.ID, usuario.Rol, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return toUsuarioResponse(usuario), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
