package repository

import "github.com/elzarapeimports/zarape-pos-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia de usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
