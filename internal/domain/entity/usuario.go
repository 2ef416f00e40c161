package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// Usuario representa un usuario del sistema (sesión de punto de venta).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, vendedor
	Estado       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
