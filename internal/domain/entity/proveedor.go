package entity

// Proveedor representa un proveedor de productos. Activo=false lo oculta sin borrarlo.
type Proveedor struct {
	ID        string
	Nombre    string
	Contacto  string
	Telefono  string
	Email     string
	Direccion string
	RFC       string
	Notas     string
	Activo    bool
}
