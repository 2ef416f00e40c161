package entity

// Cliente representa un cliente de la tienda.
type Cliente struct {
	ID        string
	Nombre    string // requerido
	RFC       string
	Direccion string
	Telefono  string
	Email     string
	Notas     string
}
