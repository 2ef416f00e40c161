package entity

// Categoria agrupa productos del catálogo. Activa=false la oculta sin borrarla.
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	Activa      bool
}
