package dto

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	RFC       string `json:"rfc,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Notas     string `json:"notas,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id. Campos nil no se tocan.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	RFC       *string `json:"rfc"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Notas     *string `json:"notas"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	RFC       string `json:"rfc,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Notas     string `json:"notas,omitempty"`
}

// ClienteListResponse listado paginado.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
