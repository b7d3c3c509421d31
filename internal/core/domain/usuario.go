package domain

// Usuario is the acting principal attached to every created entry.
// Role/permission administration lives outside this service; only the
// identity and credential check are needed here.
type Usuario struct {
	UsuarioID    string `json:"usuarioID"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Activo       bool   `json:"activo"`
	AuditFields
}
