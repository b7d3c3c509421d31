package models

// Usuario is the database row for an acting principal.
type Usuario struct {
	UsuarioID    string `db:"usuario_id"`
	Nombre       string `db:"nombre"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Activo       bool   `db:"activo"`
	AuditFields
}
