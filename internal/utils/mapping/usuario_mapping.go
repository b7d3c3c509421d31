package mapping

import (
	"github.com/inmofin/backoffice-caja/internal/core/domain"
	"github.com/inmofin/backoffice-caja/internal/models"
)

// ToModelUsuario converts a domain Usuario to a model Usuario.
func ToModelUsuario(d domain.Usuario) models.Usuario {
	return models.Usuario{
		UsuarioID:    d.UsuarioID,
		Nombre:       d.Nombre,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Activo:       d.Activo,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUsuario converts a model Usuario to a domain Usuario.
func ToDomainUsuario(m models.Usuario) domain.Usuario {
	return domain.Usuario{
		UsuarioID:    m.UsuarioID,
		Nombre:       m.Nombre,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Activo:       m.Activo,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
