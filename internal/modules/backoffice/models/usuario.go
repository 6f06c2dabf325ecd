package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario is a back-office user account.
type Usuario struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email string    `gorm:"type:text;unique;not null" json:"email"`

	Nombre       string `gorm:"type:text;not null" json:"nombre"`
	Iniciales    string `gorm:"type:text" json:"iniciales"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
	Rol          string `gorm:"type:text;default:'Visualizador'" json:"rol"`
	Activo       bool   `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Usuario) TableName() string {
	return "usuarios"
}

// BeforeCreate sets UUID before creating
func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// User role constants
const (
	RolAdmin        = "Admin"
	RolResidente    = "Residente"
	RolCompras      = "Compras"
	RolPagos        = "Pagos"
	RolVisualizador = "Visualizador"
)
