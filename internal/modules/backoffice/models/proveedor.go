package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Proveedor is a supplier that purchase orders are issued to.
type Proveedor struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Codigo string    `gorm:"type:text;unique;not null" json:"codigo"`
	Nombre string    `gorm:"type:text;not null" json:"nombre"`

	RazonSocial string `gorm:"type:text" json:"razon_social"`
	RFC         string `gorm:"type:text" json:"rfc"`
	Direccion   string `gorm:"type:text" json:"direccion"`
	Contacto    string `gorm:"type:text" json:"contacto"`
	Telefono    string `gorm:"type:text" json:"telefono"`
	Email       string `gorm:"type:text" json:"email"`

	// Credit line controls
	LineaCredito      decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"linea_credito"`
	LineaCreditoUsada decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"linea_credito_usada"`
	DiasCredito       int             `gorm:"default:0" json:"dias_credito"`

	Activo        bool           `gorm:"default:true" json:"activo"`
	Observaciones string         `gorm:"type:text" json:"observaciones"`
	Metadata      datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Proveedor) TableName() string {
	return "proveedores"
}

// BeforeCreate sets UUID before creating
func (p *Proveedor) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
