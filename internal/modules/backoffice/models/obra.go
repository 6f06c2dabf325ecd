package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Obra is a construction project/contract being tracked.
type Obra struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Codigo string    `gorm:"type:text;unique;not null" json:"codigo"`
	Nombre string    `gorm:"type:text;not null" json:"nombre"`

	Cliente        string          `gorm:"type:text" json:"cliente"`
	NumeroContrato string          `gorm:"type:text" json:"numero_contrato"`
	MontoContrato  decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"monto_contrato"`
	Direccion      string          `gorm:"type:text" json:"direccion"`

	FechaInicio      *time.Time `json:"fecha_inicio"`
	FechaFinEstimada *time.Time `json:"fecha_fin_estimada"`

	// Site resident, owner of requisitions raised for this obra
	Residente          string `gorm:"type:text" json:"residente"`
	ResidenteIniciales string `gorm:"type:text" json:"residente_iniciales"`

	Estado        string         `gorm:"type:text;default:'Activa'" json:"estado"`
	Observaciones string         `gorm:"type:text" json:"observaciones"`
	Metadata      datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Obra) TableName() string {
	return "obras"
}

// BeforeCreate sets UUID before creating
func (o *Obra) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Obra status constants
const (
	ObraActiva     = "Activa"
	ObraPausada    = "Pausada"
	ObraFinalizada = "Finalizada"
	ObraCancelada  = "Cancelada"
	ObraArchivada  = "Archivada"
)
