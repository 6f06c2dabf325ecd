package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequisicionItem is one requested material line.
type RequisicionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequisicionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"requisicion_id"`
	Descripcion   string          `gorm:"type:text;not null" json:"descripcion"`
	Cantidad      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"cantidad"`
	Unidad        string          `gorm:"type:text;not null" json:"unidad"`
	Orden         int             `gorm:"default:0" json:"orden"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (RequisicionItem) TableName() string {
	return "requisicion_items"
}

// BeforeCreate sets UUID before creating
func (i *RequisicionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Requisicion is a material request raised by site staff, potentially
// converted into a purchase order.
type Requisicion struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NumeroRequisicion string    `gorm:"type:text;unique;not null" json:"numero_requisicion"`
	// Consecutivo is the per-obra sequence behind NumeroRequisicion; deleted
	// requisitions keep their number reserved.
	Consecutivo        int       `gorm:"not null;default:0" json:"consecutivo"`
	ObraID             uuid.UUID `gorm:"type:uuid;not null;index" json:"obra_id"`
	ResidenteIniciales string    `gorm:"type:text" json:"residente_iniciales"`

	Urgencia       string     `gorm:"type:text;default:'Normal'" json:"urgencia"`
	Estado         string     `gorm:"type:text;default:'Pendiente'" json:"estado"`
	FechaRequerida *time.Time `json:"fecha_requerida"`
	Observaciones  string     `gorm:"type:text" json:"observaciones"`

	Items []RequisicionItem `gorm:"foreignKey:RequisicionID" json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Requisicion) TableName() string {
	return "requisiciones"
}

// BeforeCreate sets UUID before creating
func (r *Requisicion) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Requisicion status constants
const (
	RequisicionPendiente    = "Pendiente"
	RequisicionEnRevision   = "En Revisión"
	RequisicionAprobada     = "Aprobada"
	RequisicionRechazada    = "Rechazada"
	RequisicionConvertidaOC = "Convertida a OC"
	RequisicionCancelada    = "Cancelada"

	UrgenciaUrgente  = "Urgente"
	UrgenciaNormal   = "Normal"
	UrgenciaPlaneado = "Planeado"
)
