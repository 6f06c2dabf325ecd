package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pago is a payment applied to a purchase order, either captured manually
// or created by the bank reconciliation flow. A payment cannot exist
// without a valid order.
type Pago struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NumeroPago string    `gorm:"type:text;unique;not null" json:"numero_pago"`

	OrdenCompraID uuid.UUID `gorm:"type:uuid;not null;index" json:"orden_compra_id"`
	ProveedorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"proveedor_id"`
	ObraID        uuid.UUID `gorm:"type:uuid;not null;index" json:"obra_id"`

	// Set when the payment was generated by a bank transaction match
	BankTransactionID *uuid.UUID `gorm:"type:uuid;index" json:"bank_transaction_id"`

	Monto              decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"monto"`
	TipoPago           string          `gorm:"type:text;default:'Transferencia'" json:"tipo_pago"`
	ReferenciaBancaria string          `gorm:"type:text" json:"referencia_bancaria"`
	Banco              string          `gorm:"type:text" json:"banco"`

	FechaPago       string     `gorm:"type:text;not null" json:"fecha_pago"`
	FechaAplicacion *time.Time `json:"fecha_aplicacion"`

	Estado        string `gorm:"type:text;default:'Pendiente'" json:"estado"`
	Observaciones string `gorm:"type:text" json:"observaciones"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Pago) TableName() string {
	return "pagos"
}

// BeforeCreate sets UUID before creating
func (p *Pago) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Payment status constants
const (
	PagoPendiente = "Pendiente"
	PagoProcesado = "Procesado"
	PagoAplicado  = "Aplicado"
	PagoRechazado = "Rechazado"
	PagoCancelado = "Cancelado"

	// TipoPago
	TipoTransferencia = "Transferencia"
	TipoCheque        = "Cheque"
	TipoEfectivo      = "Efectivo"
	TipoTarjeta       = "Tarjeta"
)
