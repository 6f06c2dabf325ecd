package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrdenCompraItem is one material line of a purchase order. Lines are
// exclusively owned by their order; Total is always derived from Cantidad
// and PrecioUnitario by the totals calculator.
type OrdenCompraItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrdenCompraID uuid.UUID `gorm:"type:uuid;not null;index" json:"orden_compra_id"`

	Descripcion      string          `gorm:"type:text;not null" json:"descripcion"`
	Especificaciones string          `gorm:"type:text" json:"especificaciones"`
	Cantidad         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"cantidad"`
	Unidad           string          `gorm:"type:text;not null" json:"unidad"`
	PrecioUnitario   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"precio_unitario"`
	Total            decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
	Orden            int             `gorm:"default:0" json:"orden"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (OrdenCompraItem) TableName() string {
	return "orden_compra_items"
}

// BeforeCreate sets UUID before creating
func (i *OrdenCompraItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// OrdenCompra is a purchase order issued to a supplier for an obra. The
// totals block (Subtotal, DescuentoMonto, IVA, Total) is a snapshot computed
// by the totals calculator; it is rewritten as a whole on every mutation of
// items, discount or IVA flag.
type OrdenCompra struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NumeroOrden string    `gorm:"type:text;unique;not null" json:"numero_orden"`
	// Consecutivo is the per-obra folio sequence. Persisted so that deleting
	// an order never releases its number back into circulation.
	Consecutivo int `gorm:"not null;default:0" json:"consecutivo"`

	ObraID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"obra_id"`
	ProveedorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"proveedor_id"`
	RequisicionID *uuid.UUID `gorm:"type:uuid;index" json:"requisicion_id"`

	Comprador          string `gorm:"type:text" json:"comprador"`
	CompradorIniciales string `gorm:"type:text" json:"comprador_iniciales"`

	FechaOrden             time.Time  `gorm:"not null" json:"fecha_orden"`
	FechaEntregaProgramada *time.Time `json:"fecha_entrega_programada"`
	TipoEntrega            string     `gorm:"type:text;default:'Entrega'" json:"tipo_entrega"`

	// Totals snapshot
	Subtotal       decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"subtotal"`
	DescuentoModo  string          `gorm:"type:text;default:'porcentaje'" json:"descuento_modo"`
	DescuentoValor decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"descuento_valor"`
	DescuentoMonto decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"descuento_monto"`
	TieneIVA       bool            `gorm:"default:true" json:"tiene_iva"`
	IVA            decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"iva"`
	Total          decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"total"`

	// Payment tracking
	FormaPago            string          `gorm:"type:text;default:'Crédito'" json:"forma_pago"`
	DiasCredito          int             `gorm:"default:0" json:"dias_credito"`
	FechaVencimientoPago *time.Time      `json:"fecha_vencimiento_pago"`
	MontoPagado          decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"monto_pagado"`
	SaldoPendiente       decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"saldo_pendiente"`

	Estado     string `gorm:"type:text;default:'Pendiente'" json:"estado"`
	EstadoPago string `gorm:"type:text;default:'Pendiente'" json:"estado_pago"`

	Observaciones string         `gorm:"type:text" json:"observaciones"`
	Metadata      datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	Items []OrdenCompraItem `gorm:"foreignKey:OrdenCompraID" json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (OrdenCompra) TableName() string {
	return "ordenes_compra"
}

// BeforeCreate sets UUID before creating
func (o *OrdenCompra) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Purchase order status constants
const (
	// Estado
	OrdenBorrador   = "Borrador"
	OrdenPendiente  = "Pendiente"
	OrdenAprobada   = "Aprobada"
	OrdenRechazada  = "Rechazada"
	OrdenEnTransito = "En Tránsito"
	OrdenEntregada  = "Entregada"
	OrdenCancelada  = "Cancelada"

	// EstadoPago
	PagoOrdenPendiente = "Pendiente"
	PagoOrdenParcial   = "Parcial"
	PagoOrdenPagada    = "Pagada"
	PagoOrdenVencida   = "Vencida"

	// TipoEntrega
	EntregaEnObra = "Entrega"
	Recoleccion   = "Recolección"
)
