package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankTransaction is one imported bank statement line. Lifecycle: created
// unmatched on CSV import, transitions to matched exactly once (auto or
// manual match); unmatch is an explicit reversal that also cancels the
// generated payment.
type BankTransaction struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	Fecha            string `gorm:"type:text;not null" json:"fecha"`
	DescripcionBanco string `gorm:"type:text;not null" json:"descripcion_banco"`

	Monto              decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"monto"`
	ReferenciaBancaria string          `gorm:"type:text" json:"referencia_bancaria"`

	OrdenCompraID   *uuid.UUID `gorm:"type:uuid;index" json:"orden_compra_id"`
	Matched         bool       `gorm:"default:false;index" json:"matched"`
	MatchConfidence int        `gorm:"default:0" json:"match_confidence"`
	MatchManual     bool       `gorm:"default:false" json:"match_manual"`

	Origen string `gorm:"type:text;default:'csv'" json:"origen"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (BankTransaction) TableName() string {
	return "bank_transactions"
}

// BeforeCreate sets UUID before creating
func (t *BankTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Transaction origin constants
const (
	OrigenCSV    = "csv"
	OrigenManual = "manual"
)
