package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

// OrdenFilter narrows List queries.
type OrdenFilter struct {
	ObraID      string
	ProveedorID string
	Estado      string
	EstadoPago  string
	Limit       int
}

type OrdenRepo interface {
	Create(orden *models.OrdenCompra) error
	GetByID(id string) (*models.OrdenCompra, error)
	GetByNumeroOrden(numeroOrden string) (*models.OrdenCompra, error)
	List(filter OrdenFilter) ([]models.OrdenCompra, error)
	MaxConsecutivoByObra(obraID uuid.UUID) (int, error)
	Update(orden *models.OrdenCompra) error
	UpdateEstado(id, estado string) error
	ReplaceItems(orden *models.OrdenCompra, items []models.OrdenCompraItem) error
	ListPagoVencido(ref time.Time) ([]models.OrdenCompra, error)
	Delete(id string) error
}

type ordenRepo struct {
	db *gorm.DB
}

func NewOrdenRepo(db *gorm.DB) OrdenRepo {
	return &ordenRepo{db: db}
}

func (r *ordenRepo) Create(orden *models.OrdenCompra) error {
	return r.db.Create(orden).Error
}

func (r *ordenRepo) GetByID(id string) (*models.OrdenCompra, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var orden models.OrdenCompra
	err = r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("orden_compra_items.orden ASC")
	}).First(&orden, "id = ?", uid).Error
	return &orden, err
}

func (r *ordenRepo) GetByNumeroOrden(numeroOrden string) (*models.OrdenCompra, error) {
	var orden models.OrdenCompra
	err := r.db.Preload("Items").Where("numero_orden = ?", numeroOrden).First(&orden).Error
	return &orden, err
}

func (r *ordenRepo) List(filter OrdenFilter) ([]models.OrdenCompra, error) {
	var ordenes []models.OrdenCompra
	query := r.db.Preload("Items").Order("created_at DESC")

	if filter.ObraID != "" {
		query = query.Where("obra_id = ?", filter.ObraID)
	}
	if filter.ProveedorID != "" {
		query = query.Where("proveedor_id = ?", filter.ProveedorID)
	}
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.EstadoPago != "" {
		query = query.Where("estado_pago = ?", filter.EstadoPago)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&ordenes).Error
	return ordenes, err
}

// MaxConsecutivoByObra returns the highest folio sequence issued for the
// obra. The maximum, not the row count: deleting an order must not put its
// number back into circulation.
func (r *ordenRepo) MaxConsecutivoByObra(obraID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.OrdenCompra{}).
		Where("obra_id = ?", obraID).
		Select("COALESCE(MAX(consecutivo), 0)").
		Scan(&max).Error
	return max, err
}

func (r *ordenRepo) Update(orden *models.OrdenCompra) error {
	return r.db.Save(orden).Error
}

func (r *ordenRepo) UpdateEstado(id, estado string) error {
	return r.db.Model(&models.OrdenCompra{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

// ReplaceItems swaps the order's line items for a new set in one
// transaction. Items are exclusively owned by the order, so stale lines are
// deleted rather than orphaned.
func (r *ordenRepo) ReplaceItems(orden *models.OrdenCompra, items []models.OrdenCompraItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("orden_compra_id = ?", orden.ID).
			Delete(&models.OrdenCompraItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrdenCompraID = orden.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		orden.Items = items
		return tx.Save(orden).Error
	})
}

// ListPagoVencido returns orders with an outstanding balance whose payment
// due date is before ref and that are not already flagged.
func (r *ordenRepo) ListPagoVencido(ref time.Time) ([]models.OrdenCompra, error) {
	var ordenes []models.OrdenCompra
	err := r.db.
		Where("fecha_vencimiento_pago IS NOT NULL AND fecha_vencimiento_pago < ?", ref).
		Where("saldo_pendiente > 0").
		Where("estado_pago NOT IN ?", []string{models.PagoOrdenPagada, models.PagoOrdenVencida}).
		Where("estado NOT IN ?", []string{models.OrdenCancelada, models.OrdenBorrador}).
		Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("orden_compra_id = ?", uid).
			Delete(&models.OrdenCompraItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.OrdenCompra{}, "id = ?", uid).Error
	})
}
