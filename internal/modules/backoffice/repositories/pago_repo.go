package repositories

import (
	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

type PagoRepo interface {
	Create(pago *models.Pago) error
	GetByID(id string) (*models.Pago, error)
	GetByBankTransaction(transactionID uuid.UUID) (*models.Pago, error)
	ListByOrden(ordenID string) ([]models.Pago, error)
	List(obraID string, limit int) ([]models.Pago, error)
	Update(pago *models.Pago) error
	Delete(id string) error
}

type pagoRepo struct {
	db *gorm.DB
}

func NewPagoRepo(db *gorm.DB) PagoRepo {
	return &pagoRepo{db: db}
}

func (r *pagoRepo) Create(pago *models.Pago) error {
	return r.db.Create(pago).Error
}

func (r *pagoRepo) GetByID(id string) (*models.Pago, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var pago models.Pago
	err = r.db.First(&pago, "id = ?", uid).Error
	return &pago, err
}

func (r *pagoRepo) GetByBankTransaction(transactionID uuid.UUID) (*models.Pago, error) {
	var pago models.Pago
	err := r.db.Where("bank_transaction_id = ?", transactionID).First(&pago).Error
	return &pago, err
}

func (r *pagoRepo) ListByOrden(ordenID string) ([]models.Pago, error) {
	var pagos []models.Pago
	err := r.db.Where("orden_compra_id = ?", ordenID).
		Order("created_at ASC").
		Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) List(obraID string, limit int) ([]models.Pago, error) {
	var pagos []models.Pago
	query := r.db.Order("created_at DESC")

	if obraID != "" {
		query = query.Where("obra_id = ?", obraID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) Update(pago *models.Pago) error {
	return r.db.Save(pago).Error
}

func (r *pagoRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&models.Pago{}, "id = ?", uid).Error
}
