package repositories

import (
	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

type RequisicionRepo interface {
	Create(requisicion *models.Requisicion) error
	GetByID(id string) (*models.Requisicion, error)
	List(obraID, estado string, limit int) ([]models.Requisicion, error)
	MaxConsecutivoByObra(obraID uuid.UUID) (int, error)
	Update(requisicion *models.Requisicion) error
	UpdateEstado(id, estado string) error
	Delete(id string) error
}

type requisicionRepo struct {
	db *gorm.DB
}

func NewRequisicionRepo(db *gorm.DB) RequisicionRepo {
	return &requisicionRepo{db: db}
}

func (r *requisicionRepo) Create(requisicion *models.Requisicion) error {
	return r.db.Create(requisicion).Error
}

func (r *requisicionRepo) GetByID(id string) (*models.Requisicion, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var requisicion models.Requisicion
	err = r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("requisicion_items.orden ASC")
	}).First(&requisicion, "id = ?", uid).Error
	return &requisicion, err
}

func (r *requisicionRepo) List(obraID, estado string, limit int) ([]models.Requisicion, error) {
	var requisiciones []models.Requisicion
	query := r.db.Preload("Items").Order("created_at DESC")

	if obraID != "" {
		query = query.Where("obra_id = ?", obraID)
	}
	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&requisiciones).Error
	return requisiciones, err
}

func (r *requisicionRepo) MaxConsecutivoByObra(obraID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.Requisicion{}).
		Where("obra_id = ?", obraID).
		Select("COALESCE(MAX(consecutivo), 0)").
		Scan(&max).Error
	return max, err
}

func (r *requisicionRepo) Update(requisicion *models.Requisicion) error {
	return r.db.Save(requisicion).Error
}

func (r *requisicionRepo) UpdateEstado(id, estado string) error {
	return r.db.Model(&models.Requisicion{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *requisicionRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requisicion_id = ?", uid).
			Delete(&models.RequisicionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Requisicion{}, "id = ?", uid).Error
	})
}
