package repositories

import (
	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

type ObraRepo interface {
	Create(obra *models.Obra) error
	GetByID(id string) (*models.Obra, error)
	GetByCodigo(codigo string) (*models.Obra, error)
	List(estado string, limit int) ([]models.Obra, error)
	Update(obra *models.Obra) error
	Delete(id string) error
	Count() (int64, error)
}

type obraRepo struct {
	db *gorm.DB
}

func NewObraRepo(db *gorm.DB) ObraRepo {
	return &obraRepo{db: db}
}

func (r *obraRepo) Create(obra *models.Obra) error {
	return r.db.Create(obra).Error
}

func (r *obraRepo) GetByID(id string) (*models.Obra, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var obra models.Obra
	err = r.db.First(&obra, "id = ?", uid).Error
	return &obra, err
}

func (r *obraRepo) GetByCodigo(codigo string) (*models.Obra, error) {
	var obra models.Obra
	err := r.db.Where("codigo = ?", codigo).First(&obra).Error
	return &obra, err
}

func (r *obraRepo) List(estado string, limit int) ([]models.Obra, error) {
	var obras []models.Obra
	query := r.db.Order("created_at DESC")

	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&obras).Error
	return obras, err
}

func (r *obraRepo) Update(obra *models.Obra) error {
	return r.db.Save(obra).Error
}

func (r *obraRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&models.Obra{}, "id = ?", uid).Error
}

func (r *obraRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Obra{}).Count(&count).Error
	return count, err
}
