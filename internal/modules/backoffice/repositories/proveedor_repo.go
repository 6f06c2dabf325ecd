package repositories

import (
	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

type ProveedorRepo interface {
	Create(proveedor *models.Proveedor) error
	GetByID(id string) (*models.Proveedor, error)
	GetByCodigo(codigo string) (*models.Proveedor, error)
	List(soloActivos bool, limit int) ([]models.Proveedor, error)
	Update(proveedor *models.Proveedor) error
	Delete(id string) error
}

type proveedorRepo struct {
	db *gorm.DB
}

func NewProveedorRepo(db *gorm.DB) ProveedorRepo {
	return &proveedorRepo{db: db}
}

func (r *proveedorRepo) Create(proveedor *models.Proveedor) error {
	return r.db.Create(proveedor).Error
}

func (r *proveedorRepo) GetByID(id string) (*models.Proveedor, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var proveedor models.Proveedor
	err = r.db.First(&proveedor, "id = ?", uid).Error
	return &proveedor, err
}

func (r *proveedorRepo) GetByCodigo(codigo string) (*models.Proveedor, error) {
	var proveedor models.Proveedor
	err := r.db.Where("codigo = ?", codigo).First(&proveedor).Error
	return &proveedor, err
}

func (r *proveedorRepo) List(soloActivos bool, limit int) ([]models.Proveedor, error) {
	var proveedores []models.Proveedor
	query := r.db.Order("nombre ASC")

	if soloActivos {
		query = query.Where("activo = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) Update(proveedor *models.Proveedor) error {
	return r.db.Save(proveedor).Error
}

func (r *proveedorRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&models.Proveedor{}, "id = ?", uid).Error
}
