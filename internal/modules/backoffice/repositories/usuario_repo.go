package repositories

import (
	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

type UsuarioRepo interface {
	Create(usuario *models.Usuario) error
	GetByID(id string) (*models.Usuario, error)
	GetByEmail(email string) (*models.Usuario, error)
	List() ([]models.Usuario, error)
	Update(usuario *models.Usuario) error
}

type usuarioRepo struct {
	db *gorm.DB
}

func NewUsuarioRepo(db *gorm.DB) UsuarioRepo {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(usuario *models.Usuario) error {
	return r.db.Create(usuario).Error
}

func (r *usuarioRepo) GetByID(id string) (*models.Usuario, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var usuario models.Usuario
	err = r.db.First(&usuario, "id = ?", uid).Error
	return &usuario, err
}

func (r *usuarioRepo) GetByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.Where("email = ?", email).First(&usuario).Error
	return &usuario, err
}

func (r *usuarioRepo) List() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Order("nombre ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Update(usuario *models.Usuario) error {
	return r.db.Save(usuario).Error
}
