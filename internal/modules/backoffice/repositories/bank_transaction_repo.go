package repositories

import (
	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"gorm.io/gorm"
)

type BankTransactionRepo interface {
	CreateBatch(transactions []*models.BankTransaction) error
	GetByID(id string) (*models.BankTransaction, error)
	List(matched *bool, limit int) ([]models.BankTransaction, error)
	// MarkMatched flips the unmatched → matched transition. It reports the
	// number of rows affected so callers can detect a lost race against a
	// concurrent match of the same transaction.
	MarkMatched(id, ordenID uuid.UUID, confidence int, manual bool) (int64, error)
	Unmatch(id uuid.UUID) (int64, error)
}

type bankTransactionRepo struct {
	db *gorm.DB
}

func NewBankTransactionRepo(db *gorm.DB) BankTransactionRepo {
	return &bankTransactionRepo{db: db}
}

func (r *bankTransactionRepo) CreateBatch(transactions []*models.BankTransaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return r.db.Create(&transactions).Error
}

func (r *bankTransactionRepo) GetByID(id string) (*models.BankTransaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var transaction models.BankTransaction
	err = r.db.First(&transaction, "id = ?", uid).Error
	return &transaction, err
}

func (r *bankTransactionRepo) List(matched *bool, limit int) ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	query := r.db.Order("created_at DESC")

	if matched != nil {
		query = query.Where("matched = ?", *matched)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&transactions).Error
	return transactions, err
}

func (r *bankTransactionRepo) MarkMatched(id, ordenID uuid.UUID, confidence int, manual bool) (int64, error) {
	result := r.db.Model(&models.BankTransaction{}).
		Where("id = ? AND matched = ?", id, false).
		Updates(map[string]interface{}{
			"matched":          true,
			"orden_compra_id":  ordenID,
			"match_confidence": confidence,
			"match_manual":     manual,
		})
	return result.RowsAffected, result.Error
}

func (r *bankTransactionRepo) Unmatch(id uuid.UUID) (int64, error) {
	result := r.db.Model(&models.BankTransaction{}).
		Where("id = ? AND matched = ?", id, true).
		Updates(map[string]interface{}{
			"matched":          false,
			"orden_compra_id":  nil,
			"match_confidence": 0,
			"match_manual":     false,
		})
	return result.RowsAffected, result.Error
}
