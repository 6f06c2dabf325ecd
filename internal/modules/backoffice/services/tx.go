package services

import (
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"gorm.io/gorm"
)

// txRepos bundles the repositories bound to one database transaction, so a
// match or payment mutation touches every table through the same tx.
type txRepos struct {
	transacciones repositories.BankTransactionRepo
	ordenes       repositories.OrdenRepo
	pagos         repositories.PagoRepo
}

// txRunner runs fn inside a database transaction with tx-scoped
// repositories. An error from fn rolls the whole transaction back.
type txRunner func(fn func(repos txRepos) error) error

func gormTxRunner(db *gorm.DB) txRunner {
	return func(fn func(repos txRepos) error) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return fn(txRepos{
				transacciones: repositories.NewBankTransactionRepo(tx),
				ordenes:       repositories.NewOrdenRepo(tx),
				pagos:         repositories.NewPagoRepo(tx),
			})
		})
	}
}
