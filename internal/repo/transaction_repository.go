package repo

import "github.com/gittydia/IMS-BAO/internal/models"

// TransactionRepository stores order↔student linkage records. They are
// append-mostly: created alongside a student's order and read back with it.
type TransactionRepository interface {
	Create(txn models.Transaction) (models.Transaction, error)
	GetByOrderID(orderID int) (models.Transaction, error)
}
