package mapping

import (
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ExternalID:  d.ID,
		TxnDate:     d.Date.UTC(),
		Amount:      d.Amount,
		Category:    string(d.Category),
		Status:      string(d.Status),
		UserID:      d.UserID,
		UserProfile: d.UserProfile,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ExternalID,
		Date:        m.TxnDate.UTC(),
		Amount:      m.Amount,
		Category:    domain.Category(m.Category),
		Status:      domain.Status(m.Status),
		UserID:      m.UserID,
		UserProfile: m.UserProfile,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
