package mapping

import (
	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/moedinha/moedinha_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		OrgID:         d.OrgID,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
		BucketID:      d.BucketID,
		Type:          string(d.Type),
		Status:        string(d.Status),
		Amount:        d.Amount,
		Description:   d.Description,
		TxnDate:       d.Date,
		Metadata:      d.Metadata,
		DeletedAt:     d.DeletedAt,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		OrgID:         m.OrgID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		BucketID:      m.BucketID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.TxnDate,
		Metadata:      m.Metadata,
		DeletedAt:     m.DeletedAt,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
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
