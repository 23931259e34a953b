package domain

import (
	"github.com/google/uuid"
)

type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

// Transaction is one immutable ledger entry. A committed transfer appends
// exactly two of these, a debit on the sender and a credit on the receiver,
// sharing one TransferID and one timestamp.
type Transaction struct {
	TransferID   uuid.UUID       `json:"transfer_id"`
	Kind         TransactionKind `json:"type"`
	Amount       int64           `json:"amount"`
	Description  string          `json:"description"`
	Timestamp    string          `json:"timestamp"`
	BalanceAfter int64           `json:"balance_after"`
}
