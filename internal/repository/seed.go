package repository

import (
	"log/slog"

	"github.com/google/uuid"

	"banking-assistant/internal/domain"
)

// NewSeededStore builds a store pre-provisioned with the demo accounts. Every
// restart produces the same dataset.
func NewSeededStore(logger *slog.Logger) *Store {
	store := NewStore(logger)
	for _, account := range seedAccounts() {
		if err := store.AddAccount(account); err != nil {
			logger.Error("Failed to seed account", "account_id", account.ID, "error", err)
		}
	}
	return store
}

// Ledgers are chronological, most recent last: the final entry's
// balance_after equals the account balance.
func seedAccounts() []*domain.Account {
	return []*domain.Account{
		{
			ID:         1,
			Name:       "John Doe",
			Email:      "john@example.com",
			Credential: domain.PlainCredential("password123"),
			Balance:    10000,
			Contacts:   map[string]int64{"ravi": 3, "jane": 2, "mom": 4},
			Transactions: []domain.Transaction{
				txn(domain.KindCredit, 1500, "Received ₹1500 from Mom", "2025-11-17 16:20", 8500),
				txn(domain.KindDebit, 1000, "Sent ₹1000 to Ravi", "2025-11-18 11:45", 7000),
				txn(domain.KindDebit, 2000, "Paid ₹2000 for groceries", "2025-11-19 14:15", 8000),
				txn(domain.KindCredit, 5000, "Received ₹5000 from Salary", "2025-11-20 09:30", 10000),
			},
		},
		{
			ID:         2,
			Name:       "Jane Smith",
			Email:      "jane@example.com",
			Credential: domain.PlainCredential("jane2024"),
			Balance:    7500,
			Contacts:   map[string]int64{"john": 1, "mike": 5, "ravi": 3},
			Transactions: []domain.Transaction{
				txn(domain.KindDebit, 150, "Paid ₹150 for coffee", "2025-11-17 09:15", 4850),
				txn(domain.KindDebit, 2000, "Sent ₹2000 to Mike", "2025-11-18 15:45", 5000),
				txn(domain.KindDebit, 500, "Paid ₹500 for electricity", "2025-11-19 12:30", 7000),
				txn(domain.KindCredit, 3000, "Received ₹3000 from Freelance", "2025-11-20 10:00", 7500),
			},
		},
		{
			ID:         3,
			Name:       "Ravi",
			Email:      "ravi@example.com",
			Credential: domain.PlainCredential("ravi123"),
			Balance:    3000,
			Contacts:   map[string]int64{"john": 1, "jane": 2},
			Transactions: []domain.Transaction{
				txn(domain.KindDebit, 500, "Paid ₹500 for mobile recharge", "2025-11-17 10:20", 2500),
				txn(domain.KindCredit, 1000, "Received ₹1000 from John Doe", "2025-11-18 11:45", 3000),
			},
		},
		{
			ID:         4,
			Name:       "Mom",
			Email:      "mom@example.com",
			Credential: domain.PlainCredential("mom1234"),
			Balance:    25000,
			Contacts:   map[string]int64{"john": 1},
			Transactions: []domain.Transaction{
				txn(domain.KindDebit, 1500, "Sent ₹1500 to John Doe", "2025-11-17 16:20", 25000),
			},
		},
		{
			ID:         5,
			Name:       "Mike",
			Email:      "mike@example.com",
			Credential: domain.PlainCredential("mike456"),
			Balance:    5500,
			Contacts:   map[string]int64{"jane": 2},
			Transactions: []domain.Transaction{
				txn(domain.KindCredit, 2000, "Received ₹2000 from Jane Smith", "2025-11-18 15:45", 5500),
			},
		},
	}
}

func txn(kind domain.TransactionKind, amount int64, description, timestamp string, balanceAfter int64) domain.Transaction {
	return domain.Transaction{
		TransferID:   uuid.New(),
		Kind:         kind,
		Amount:       amount,
		Description:  description,
		Timestamp:    timestamp,
		BalanceAfter: balanceAfter,
	}
}
