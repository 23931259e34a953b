package service

import (
	"fmt"
	"strings"

	"banking-assistant/internal/domain"
)

const (
	noTransactionsReply = "No transactions found."
	historyLeadIn       = "Your recent transactions: "
	maxSpokenEntries    = 5
)

// LastN returns the most recent limit entries, preserving chronological
// order. A non-positive limit means no bound.
func LastN(transactions []domain.Transaction, limit int) []domain.Transaction {
	if limit > 0 && limit < len(transactions) {
		return transactions[len(transactions)-limit:]
	}
	return transactions
}

// FormatHistory renders a bounded slice of the ledger into a spoken-friendly
// summary. Pure function, no side effects.
func FormatHistory(transactions []domain.Transaction, limit int) string {
	entries := LastN(transactions, limit)

	switch {
	case len(entries) == 0:
		return noTransactionsReply
	case len(entries) == 1:
		return entries[0].Description
	}

	descriptions := make([]string, 0, len(entries))
	for _, entry := range entries {
		descriptions = append(descriptions, entry.Description)
	}

	if len(descriptions) <= maxSpokenEntries {
		return historyLeadIn + strings.Join(descriptions, ". ")
	}
	shown := strings.Join(descriptions[:maxSpokenEntries], ". ")
	return historyLeadIn + shown + fmt.Sprintf(" (and %d more)", len(descriptions)-maxSpokenEntries)
}
