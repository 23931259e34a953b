package service

import (
	"log/slog"
	"strconv"

	"banking-assistant/internal/domain"
	"banking-assistant/internal/errors"
)

type AccountService struct {
	repo   domain.AccountRepository
	logger *slog.Logger
}

func NewAccountService(repo domain.AccountRepository, logger *slog.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AccountService) GetAccount(accountID string) (*domain.Account, error) {
	id, err := strconv.ParseInt(accountID, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.NewAppError(errors.InvalidInput, "account ID must be a positive integer")
	}
	return s.repo.GetAccount(id)
}

// History returns the account together with its most recent limit
// transactions and the spoken summary. Limit <= 0 returns the full ledger.
func (s *AccountService) History(accountID string, limit int) (*domain.Account, []domain.Transaction, string, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, nil, "", err
	}
	entries := LastN(account.Transactions, limit)
	return account, entries, FormatHistory(account.Transactions, limit), nil
}
