package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"banking-assistant/internal/domain"
	"banking-assistant/internal/errors"
)

// TransferService validates and executes money movement between two accounts.
// Confirmation is stateless: a request without a credential terminates as a
// preview, and the client resends the full request with the credential to
// commit. Nothing is retained between the two calls.
type TransferService struct {
	repo   domain.AccountRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewTransferService(repo domain.AccountRepository, logger *slog.Logger) *TransferService {
	return &TransferService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// TransferOutcome describes a terminal transfer state that is not a
// rejection: either a preview awaiting the credential, or a committed move.
type TransferOutcome struct {
	Committed       bool
	RequirePassword bool
	TransferID      uuid.UUID
	Amount          int64
	Receiver        string
	SenderBalance   int64
}

// Transfer runs one confirmation round. Validation order is fixed: amount,
// sender existence, credential presence (preview short-circuit, zero
// mutation), credential correctness, sufficient balance, receiver
// resolution. The commit applies both ledger updates and both log appends
// under one atomic scope with one shared timestamp.
func (s *TransferService) Transfer(senderID int64, amount int64, receiverName, credential string) (*TransferOutcome, error) {
	if amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	sender, err := s.repo.GetAccount(senderID)
	if err != nil {
		return nil, err
	}

	if credential == "" {
		s.logger.Info("Transfer preview requested",
			"sender_id", senderID,
			"amount", amount,
			"receiver", receiverName)
		return &TransferOutcome{
			RequirePassword: true,
			Amount:          amount,
			Receiver:        receiverName,
			SenderBalance:   sender.Balance,
		}, nil
	}

	if !sender.Credential.Verify(credential) {
		s.logger.Warn("Transfer rejected: credential mismatch", "sender_id", senderID)
		return nil, errors.ErrCredentialMismatch
	}

	outcome := &TransferOutcome{
		Committed:  true,
		TransferID: uuid.New(),
		Amount:     amount,
	}

	err = s.repo.WithAtomic(func(accounts domain.Accounts) error {
		// Re-read under the atomic scope so two concurrent transfers cannot
		// base their commits on the same stale balance.
		src, err := accounts.Get(senderID)
		if err != nil {
			return err
		}
		if src.Balance < amount {
			return errors.ErrInsufficientFunds
		}

		dst, err := accounts.FindByName(receiverName)
		if err != nil {
			return err
		}
		if dst.ID == src.ID {
			return errors.ErrSameAccount
		}

		timestamp := s.now().Format(domain.TimestampLayout)
		src.Balance -= amount
		dst.Balance += amount
		src.Transactions = append(src.Transactions, domain.Transaction{
			TransferID:   outcome.TransferID,
			Kind:         domain.KindDebit,
			Amount:       amount,
			Description:  fmt.Sprintf("Sent ₹%d to %s", amount, dst.Name),
			Timestamp:    timestamp,
			BalanceAfter: src.Balance,
		})
		dst.Transactions = append(dst.Transactions, domain.Transaction{
			TransferID:   outcome.TransferID,
			Kind:         domain.KindCredit,
			Amount:       amount,
			Description:  fmt.Sprintf("Received ₹%d from %s", amount, src.Name),
			Timestamp:    timestamp,
			BalanceAfter: dst.Balance,
		})

		outcome.Receiver = dst.Name
		outcome.SenderBalance = src.Balance
		return nil
	})
	if err != nil {
		s.logger.Warn("Transfer rejected",
			"sender_id", senderID,
			"receiver", receiverName,
			"amount", amount,
			"error", err)
		return nil, err
	}

	s.logger.Info("Transfer completed",
		"transfer_id", outcome.TransferID,
		"sender_id", senderID,
		"receiver", outcome.Receiver,
		"amount", amount)
	return outcome, nil
}

// ReceiverExists reports whether a receiver resolves by exact
// case-insensitive display-name match. Read-only; callers use it to
// short-circuit with a contact listing before the stateful path.
func (s *TransferService) ReceiverExists(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := s.repo.FindByName(name)
	return err == nil
}
