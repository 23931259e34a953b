package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"banking-assistant/internal/domain"
	"banking-assistant/internal/errors"
)

const (
	clarificationReply = "I didn't understand. Could you please rephrase or be more specific?"
	transferHintReply  = "I need the amount and the recipient to send money. For example: 'Send 500 rupees to John.'"
)

// Classifier produces a canonical intent for an utterance. It never errors;
// degraded classification shows up as low confidence instead.
type Classifier interface {
	Classify(ctx context.Context, utterance string) domain.CanonicalIntent
}

// Assistant is the confidence-gated router from canonical intents to the
// three banking operations. Every branch, error branches included, produces a
// complete response envelope.
type Assistant struct {
	classifier Classifier
	repo       domain.AccountRepository
	transfers  *TransferService
	threshold  float64
	logger     *slog.Logger
}

func NewAssistant(
	classifier Classifier,
	repo domain.AccountRepository,
	transfers *TransferService,
	threshold float64,
	logger *slog.Logger,
) *Assistant {
	return &Assistant{
		classifier: classifier,
		repo:       repo,
		transfers:  transfers,
		threshold:  threshold,
		logger:     logger,
	}
}

// Handle classifies the utterance and dispatches the result.
func (a *Assistant) Handle(ctx context.Context, accountID int64, utterance, credential string) *domain.Envelope {
	intent := a.classifier.Classify(ctx, utterance)
	a.logger.Info("Classified utterance",
		"account_id", accountID,
		"intent", intent.Intent,
		"confidence", intent.Confidence,
		"source", intent.Source)
	return a.Dispatch(accountID, intent, credential)
}

// Dispatch routes a canonical intent to an operation. The confidence gate is
// the single gate for the whole pipeline: unknown or low-confidence intents
// yield a clarification envelope without touching any operation.
func (a *Assistant) Dispatch(accountID int64, intent domain.CanonicalIntent, credential string) *domain.Envelope {
	if intent.Intent == domain.IntentUnknown || intent.Confidence < a.threshold {
		return &domain.Envelope{
			Reply:      clarificationReply,
			Confidence: intent.Confidence,
			Source:     domain.SourceSystem,
		}
	}

	switch intent.Intent {
	case domain.IntentCheckBalance:
		return a.checkBalance(accountID, intent)
	case domain.IntentSendMoney:
		return a.sendMoney(accountID, intent, credential)
	case domain.IntentTransactionHistory:
		return a.transactionHistory(accountID, intent)
	default:
		return &domain.Envelope{
			Reply:      clarificationReply,
			Confidence: intent.Confidence,
			Source:     domain.SourceSystem,
		}
	}
}

func (a *Assistant) checkBalance(accountID int64, intent domain.CanonicalIntent) *domain.Envelope {
	account, err := a.repo.GetAccount(accountID)
	if err != nil {
		return a.failure(err, intent)
	}
	return &domain.Envelope{
		Reply:      fmt.Sprintf("Your current account balance is ₹%d", account.Balance),
		Confidence: intent.Confidence,
		Source:     intent.Source,
		Page:       "home",
		Data: domain.EnvelopeData{
			Balance: domain.Int64Ptr(account.Balance),
		},
	}
}

func (a *Assistant) sendMoney(accountID int64, intent domain.CanonicalIntent, credential string) *domain.Envelope {
	if intent.Amount <= 0 || intent.Receiver == "" {
		return &domain.Envelope{
			Reply:      transferHintReply,
			Confidence: intent.Confidence,
			Source:     domain.SourceSystem,
		}
	}

	receiver := a.resolveReceiver(accountID, intent.Receiver)
	if !a.transfers.ReceiverExists(receiver) {
		return a.unknownReceiver(accountID, intent)
	}

	outcome, err := a.transfers.Transfer(accountID, intent.Amount, receiver, credential)
	if err != nil {
		return a.failure(err, intent)
	}

	if outcome.RequirePassword {
		return &domain.Envelope{
			Reply:      fmt.Sprintf("You are about to send ₹%d to %s. Please confirm with your password.", outcome.Amount, outcome.Receiver),
			Confidence: intent.Confidence,
			Source:     intent.Source,
			Page:       "transfer",
			Data: domain.EnvelopeData{
				RequirePassword: true,
			},
		}
	}

	return &domain.Envelope{
		Reply:      fmt.Sprintf("Transferred ₹%d to %s successfully.", outcome.Amount, outcome.Receiver),
		Confidence: intent.Confidence,
		Source:     intent.Source,
		Page:       "transfer",
		Data: domain.EnvelopeData{
			Success: domain.BoolPtr(true),
			Balance: domain.Int64Ptr(outcome.SenderBalance),
		},
	}
}

func (a *Assistant) transactionHistory(accountID int64, intent domain.CanonicalIntent) *domain.Envelope {
	account, err := a.repo.GetAccount(accountID)
	if err != nil {
		return a.failure(err, intent)
	}

	entries := LastN(account.Transactions, intent.TransactionCount)
	return &domain.Envelope{
		Reply:      FormatHistory(account.Transactions, intent.TransactionCount),
		Confidence: intent.Confidence,
		Source:     intent.Source,
		Page:       "statements",
		Data: domain.EnvelopeData{
			TransactionCount: domain.IntPtr(len(entries)),
			Transactions:     entries,
		},
	}
}

// resolveReceiver consults the sender's contact aliases before the transfer
// path. Aliases map to account IDs; the resolved display name is what the
// transfer service matches on. Unresolvable names pass through unchanged.
func (a *Assistant) resolveReceiver(accountID int64, name string) string {
	targetID, ok := a.repo.ResolveContact(accountID, name)
	if !ok {
		return name
	}
	target, err := a.repo.GetAccount(targetID)
	if err != nil {
		return name
	}
	return target.Name
}

func (a *Assistant) unknownReceiver(accountID int64, intent domain.CanonicalIntent) *domain.Envelope {
	reply := fmt.Sprintf("I couldn't find %s in your contacts.", intent.Receiver)
	if contacts, err := a.repo.ContactNames(accountID); err == nil && len(contacts) > 0 {
		reply = fmt.Sprintf("I couldn't find %s in your contacts. You can send money to: %s.",
			intent.Receiver, strings.Join(contacts, ", "))
	}
	return &domain.Envelope{
		Reply:      reply,
		Confidence: intent.Confidence,
		Source:     intent.Source,
		Data: domain.EnvelopeData{
			Success: domain.BoolPtr(false),
		},
	}
}

// failure converts a domain error into a user-facing envelope. No domain
// failure propagates as a protocol-level error.
func (a *Assistant) failure(err error, intent domain.CanonicalIntent) *domain.Envelope {
	reply := "Something went wrong. Please try again."
	if appErr, ok := err.(*errors.AppError); ok {
		switch appErr.Code {
		case errors.InsufficientFunds:
			reply = "Insufficient balance."
		case errors.CredentialMismatch:
			reply = "Incorrect password. The transfer was not completed."
		case errors.ReceiverNotFound:
			reply = fmt.Sprintf("I couldn't find %s in your contacts.", intent.Receiver)
		case errors.InvalidAmount:
			reply = "The amount must be a positive number."
		case errors.UserNotFound:
			reply = "I couldn't find your account."
		case errors.InvalidInput:
			reply = "You can't send money to your own account."
		}
	} else {
		a.logger.Error("Unexpected dispatcher error", "error", err)
	}
	return &domain.Envelope{
		Reply:      reply,
		Confidence: intent.Confidence,
		Source:     intent.Source,
		Data: domain.EnvelopeData{
			Success: domain.BoolPtr(false),
		},
	}
}
