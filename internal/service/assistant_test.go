package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-assistant/internal/domain"
	"banking-assistant/internal/repository"
)

type stubClassifier struct {
	result domain.CanonicalIntent
}

func (s stubClassifier) Classify(_ context.Context, _ string) domain.CanonicalIntent {
	return s.result
}

func newAssistantFixture(t *testing.T) (*Assistant, *repository.Store) {
	t.Helper()
	store := repository.NewSeededStore(testLogger())
	transfers := NewTransferService(store, testLogger())
	assistant := NewAssistant(stubClassifier{}, store, transfers, 0.6, testLogger())
	return assistant, store
}

func intentOf(intent domain.Intent, confidence float64) domain.CanonicalIntent {
	return domain.CanonicalIntent{
		Intent:     intent,
		Confidence: confidence,
		Source:     domain.SourceNLUFallback,
	}
}

func TestDispatchConfidenceGate(t *testing.T) {
	assistant, _ := newAssistantFixture(t)

	tests := []struct {
		name   string
		intent domain.CanonicalIntent
	}{
		{"unknown intent", intentOf(domain.IntentUnknown, 0.3)},
		{"unknown even when confident", intentOf(domain.IntentUnknown, 0.95)},
		{"below threshold", intentOf(domain.IntentCheckBalance, 0.5)},
		{"below threshold with fields", domain.CanonicalIntent{
			Intent: domain.IntentSendMoney, Amount: 500, Receiver: "ravi", Confidence: 0.2,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := assistant.Dispatch(1, tt.intent, "")
			assert.Equal(t, "I didn't understand. Could you please rephrase or be more specific?", envelope.Reply)
			assert.Equal(t, domain.SourceSystem, envelope.Source)
			assert.Equal(t, tt.intent.Confidence, envelope.Confidence)
			assert.False(t, envelope.Data.RequirePassword)
		})
	}
}

func TestDispatchCheckBalance(t *testing.T) {
	assistant, _ := newAssistantFixture(t)

	envelope := assistant.Dispatch(1, intentOf(domain.IntentCheckBalance, 0.8), "")

	assert.Equal(t, "Your current account balance is ₹10000", envelope.Reply)
	assert.Equal(t, "home", envelope.Page)
	assert.Equal(t, domain.SourceNLUFallback, envelope.Source)
	require.NotNil(t, envelope.Data.Balance)
	assert.Equal(t, int64(10000), *envelope.Data.Balance)
}

func TestDispatchCheckBalanceUnknownAccount(t *testing.T) {
	assistant, _ := newAssistantFixture(t)

	envelope := assistant.Dispatch(99, intentOf(domain.IntentCheckBalance, 0.8), "")

	assert.Equal(t, "I couldn't find your account.", envelope.Reply)
	require.NotNil(t, envelope.Data.Success)
	assert.False(t, *envelope.Data.Success)
}

func TestDispatchSendMoneyMissingFields(t *testing.T) {
	assistant, _ := newAssistantFixture(t)

	intent := intentOf(domain.IntentSendMoney, 0.8)
	envelope := assistant.Dispatch(1, intent, "")

	assert.Equal(t, "I need the amount and the recipient to send money. For example: 'Send 500 rupees to John.'", envelope.Reply)
	assert.Equal(t, domain.SourceSystem, envelope.Source)
	assert.False(t, envelope.Data.RequirePassword)
}

func TestDispatchSendMoneyPreview(t *testing.T) {
	assistant, store := newAssistantFixture(t)

	intent := intentOf(domain.IntentSendMoney, 0.8)
	intent.Amount = 500
	intent.Receiver = "ravi"

	envelope := assistant.Dispatch(1, intent, "")

	assert.True(t, envelope.Data.RequirePassword)
	assert.Equal(t, "You are about to send ₹500 to Ravi. Please confirm with your password.", envelope.Reply)
	assert.Equal(t, "transfer", envelope.Page)

	sender, err := store.GetAccount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), sender.Balance, "preview must not move money")
}

func TestDispatchSendMoneyCommit(t *testing.T) {
	assistant, store := newAssistantFixture(t)

	intent := intentOf(domain.IntentSendMoney, 0.8)
	intent.Amount = 500
	intent.Receiver = "ravi"

	envelope := assistant.Dispatch(1, intent, "password123")

	assert.Equal(t, "Transferred ₹500 to Ravi successfully.", envelope.Reply)
	require.NotNil(t, envelope.Data.Success)
	assert.True(t, *envelope.Data.Success)
	require.NotNil(t, envelope.Data.Balance)
	assert.Equal(t, int64(9500), *envelope.Data.Balance)
	assert.False(t, envelope.Data.RequirePassword)

	receiver, err := store.GetAccount(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), receiver.Balance)
}

func TestDispatchSendMoneyAliasResolvesThroughContacts(t *testing.T) {
	assistant, store := newAssistantFixture(t)

	// "mom" is a contact alias for account 4 ("Mom"); display-name match would
	// also hit it, but the alias path must resolve the ID first.
	intent := intentOf(domain.IntentSendMoney, 0.8)
	intent.Amount = 300
	intent.Receiver = "mom"

	envelope := assistant.Dispatch(1, intent, "password123")
	require.NotNil(t, envelope.Data.Success)
	assert.True(t, *envelope.Data.Success)

	mom, err := store.GetAccount(4)
	require.NoError(t, err)
	assert.Equal(t, int64(25300), mom.Balance)
}

func TestDispatchSendMoneyUnknownReceiverListsContacts(t *testing.T) {
	assistant, store := newAssistantFixture(t)

	intent := intentOf(domain.IntentSendMoney, 0.8)
	intent.Amount = 500
	intent.Receiver = "unknownperson"

	envelope := assistant.Dispatch(1, intent, "password123")

	assert.Equal(t, "I couldn't find unknownperson in your contacts. You can send money to: jane, mom, ravi.", envelope.Reply)
	require.NotNil(t, envelope.Data.Success)
	assert.False(t, *envelope.Data.Success)

	sender, err := store.GetAccount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), sender.Balance)
}

func TestDispatchSendMoneyInsufficientFunds(t *testing.T) {
	assistant, store := newAssistantFixture(t)

	intent := intentOf(domain.IntentSendMoney, 0.8)
	intent.Amount = 20000
	intent.Receiver = "ravi"

	envelope := assistant.Dispatch(1, intent, "password123")

	assert.Equal(t, "Insufficient balance.", envelope.Reply)
	require.NotNil(t, envelope.Data.Success)
	assert.False(t, *envelope.Data.Success)

	sender, err := store.GetAccount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), sender.Balance)
}

func TestDispatchSendMoneyWrongPassword(t *testing.T) {
	assistant, store := newAssistantFixture(t)

	intent := intentOf(domain.IntentSendMoney, 0.8)
	intent.Amount = 500
	intent.Receiver = "ravi"

	envelope := assistant.Dispatch(1, intent, "hunter2")

	assert.Equal(t, "Incorrect password. The transfer was not completed.", envelope.Reply)
	require.NotNil(t, envelope.Data.Success)
	assert.False(t, *envelope.Data.Success)

	sender, err := store.GetAccount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), sender.Balance)
}

func TestDispatchTransactionHistory(t *testing.T) {
	assistant, _ := newAssistantFixture(t)

	intent := intentOf(domain.IntentTransactionHistory, 0.8)
	intent.TransactionCount = 2

	envelope := assistant.Dispatch(1, intent, "")

	assert.Equal(t, "Your recent transactions: Paid ₹2000 for groceries. Received ₹5000 from Salary", envelope.Reply)
	assert.Equal(t, "statements", envelope.Page)
	require.NotNil(t, envelope.Data.TransactionCount)
	assert.Equal(t, 2, *envelope.Data.TransactionCount)
	require.Len(t, envelope.Data.Transactions, 2)
	assert.Equal(t, "Paid ₹2000 for groceries", envelope.Data.Transactions[0].Description)
	assert.Equal(t, "2025-11-19 14:15", envelope.Data.Transactions[0].Timestamp)
	assert.Equal(t, "Received ₹5000 from Salary", envelope.Data.Transactions[1].Description)
	assert.Equal(t, "2025-11-20 09:30", envelope.Data.Transactions[1].Timestamp)
}

func TestDispatchTransactionHistoryUnlimited(t *testing.T) {
	assistant, _ := newAssistantFixture(t)

	envelope := assistant.Dispatch(3, intentOf(domain.IntentTransactionHistory, 0.8), "")

	require.NotNil(t, envelope.Data.TransactionCount)
	assert.Equal(t, 2, *envelope.Data.TransactionCount)
}

func TestHandleClassifiesThenDispatches(t *testing.T) {
	store := repository.NewSeededStore(testLogger())
	transfers := NewTransferService(store, testLogger())
	classifier := stubClassifier{result: domain.CanonicalIntent{
		Intent:     domain.IntentCheckBalance,
		Confidence: 0.9,
		Source:     domain.SourceNLUExternal,
	}}
	assistant := NewAssistant(classifier, store, transfers, 0.6, testLogger())

	envelope := assistant.Handle(context.Background(), 2, "what's my balance", "")
	assert.Equal(t, "Your current account balance is ₹7500", envelope.Reply)
	assert.Equal(t, domain.SourceNLUExternal, envelope.Source)
}
