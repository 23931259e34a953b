package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-assistant/internal/errors"
	"banking-assistant/internal/repository"
)

func TestAccountServiceGetAccount(t *testing.T) {
	svc := NewAccountService(repository.NewSeededStore(testLogger()), testLogger())

	account, err := svc.GetAccount("1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", account.Name)
	assert.Equal(t, int64(10000), account.Balance)
}

func TestAccountServiceGetAccountInvalidID(t *testing.T) {
	svc := NewAccountService(repository.NewSeededStore(testLogger()), testLogger())

	for _, raw := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := svc.GetAccount(raw)
		require.Error(t, err, "id %q", raw)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.InvalidInput, appErr.Code)
	}
}

func TestAccountServiceGetAccountNotFound(t *testing.T) {
	svc := NewAccountService(repository.NewSeededStore(testLogger()), testLogger())

	_, err := svc.GetAccount("42")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestAccountServiceHistory(t *testing.T) {
	svc := NewAccountService(repository.NewSeededStore(testLogger()), testLogger())

	account, transactions, summary, err := svc.History("1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Paid ₹2000 for groceries", transactions[0].Description)
	assert.Equal(t, "Received ₹5000 from Salary", transactions[1].Description)
	assert.Equal(t, "Your recent transactions: Paid ₹2000 for groceries. Received ₹5000 from Salary", summary)

	_, transactions, _, err = svc.History("1", 0)
	require.NoError(t, err)
	assert.Len(t, transactions, 4)
}
