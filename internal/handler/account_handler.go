package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"banking-assistant/internal/domain"
	"banking-assistant/internal/errors"
	"banking-assistant/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type AccountResponse struct {
	AccountID int64  `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Balance   int64  `json:"balance"`
}

type TransactionsResponse struct {
	AccountID        int64                `json:"account_id"`
	TransactionCount int                  `json:"transaction_count"`
	Summary          string               `json:"summary"`
	Transactions     []domain.Transaction `json:"transactions"`
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	account, err := h.accountService.GetAccount(vars["account_id"])
	if err != nil {
		writeAccountError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AccountResponse{
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Balance:   account.Balance,
	})
}

func (h *AccountHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, errors.NewAppError(errors.InvalidInput, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	account, transactions, summary, err := h.accountService.History(vars["account_id"], limit)
	if err != nil {
		writeAccountError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TransactionsResponse{
		AccountID:        account.ID,
		TransactionCount: len(transactions),
		Summary:          summary,
		Transactions:     transactions,
	})
}

func writeAccountError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		writeError(w, appErr)
		return
	}
	writeError(w, errors.NewAppError(errors.InternalError, "an unexpected error occurred"))
}
