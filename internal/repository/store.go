package repository

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"banking-assistant/internal/domain"
	"banking-assistant/internal/errors"
)

// Store is the in-memory account store. A single mutex serializes every read
// and write, so a WithAtomic scope spanning two accounts can never interleave
// with a concurrent balance read or another transfer.
//
// State is process-lifetime only: a restart reseeds from scratch.
type Store struct {
	mu       sync.Mutex
	accounts map[int64]*domain.Account
	logger   *slog.Logger
}

// NewStore creates an empty Store instance.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		accounts: make(map[int64]*domain.Account),
		logger:   logger,
	}
}

var _ domain.AccountRepository = (*Store)(nil)

// AddAccount registers an account. Intended for seeding and tests; there is
// no account-creation operation in the assistant itself.
func (s *Store) AddAccount(account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return errors.NewAppErrorf(errors.InvalidInput, "account %d already exists", account.ID)
	}
	if account.Balance < 0 {
		return errors.ErrInvalidAmount
	}
	s.accounts[account.ID] = account
	s.logger.Info("Account provisioned", "account_id", account.ID, "name", account.Name)
	return nil
}

// GetAccount returns a snapshot of the account. Mutating the copy has no
// effect on stored state.
func (s *Store) GetAccount(id int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return snapshot(account), nil
}

// FindByName returns a snapshot of the account whose display name matches
// exactly, compared case-insensitively. No fuzzy matching.
func (s *Store) FindByName(name string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findByNameLocked(name)
	if err != nil {
		return nil, err
	}
	return snapshot(account), nil
}

// ContactNames returns the account's contact aliases, sorted for stable output.
func (s *Store) ContactNames(id int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	names := make([]string, 0, len(account.Contacts))
	for alias := range account.Contacts {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names, nil
}

// ResolveContact looks up a contact alias (case-insensitive) in the account's
// contact list and returns the target account ID.
func (s *Store) ResolveContact(id int64, alias string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return 0, false
	}
	for name, target := range account.Contacts {
		if strings.EqualFold(name, alias) {
			return target, true
		}
	}
	return 0, false
}

// WithAtomic runs fn while holding the store lock. The accounts handed to fn
// are the live records; fn must complete all validation before mutating
// anything, since there is no rollback.
func (s *Store) WithAtomic(fn func(domain.Accounts) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(liveAccounts{store: s})
}

func (s *Store) findByNameLocked(name string) (*domain.Account, error) {
	for _, account := range s.accounts {
		if strings.EqualFold(account.Name, name) {
			return account, nil
		}
	}
	return nil, errors.ErrReceiverNotFound
}

// liveAccounts exposes the underlying records to a WithAtomic callback. The
// caller already holds the store lock.
type liveAccounts struct {
	store *Store
}

func (a liveAccounts) Get(id int64) (*domain.Account, error) {
	account, ok := a.store.accounts[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return account, nil
}

func (a liveAccounts) FindByName(name string) (*domain.Account, error) {
	return a.store.findByNameLocked(name)
}

func snapshot(account *domain.Account) *domain.Account {
	cp := *account
	cp.Contacts = make(map[string]int64, len(account.Contacts))
	for alias, target := range account.Contacts {
		cp.Contacts[alias] = target
	}
	cp.Transactions = make([]domain.Transaction, len(account.Transactions))
	copy(cp.Transactions, account.Transactions)
	return &cp
}
