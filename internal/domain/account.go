package domain

// TimestampLayout is the format used for transaction timestamps.
const TimestampLayout = "2006-01-02 15:04"

type Account struct {
	ID           int64            `json:"account_id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Credential   Credential       `json:"-"`
	Balance      int64            `json:"balance"`
	Contacts     map[string]int64 `json:"-"`
	Transactions []Transaction    `json:"-"`
}

// AccountRepository provides snapshot reads of account state plus an atomic
// scope for multi-account updates. Implementations must serialize WithAtomic
// against all other reads and writes, so a transfer's debit and credit are
// never observed half-applied.
type AccountRepository interface {
	GetAccount(id int64) (*Account, error)
	FindByName(name string) (*Account, error)
	ContactNames(id int64) ([]string, error)
	ResolveContact(id int64, alias string) (int64, bool)
	WithAtomic(fn func(Accounts) error) error
}

// Accounts is the view handed to a WithAtomic callback. Returned accounts are
// live records: mutations apply directly and become visible when the callback
// returns.
type Accounts interface {
	Get(id int64) (*Account, error)
	FindByName(name string) (*Account, error)
}
