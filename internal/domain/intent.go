package domain

type Intent string

const (
	IntentCheckBalance       Intent = "check_balance"
	IntentSendMoney          Intent = "send_money"
	IntentTransactionHistory Intent = "transaction_history"
	IntentUnknown            Intent = "unknown"
)

// Source records which layer produced a classification or a reply.
type Source string

const (
	SourceSystem      Source = "system"
	SourceNLUFallback Source = "nlu_fallback"
	SourceNLUExternal Source = "nlu_external"
)

// CanonicalIntent is the normalized classification record consumed by the
// dispatcher. Zero values mean "absent": Amount and TransactionCount are
// always positive when extracted, Receiver is non-empty when extracted.
type CanonicalIntent struct {
	Intent           Intent
	Amount           int64
	Receiver         string
	TransactionCount int
	Confidence       float64
	Source           Source
}
