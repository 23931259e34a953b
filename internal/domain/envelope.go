package domain

// Envelope is the uniform response contract every assistant branch
// populates, including error branches.
type Envelope struct {
	Reply      string       `json:"reply"`
	Confidence float64      `json:"confidence"`
	Source     Source       `json:"source"`
	Page       string       `json:"page,omitempty"`
	Data       EnvelopeData `json:"data"`
}

// EnvelopeData carries the auxiliary fields of a reply. RequirePassword is
// serialized on every envelope; the rest only when the branch sets them.
type EnvelopeData struct {
	RequirePassword  bool          `json:"require_password"`
	Success          *bool         `json:"success,omitempty"`
	Balance          *int64        `json:"balance,omitempty"`
	TransactionCount *int          `json:"transaction_count,omitempty"`
	Transactions     []Transaction `json:"transactions,omitempty"`
}

func BoolPtr(v bool) *bool    { return &v }
func Int64Ptr(v int64) *int64 { return &v }
func IntPtr(v int) *int       { return &v }
