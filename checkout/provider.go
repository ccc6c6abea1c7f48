package checkout

// Session is the slice of a hosted checkout session this service cares
// about. PaymentStatus is the provider's value ("paid", "unpaid", ...) and
// is empty when the session never reached payment at all.
type Session struct {
	ID            string
	URL           string
	TransactionID string // provider's payment-intent id
	PaymentStatus string
	AmountTotal   int64 // minor currency units
	CustomerEmail string
	IssueID       string // carried through session metadata
}

type CreateSessionParams struct {
	UnitAmount    int64 // minor currency units
	Currency      string
	ProductName   string
	CustomerEmail string
	IssueID       string
}

// Provider abstracts the payment processor so controllers can be tested
// against a fake.
type Provider interface {
	CreateSession(p CreateSessionParams) (*Session, error)
	GetSession(id string) (*Session, error)
}
