package checkout

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeProvider talks to Stripe hosted Checkout.
type StripeProvider struct {
	SuccessURL string // may contain the {CHECKOUT_SESSION_ID} placeholder
	CancelURL  string
}

func NewStripeProvider(secretKey, successURL, cancelURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}
}

func (sp *StripeProvider) CreateSession(p CreateSessionParams) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(p.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(p.CustomerEmail),
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(sp.SuccessURL),
		CancelURL:     stripe.String(sp.CancelURL),
	}
	params.AddMetadata("issueId", p.IssueID)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &Session{
		ID:  s.ID,
		URL: s.URL,
	}, nil
}

func (sp *StripeProvider) GetSession(id string) (*Session, error) {
	s, err := session.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session %s: %w", id, err)
	}

	out := &Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	if s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.Metadata != nil {
		out.IssueID = s.Metadata["issueId"]
	}
	return out, nil
}
