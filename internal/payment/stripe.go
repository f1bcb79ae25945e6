package payment

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// StripeGateway crée des Checkout Sessions Stripe en mode paiement unique.
// La clé secrète est installée globalement (stripe.Key) au démarrage.
type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.FailURL),
		CustomerEmail:     stripe.String(req.CustomerEmail),
		ClientReferenceID: stripe.String(req.TransactionID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Cart Items"),
					},
					// Stripe attend des centimes
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"tran_id":  req.TransactionID,
			"email":    req.CustomerEmail,
			"name":     req.CustomerName,
			"address":  req.Address,
			"postcode": req.Postcode,
			"phone":    req.Phone,
			"country":  req.Country,
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		return nil, fmt.Errorf("création session de paiement: %w", err)
	}

	log.Printf("💳 Session de paiement créée : %s (%.2f %s) pour %s",
		s.ID, req.Amount, req.Currency, req.CustomerEmail)

	return &CheckoutSession{
		RedirectURL: s.URL,
		SessionID:   s.ID,
	}, nil
}
