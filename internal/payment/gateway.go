package payment

import "context"

// CheckoutRequest décrit une tentative de paiement à initier côté gateway.
// Le montant est en unité de devise (euros, pas centimes).
type CheckoutRequest struct {
	TransactionID string
	Amount        float64
	Currency      string

	// URLs de callback, déjà paramétrées par le transaction_id.
	SuccessURL string
	FailURL    string

	CustomerName  string
	CustomerEmail string
	Address       string
	Postcode      string
	Phone         string
	Country       string
}

// CheckoutSession est le résultat d'une initiation réussie : l'URL vers
// laquelle rediriger le payeur, plus l'identifiant de session côté gateway.
type CheckoutSession struct {
	RedirectURL string
	SessionID   string
}

// Gateway abstrait le prestataire de paiement hébergé. Un échec de l'appel
// distant remonte en erreur au caller, jamais en panique.
type Gateway interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}
