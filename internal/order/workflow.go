package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gadget_home_backend/internal/models"
	"gadget_home_backend/internal/payment"
	"gadget_home_backend/internal/store"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCart : checkout initié sans aucun article en panier.
	ErrEmptyCart = errors.New("panier vide")
	// ErrCheckoutFailed : le gateway de paiement a refusé ou échoué.
	// Aucune commande n'est persistée dans ce cas.
	ErrCheckoutFailed = errors.New("échec d'initiation du paiement")
)

// Mailer envoie la confirmation de commande. Best-effort : un échec
// d'envoi ne remet jamais en cause la transition de paiement.
type Mailer interface {
	SendOrderConfirmation(order models.Order) error
}

// CheckoutInput porte les champs de livraison fournis à l'initiation.
type CheckoutInput struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Postcode string `json:"postcode"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// Workflow orchestre le cycle de vie d'une commande, clé : transaction_id.
//
//	awaiting_payment → paid | failed
//
// Les callbacks du gateway arrivent en sémantique at-least-once, les deux
// transitions sont donc idempotentes.
type Workflow struct {
	store   store.Store
	gateway payment.Gateway
	mailer  Mailer

	backendURL      string
	defaultCurrency string
	deliveryCharge  float64
}

func NewWorkflow(s store.Store, g payment.Gateway, m Mailer, backendURL, currency string, deliveryCharge float64) *Workflow {
	return &Workflow{
		store:           s,
		gateway:         g,
		mailer:          m,
		backendURL:      backendURL,
		defaultCurrency: currency,
		deliveryCharge:  deliveryCharge,
	}
}

// newTransactionID génère un identifiant de transaction aléatoire.
// Surtout pas d'horodatage : deux checkouts dans la même milliseconde
// doivent recevoir des identifiants distincts.
func newTransactionID() string {
	return "tran-" + uuid.NewString()
}

// CreateOrder initie un checkout : lit le panier, calcule le total,
// ouvre une session de paiement puis persiste la commande en attente.
// Renvoie l'URL de redirection du payeur.
//
// Limite connue : l'appel gateway et l'insertion ne sont pas couverts par
// une transaction. Un crash entre les deux laisse une session de paiement
// orpheline côté prestataire.
func (w *Workflow) CreateOrder(ctx context.Context, email string, in CheckoutInput) (string, models.Order, error) {
	items, err := w.store.CartItemsByEmail(ctx, email)
	if err != nil {
		return "", models.Order{}, err
	}
	if len(items) == 0 {
		return "", models.Order{}, ErrEmptyCart
	}

	total, skipped := sumCartPrices(items)
	for _, item := range skipped {
		log.Printf("⚠️ Prix invalide ignoré dans le panier de %s : %v (item %s)", email, item.Price, item.ID.Hex())
	}
	total += w.deliveryCharge

	currency := in.Currency
	if currency == "" {
		currency = w.defaultCurrency
	}

	tranID := newTransactionID()

	session, err := w.gateway.CreateSession(ctx, payment.CheckoutRequest{
		TransactionID: tranID,
		Amount:        total,
		Currency:      currency,
		SuccessURL:    fmt.Sprintf("%s/payment/success/%s", w.backendURL, tranID),
		FailURL:       fmt.Sprintf("%s/payment/fail/%s", w.backendURL, tranID),
		CustomerName:  in.Name,
		CustomerEmail: email,
		Address:       in.Address,
		Postcode:      in.Postcode,
		Phone:         in.Phone,
		Country:       in.Country,
	})
	if err != nil {
		return "", models.Order{}, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	order := models.Order{
		Email:         email,
		Items:         items,
		TotalAmount:   total,
		Currency:      currency,
		PaidStatus:    false,
		TransactionID: tranID,
		Status:        models.OrderStatusAwaitingPayment,
		Shipping: models.ShippingInfo{
			Name:     in.Name,
			Address:  in.Address,
			Postcode: in.Postcode,
			Phone:    in.Phone,
			Country:  in.Country,
		},
	}

	id, err := w.store.CreateOrder(ctx, order)
	if err != nil {
		return "", models.Order{}, err
	}
	log.Printf("🧾 Commande %s créée (tran %s, %.2f %s) pour %s", id, tranID, total, currency, email)

	return session.RedirectURL, order, nil
}

// MarkPaid applique le callback succès du gateway. Idempotent :
// rejouer le callback sur une commande déjà payée ne change rien.
func (w *Workflow) MarkPaid(ctx context.Context, tranID string) (models.Order, error) {
	order, err := w.store.OrderByTransactionID(ctx, tranID)
	if err != nil {
		return models.Order{}, err
	}

	if order.PaidStatus {
		log.Printf("🔁 Callback succès rejoué pour %s, déjà payé — on ignore", tranID)
		return order, nil
	}

	if err := w.store.SetOrderPaid(ctx, tranID); err != nil {
		return models.Order{}, err
	}
	order.PaidStatus = true
	order.Status = models.OrderStatusPaid
	now := time.Now()
	order.PaidAt = &now
	log.Printf("✅ Commande %s payée", tranID)

	if w.mailer != nil {
		go func(o models.Order) {
			if err := w.mailer.SendOrderConfirmation(o); err != nil {
				log.Println("❌ Erreur envoi e-mail confirmation :", err)
			} else {
				log.Println("📧 E-mail de confirmation envoyé à", o.Email)
			}
		}(order)
	}

	return order, nil
}

// MarkFailed applique le callback échec. La commande passe en statut
// terminal failed mais reste en base : la supprimer effacerait la trace
// d'audit de la tentative. Idempotent sur rejeu.
func (w *Workflow) MarkFailed(ctx context.Context, tranID string) (models.Order, error) {
	order, err := w.store.OrderByTransactionID(ctx, tranID)
	if err != nil {
		return models.Order{}, err
	}

	if order.Status == models.OrderStatusFailed {
		log.Printf("🔁 Callback échec rejoué pour %s — on ignore", tranID)
		return order, nil
	}

	if err := w.store.SetOrderFailed(ctx, tranID); err != nil {
		return models.Order{}, err
	}
	order.Status = models.OrderStatusFailed
	log.Printf("❌ Paiement échoué pour la commande %s (commande conservée)", tranID)

	return order, nil
}
