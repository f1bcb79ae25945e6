package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuts du cycle de vie d'une commande.
// awaiting_payment → paid | failed. Les deux derniers sont terminaux,
// une commande échouée est conservée (trace d'audit), jamais supprimée.
const (
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaid            = "paid"
	OrderStatusFailed          = "failed"
)

// ValidOrderStatus indique si un libellé de statut est connu.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusAwaitingPayment, OrderStatusPaid, OrderStatusFailed:
		return true
	}
	return false
}

type ShippingInfo struct {
	Name     string `bson:"name" json:"name"`
	Address  string `bson:"address" json:"address"`
	Postcode string `bson:"postcode" json:"postcode"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Country  string `bson:"country,omitempty" json:"country,omitempty"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Items         []CartItem         `bson:"cart_items" json:"cartItems"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	Currency      string             `bson:"currency" json:"currency"`
	PaidStatus    bool               `bson:"paid_status" json:"paidStatus"`
	TransactionID string             `bson:"transaction_id" json:"transectionId"`
	Status        string             `bson:"status" json:"status"`
	Shipping      ShippingInfo       `bson:"shipping" json:"shipping"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	PaidAt        *time.Time         `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
}
