package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem est un article de panier tel qu'envoyé par le front :
// un snapshot du produit au moment de l'ajout. Le prix reste volontairement
// non typé (certains fronts historiques envoient des chaînes) — la
// validation se fait au moment du checkout, pas à l'insertion.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	ProductID string             `bson:"product_id,omitempty" json:"productId,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Price     interface{}        `bson:"price" json:"price"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
