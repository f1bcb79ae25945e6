package store

import (
	"context"

	"gadget_home_backend/internal/models"
)

// Store est la passerelle d'accès aux quatre collections du système.
// Chaque opération est un aller-retour unique vers la base : aucune
// transaction multi-documents, aucune logique métier.
type Store interface {
	// Utilisateurs. CreateUser est idempotent sur l'email : si un compte
	// existe déjà, renvoie ErrAlreadyExists sans insérer.
	CreateUser(ctx context.Context, user models.User) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Produits.
	CreateProduct(ctx context.Context, product models.Product) (string, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteProduct(ctx context.Context, id string) error

	// Panier.
	AddCartItem(ctx context.Context, item models.CartItem) (string, error)
	CartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteCartItem(ctx context.Context, id string) error

	// Commandes. Un transaction_id référence au plus une commande.
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	OrderByTransactionID(ctx context.Context, tranID string) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) error
	SetOrderPaid(ctx context.Context, tranID string) error
	SetOrderFailed(ctx context.Context, tranID string) error
}
