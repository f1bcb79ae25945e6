package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gadget_home_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implémente Store au-dessus des collections users / products /
// carts / orders de la base gadgetDB.
type Mongo struct {
	users    *mongo.Collection
	products *mongo.Collection
	carts    *mongo.Collection
	orders   *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		users:    db.Collection("users"),
		products: db.Collection("products"),
		carts:    db.Collection("carts"),
		orders:   db.Collection("orders"),
	}
}

// parseObjectID convertit un id hexadécimal en ObjectID.
// Un id mal formé renvoie ErrInvalidID, jamais ErrNotFound.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func insertedID(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", res.InsertedID)
}

// ================== UTILISATEURS ==================

func (m *Mongo) CreateUser(ctx context.Context, user models.User) (string, error) {
	// email déjà pris ? (inscription idempotente)
	err := m.users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", ErrAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	user.CreatedAt = time.Now()
	res, err := m.users.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return insertedID(res), nil
}

func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ================== PRODUITS ==================

func (m *Mongo) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	res, err := m.products.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	return insertedID(res), nil
}

func (m *Mongo) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := m.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *Mongo) ProductByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	err = m.products.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// UpdateProduct fusionne les champs fournis dans le document existant ($set).
// Les champs non mentionnés restent intacts.
func (m *Mongo) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	// l'_id ne se réécrit pas
	delete(fields, "_id")
	delete(fields, "id")
	fields["updated_at"] = time.Now()

	res, err := m.products.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteProduct(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := m.products.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ================== PANIER ==================

func (m *Mongo) AddCartItem(ctx context.Context, item models.CartItem) (string, error) {
	res, err := m.carts.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return insertedID(res), nil
}

func (m *Mongo) CartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := m.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Mongo) DeleteCartItem(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := m.carts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ================== COMMANDES ==================

func (m *Mongo) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	order.CreatedAt = time.Now()
	res, err := m.orders.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return insertedID(res), nil
}

func (m *Mongo) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *Mongo) OrderByTransactionID(ctx context.Context, tranID string) (models.Order, error) {
	var order models.Order
	err := m.orders.FindOne(ctx, bson.M{"transaction_id": tranID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (m *Mongo) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := m.orders.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) SetOrderPaid(ctx context.Context, tranID string) error {
	now := time.Now()
	res, err := m.orders.UpdateOne(ctx,
		bson.M{"transaction_id": tranID},
		bson.M{"$set": bson.M{
			"paid_status": true,
			"status":      models.OrderStatusPaid,
			"paid_at":     now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetOrderFailed marque la commande comme échouée, état terminal.
// La commande est conservée : supprimer détruirait la trace d'audit.
func (m *Mongo) SetOrderFailed(ctx context.Context, tranID string) error {
	res, err := m.orders.UpdateOne(ctx,
		bson.M{"transaction_id": tranID},
		bson.M{"$set": bson.M{"status": models.OrderStatusFailed}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
