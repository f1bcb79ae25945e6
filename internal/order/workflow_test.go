package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gadget_home_backend/internal/models"
	"gadget_home_backend/internal/payment"
	"gadget_home_backend/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- store en mémoire pour les tests ----

type memStore struct {
	mu            sync.Mutex
	carts         map[string][]models.CartItem
	orders        map[string]models.Order // clé : transaction_id
	setPaidCalls  int
	setFailCalls  int
	createOrdErr  error
	orderInserted int
}

func newMemStore() *memStore {
	return &memStore{
		carts:  make(map[string][]models.CartItem),
		orders: make(map[string]models.Order),
	}
}

func (m *memStore) CreateUser(ctx context.Context, user models.User) (string, error) {
	return "", nil
}
func (m *memStore) ListUsers(ctx context.Context) ([]models.User, error) { return nil, nil }
func (m *memStore) CreateProduct(ctx context.Context, p models.Product) (string, error) {
	return "", nil
}
func (m *memStore) ListProducts(ctx context.Context) ([]models.Product, error) { return nil, nil }
func (m *memStore) ProductByID(ctx context.Context, id string) (models.Product, error) {
	return models.Product{}, store.ErrNotFound
}
func (m *memStore) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}
func (m *memStore) DeleteProduct(ctx context.Context, id string) error { return nil }

func (m *memStore) AddCartItem(ctx context.Context, item models.CartItem) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[item.Email] = append(m.carts[item.Email], item)
	return primitive.NewObjectID().Hex(), nil
}

func (m *memStore) CartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.carts[email], nil
}

func (m *memStore) DeleteCartItem(ctx context.Context, id string) error { return nil }

func (m *memStore) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createOrdErr != nil {
		return "", m.createOrdErr
	}
	order.ID = primitive.NewObjectID()
	m.orders[order.TransactionID] = order
	m.orderInserted++
	return order.ID.Hex(), nil
}

func (m *memStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memStore) OrderByTransactionID(ctx context.Context, tranID string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[tranID]
	if !ok {
		return models.Order{}, store.ErrNotFound
	}
	return order, nil
}

func (m *memStore) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	return nil
}

func (m *memStore) SetOrderPaid(ctx context.Context, tranID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[tranID]
	if !ok {
		return store.ErrNotFound
	}
	order.PaidStatus = true
	order.Status = models.OrderStatusPaid
	m.orders[tranID] = order
	m.setPaidCalls++
	return nil
}

func (m *memStore) SetOrderFailed(ctx context.Context, tranID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[tranID]
	if !ok {
		return store.ErrNotFound
	}
	order.Status = models.OrderStatusFailed
	m.orders[tranID] = order
	m.setFailCalls++
	return nil
}

// ---- gateway factice ----

type fakeGateway struct {
	mu       sync.Mutex
	err      error
	requests []payment.CheckoutRequest
}

func (g *fakeGateway) CreateSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.requests = append(g.requests, req)
	return &payment.CheckoutSession{
		RedirectURL: "https://pay.example/" + req.TransactionID,
		SessionID:   "sess_" + req.TransactionID,
	}, nil
}

type fakeMailer struct {
	sent chan models.Order
}

func (f *fakeMailer) SendOrderConfirmation(order models.Order) error {
	f.sent <- order
	return nil
}

func newWorkflowForTest(s store.Store, g payment.Gateway, m Mailer, deliveryCharge float64) *Workflow {
	return NewWorkflow(s, g, m, "http://localhost:5000", "eur", deliveryCharge)
}

func shipping() CheckoutInput {
	return CheckoutInput{Name: "Jean Dupont", Address: "1 rue de la Paix", Postcode: "75000"}
}

// ---- Tests ----

func TestCreateOrderEmptyCart(t *testing.T) {
	ms := newMemStore()
	w := newWorkflowForTest(ms, &fakeGateway{}, nil, 0)

	_, _, err := w.CreateOrder(context.Background(), "vide@example.com", shipping())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("attendu ErrEmptyCart, obtenu %v", err)
	}
	if ms.orderInserted != 0 {
		t.Fatalf("aucune commande ne doit être persistée, obtenu %d", ms.orderInserted)
	}
}

func TestCreateOrderSkipsInvalidPrices(t *testing.T) {
	ms := newMemStore()
	email := "client@example.com"
	ms.carts[email] = []models.CartItem{
		{Email: email, Name: "clavier", Price: float64(10)},
		{Email: email, Name: "mystère", Price: "bad"},
		{Email: email, Name: "souris", Price: float64(5)},
	}

	gw := &fakeGateway{}
	w := newWorkflowForTest(ms, gw, nil, 0)

	_, ord, err := w.CreateOrder(context.Background(), email, shipping())
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}
	if ord.TotalAmount != 15 {
		t.Fatalf("total attendu 15, obtenu %v", ord.TotalAmount)
	}
	if len(ord.Items) != 3 {
		t.Fatalf("le snapshot doit garder les 3 articles, obtenu %d", len(ord.Items))
	}
	if gw.requests[0].Amount != 15 {
		t.Fatalf("montant envoyé au gateway attendu 15, obtenu %v", gw.requests[0].Amount)
	}
}

func TestCreateOrderAppliesDeliveryCharge(t *testing.T) {
	ms := newMemStore()
	email := "client@example.com"
	ms.carts[email] = []models.CartItem{
		{Email: email, Price: float64(10)},
		{Email: email, Price: "bad"},
		{Email: email, Price: float64(5)},
	}

	w := newWorkflowForTest(ms, &fakeGateway{}, nil, 150)

	_, ord, err := w.CreateOrder(context.Background(), email, shipping())
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}
	if ord.TotalAmount != 165 {
		t.Fatalf("total attendu 165 (15 + 150 de livraison), obtenu %v", ord.TotalAmount)
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	ms := newMemStore()
	email := "client@example.com"
	ms.carts[email] = []models.CartItem{{Email: email, Price: float64(42)}}

	w := newWorkflowForTest(ms, &fakeGateway{err: errors.New("gateway indisponible")}, nil, 0)

	_, _, err := w.CreateOrder(context.Background(), email, shipping())
	if !errors.Is(err, ErrCheckoutFailed) {
		t.Fatalf("attendu ErrCheckoutFailed, obtenu %v", err)
	}
	if ms.orderInserted != 0 {
		t.Fatalf("aucune commande ne doit être persistée après échec gateway, obtenu %d", ms.orderInserted)
	}
}

func TestCreateOrderPersistsAwaitingPayment(t *testing.T) {
	ms := newMemStore()
	email := "client@example.com"
	ms.carts[email] = []models.CartItem{{Email: email, Price: float64(42)}}

	w := newWorkflowForTest(ms, &fakeGateway{}, nil, 0)

	url, ord, err := w.CreateOrder(context.Background(), email, shipping())
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}
	if url == "" {
		t.Fatal("URL de redirection vide")
	}
	if ord.Status != models.OrderStatusAwaitingPayment {
		t.Fatalf("statut attendu awaiting_payment, obtenu %s", ord.Status)
	}
	if ord.PaidStatus {
		t.Fatal("paidStatus doit être false à la création")
	}

	stored, err := ms.OrderByTransactionID(context.Background(), ord.TransactionID)
	if err != nil {
		t.Fatalf("commande non persistée: %v", err)
	}
	if stored.TotalAmount != 42 {
		t.Fatalf("total persisté attendu 42, obtenu %v", stored.TotalAmount)
	}
}

func TestMarkPaidUnknownTransaction(t *testing.T) {
	w := newWorkflowForTest(newMemStore(), &fakeGateway{}, nil, 0)

	_, err := w.MarkPaid(context.Background(), "tran-inconnu")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("attendu ErrNotFound, obtenu %v", err)
	}
}

func TestMarkPaidIdempotent(t *testing.T) {
	ms := newMemStore()
	email := "client@example.com"
	ms.carts[email] = []models.CartItem{{Email: email, Price: float64(10)}}

	mailer := &fakeMailer{sent: make(chan models.Order, 2)}
	w := newWorkflowForTest(ms, &fakeGateway{}, mailer, 0)

	_, ord, err := w.CreateOrder(context.Background(), email, shipping())
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}

	paid, err := w.MarkPaid(context.Background(), ord.TransactionID)
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}
	if !paid.PaidStatus || paid.Status != models.OrderStatusPaid {
		t.Fatalf("commande non marquée payée: %+v", paid)
	}

	select {
	case <-mailer.sent:
	case <-time.After(time.Second):
		t.Fatal("e-mail de confirmation jamais envoyé")
	}

	// rejeu du callback : aucun effet supplémentaire
	paid, err = w.MarkPaid(context.Background(), ord.TransactionID)
	if err != nil {
		t.Fatalf("le rejeu ne doit pas échouer: %v", err)
	}
	if !paid.PaidStatus {
		t.Fatal("paidStatus doit rester true")
	}
	if ms.setPaidCalls != 1 {
		t.Fatalf("SetOrderPaid doit être appliqué une seule fois, obtenu %d", ms.setPaidCalls)
	}
}

func TestMarkFailedRetainsOrder(t *testing.T) {
	ms := newMemStore()
	email := "client@example.com"
	ms.carts[email] = []models.CartItem{{Email: email, Price: float64(10)}}

	w := newWorkflowForTest(ms, &fakeGateway{}, nil, 0)

	_, ord, err := w.CreateOrder(context.Background(), email, shipping())
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}

	failed, err := w.MarkFailed(context.Background(), ord.TransactionID)
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}
	if failed.Status != models.OrderStatusFailed {
		t.Fatalf("statut attendu failed, obtenu %s", failed.Status)
	}

	// la commande échouée reste en base (trace d'audit)
	stored, err := ms.OrderByTransactionID(context.Background(), ord.TransactionID)
	if err != nil {
		t.Fatalf("la commande échouée doit être conservée: %v", err)
	}
	if stored.Status != models.OrderStatusFailed {
		t.Fatalf("statut persisté attendu failed, obtenu %s", stored.Status)
	}

	// rejeu idempotent
	if _, err := w.MarkFailed(context.Background(), ord.TransactionID); err != nil {
		t.Fatalf("le rejeu ne doit pas échouer: %v", err)
	}
	if ms.setFailCalls != 1 {
		t.Fatalf("SetOrderFailed doit être appliqué une seule fois, obtenu %d", ms.setFailCalls)
	}

	_, err = w.MarkFailed(context.Background(), "tran-inconnu")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("attendu ErrNotFound, obtenu %v", err)
	}
}

func TestConcurrentCheckoutsGetDistinctTransactions(t *testing.T) {
	ms := newMemStore()
	const n = 8
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("client%d@example.com", i)
		ms.carts[email] = []models.CartItem{{Email: email, Price: float64(i + 1)}}
	}

	w := newWorkflowForTest(ms, &fakeGateway{}, nil, 0)

	var wg sync.WaitGroup
	tranIDs := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, ord, err := w.CreateOrder(context.Background(), fmt.Sprintf("client%d@example.com", i), shipping())
			if err != nil {
				t.Errorf("checkout %d en erreur: %v", i, err)
				return
			}
			tranIDs[i] = ord.TransactionID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i, id := range tranIDs {
		if id == "" {
			t.Fatalf("checkout %d sans transaction_id", i)
		}
		if seen[id] {
			t.Fatalf("transaction_id dupliqué: %s", id)
		}
		seen[id] = true
	}
	if ms.orderInserted != n {
		t.Fatalf("attendu %d commandes, obtenu %d", n, ms.orderInserted)
	}
}
