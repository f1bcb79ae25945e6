package order

import (
	"testing"

	"gadget_home_backend/internal/models"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  float64
		ok    bool
	}{
		{"float64", float64(12.5), 12.5, true},
		{"int32 bson", int32(7), 7, true},
		{"int64 bson", int64(30), 30, true},
		{"chaîne numérique", "19.99", 19.99, true},
		{"chaîne invalide", "bad", 0, false},
		{"nil", nil, 0, false},
		{"booléen", true, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parsePrice(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok attendu %v, obtenu %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("prix attendu %v, obtenu %v", tc.want, got)
			}
		})
	}
}

func TestSumCartPricesReportsSkippedItems(t *testing.T) {
	items := []models.CartItem{
		{Name: "clavier", Price: float64(10)},
		{Name: "mystère", Price: "bad"},
		{Name: "souris", Price: float64(5)},
	}

	total, skipped := sumCartPrices(items)
	if total != 15 {
		t.Fatalf("total attendu 15, obtenu %v", total)
	}
	if len(skipped) != 1 || skipped[0].Name != "mystère" {
		t.Fatalf("l'article au prix invalide doit être signalé, obtenu %+v", skipped)
	}
}

func TestSumCartPricesEmpty(t *testing.T) {
	total, skipped := sumCartPrices(nil)
	if total != 0 || skipped != nil {
		t.Fatalf("panier vide : attendu (0, nil), obtenu (%v, %v)", total, skipped)
	}
}
