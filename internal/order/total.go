package order

import (
	"strconv"

	"gadget_home_backend/internal/models"
)

// parsePrice accepte les types numériques que le driver BSON ou le binding
// JSON peuvent produire, plus les chaînes numériques envoyées par certains
// fronts historiques. Tout le reste est rejeté.
func parsePrice(v interface{}) (float64, bool) {
	switch p := v.(type) {
	case float64:
		return p, true
	case float32:
		return float64(p), true
	case int:
		return float64(p), true
	case int32:
		return float64(p), true
	case int64:
		return float64(p), true
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// sumCartPrices calcule le total du panier. Un article au prix invalide
// est exclu du total et renvoyé dans skipped — politique de tolérance
// partielle : on ne fait pas échouer tout le checkout pour un article.
func sumCartPrices(items []models.CartItem) (total float64, skipped []models.CartItem) {
	for _, item := range items {
		price, ok := parsePrice(item.Price)
		if !ok {
			skipped = append(skipped, item)
			continue
		}
		total += price
	}
	return total, skipped
}
