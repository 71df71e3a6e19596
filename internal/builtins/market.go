// ABOUTME: Market responder: commodity extraction plus a price quote lookup
// ABOUTME: Returns structured JSON so the orchestrator renders the price block

package builtins

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tahasaif3/FarmSmart-AI/internal/lookup"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// defaultProduct is quoted when the question names no commodity.
const defaultProduct = "wheat"

// commodityAliases maps question tokens, including the Urdu names, to the
// canonical commodity. Ordered so the first mention in the table wins when a
// question names more than one.
var commodityAliases = []struct {
	alias   string
	product string
}{
	{"wheat", "wheat"}, {"gandum", "wheat"},
	{"rice", "rice"}, {"chawal", "rice"}, {"basmati", "rice"},
	{"cotton", "cotton"}, {"kapas", "cotton"}, {"phutti", "cotton"},
	{"sugarcane", "sugarcane"}, {"ganna", "sugarcane"},
	{"maize", "maize"}, {"makai", "maize"}, {"corn", "maize"},
	{"potato", "potato"}, {"aloo", "potato"},
	{"onion", "onion"}, {"pyaz", "onion"},
}

func marketResponder(client *lookup.MarketClient) specialist.DispatchFunc {
	return func(ctx context.Context, _ specialist.ID, prompt string) (string, error) {
		question := currentQuestion(prompt)
		product := questionProduct(question)
		region := questionCity(question, "")

		q, err := client.Quote(ctx, product, region)
		if err != nil {
			return "", err
		}

		payload, err := json.Marshal(map[string]any{
			"product":          q.Product,
			"price_per_kg_pkr": q.PricePerKgPKR,
			"trend":            q.Trend,
			"best_markets":     q.BestMarkets,
			"advice":           q.Advice,
			"urdu_tip":         q.UrduTip,
		})
		if err != nil {
			return "", fmt.Errorf("encoding quote: %w", err)
		}
		return string(payload), nil
	}
}

// questionProduct finds the first known commodity mentioned in the question.
func questionProduct(question string) string {
	q := strings.ToLower(question)
	for _, entry := range commodityAliases {
		if strings.Contains(q, entry.alias) {
			return entry.product
		}
	}
	return defaultProduct
}
